package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	StartingSide string  `yaml:"starting-side" env:"STARTING_SIDE" env-default:"random" validate:"oneof=first second random"`
	Games        int     `yaml:"games" env:"GAMES" validate:"gte=0"`
	AI           AI      `yaml:"ai"`
	Redis        Redis   `yaml:"redis"`
	Tracing      Tracing `yaml:"tracing"`
}

// AI - which sides the engine plays and how its thinking is paced.
// Zero-valued fields get no env-default: cleanenv would overwrite an explicit false or 0s from the file.
type AI struct {
	First        bool          `yaml:"first" env:"AI_FIRST"`
	Second       bool          `yaml:"second" env:"AI_SECOND"`
	StepDuration time.Duration `yaml:"step-duration" env:"AI_STEP_DURATION" validate:"gte=0"`
	TurnDelay    time.Duration `yaml:"turn-delay" env:"AI_TURN_DELAY" validate:"gte=0"`
}

type Redis struct {
	Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED"`
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost" validate:"required_if=Enabled true"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379" validate:"required_if=Enabled true"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" validate:"gte=0"`
	Channel  string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"tictactoe:results" validate:"required_if=Enabled true"`
}

type Tracing struct {
	Enabled     bool   `yaml:"enabled" env:"TRACING_ENABLED"`
	ServiceName string `yaml:"service-name" env:"TRACING_SERVICE_NAME" env-default:"tictactoe-minimax"`
	PrettyPrint bool   `yaml:"pretty-print" env:"TRACING_PRETTY_PRINT"`
}

// Load - reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
