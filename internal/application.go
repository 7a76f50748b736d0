package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// consoleStopTimeout - how long shutdown waits for the console to finish its current turn.
// A console blocked on stdin never returns, so the wait is bounded.
var consoleStopTimeout = 2 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the engine to the terminal streams and plays until the console stops or a signal arrives.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if conf.Tracing.Enabled {
		shutdown, err := telemetry.InitTracing(conf.Tracing.ServiceName, os.Stderr, conf.Tracing.PrettyPrint)
		if err != nil {
			return fmt.Errorf("could not init tracing: %w", err)
		}

		defer func() {
			if err = shutdown(context.Background()); err != nil {
				log.Error("could not shutdown tracing", "error", err)
			}
		}()
	}

	searcher := minimax.New(minimax.WithStepDuration(conf.AI.StepDuration))
	bot := service.NewBotPlayer(logger, searcher, conf.AI.TurnDelay)

	var options []usecase.Option

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		publisher, err := redis.NewPublisher(logger, redisStorage.Connection, conf.Redis.Channel)
		if err != nil {
			return fmt.Errorf("could not create result publisher: %w", err)
		}

		options = append(options, usecase.WithResultPublisher(publisher))
		log.Info("Publishing game results", "addr", redisAddrString, "channel", conf.Redis.Channel)
	}

	gameManager := usecase.NewGameManager(logger, bot, options...)

	if err := gameManager.SetAIControlled(ctx, entity.SideFirst, conf.AI.First); err != nil {
		return fmt.Errorf("could not configure first side: %w", err)
	}

	if err := gameManager.SetAIControlled(ctx, entity.SideSecond, conf.AI.Second); err != nil {
		return fmt.Errorf("could not configure second side: %w", err)
	}

	session, err := usecase.NewSession(gameManager, conf.StartingSide)
	if err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}

	terminal := console.New(logger, in, out, gameManager, session,
		console.WithGames(conf.Games),
		console.WithProbes(conf.AI.StepDuration > 0),
	)

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "ai_first", conf.AI.First, "ai_second", conf.AI.Second)
		consoleErrCh <- terminal.Run(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Console finished, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		select {
		case <-consoleErrCh:
		case <-time.After(consoleStopTimeout):
			log.Warn("Console did not stop in time", "timeout", consoleStopTimeout)
		}

		return nil
	}
}
