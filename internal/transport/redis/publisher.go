package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const DefaultChannel = "tictactoe:results"

var ErrEmptyChannel = errors.New("channel name is empty")

// Publisher - announces finished games on a Pub/Sub channel. Nothing is stored.
type Publisher struct {
	logger  *slog.Logger
	client  *redis.Client
	channel string
}

func NewPublisher(logger *slog.Logger, client *redis.Client, channel string) (*Publisher, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	return &Publisher{
		logger:  logger.With("component", "result_publisher"),
		client:  client,
		channel: channel,
	}, nil
}

// Publish - sends the result as JSON.
func (that *Publisher) Publish(ctx context.Context, result *entity.GameResult) error {
	log := that.logger.With("method", "Publish")

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal game result: %w", err)
	}

	receivers, err := that.client.Publish(ctx, that.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("failed to publish game result to %s: %w", that.channel, err)
	}

	log.Debug("game result published", "game_id", result.GameID, "channel", that.channel, "receivers", receivers)

	return nil
}

func (that *Publisher) Channel() string {
	return that.channel
}
