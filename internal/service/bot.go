package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var tracer = otel.Tracer("bot")

// BotPlayer - plays a side with the minimax searcher and pauses for turnDelay before handing the move back.
type BotPlayer struct {
	logger    *slog.Logger
	searcher  *minimax.Searcher
	turnDelay atomic.Int64
}

func NewBotPlayer(logger *slog.Logger, searcher *minimax.Searcher, turnDelay time.Duration) *BotPlayer {
	bot := &BotPlayer{
		logger:   logger.With("component", "bot"),
		searcher: searcher,
	}
	bot.SetTurnDelay(turnDelay)

	return bot
}

func (that *BotPlayer) IsHuman() bool {
	return false
}

func (that *BotPlayer) ChooseMove(ctx context.Context, board *tictactoe.Board) (int, error) {
	side := board.Side()

	ctx, span := tracer.Start(ctx, "bot.ChooseMove", trace.WithAttributes(
		attribute.String("bot.side", side.String()),
		attribute.Int("board.free_cells", board.FreeCells()),
	))
	defer span.End()

	log := that.logger.With("method", "ChooseMove", "side", side.String())

	startedAt := time.Now()

	decision, err := that.searcher.Search(ctx, board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Search failed")

		return -1, fmt.Errorf("bot failed to choose move: %w", err)
	}

	span.SetAttributes(
		attribute.Int("search.index", decision.Index),
		attribute.Int("search.score", decision.Score),
		attribute.Int("search.nodes", decision.Nodes),
	)

	log.Debug("move chosen",
		"index", decision.Index,
		"score", decision.Score,
		"nodes", decision.Nodes,
		"elapsed", time.Since(startedAt),
	)

	if err = sleep(ctx, that.TurnDelay()); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Turn delay interrupted")

		return -1, fmt.Errorf("bot turn interrupted: %w", err)
	}

	return decision.Index, nil
}

func (that *BotPlayer) SetTurnDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}

	that.turnDelay.Store(int64(delay))
}

func (that *BotPlayer) TurnDelay() time.Duration {
	return time.Duration(that.turnDelay.Load())
}

func (that *BotPlayer) SetStepDuration(duration time.Duration) {
	that.searcher.SetStepDuration(duration)
}

func (that *BotPlayer) SetProbe(probe minimax.ProbeFunc) {
	that.searcher.SetProbe(probe)
}

func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
