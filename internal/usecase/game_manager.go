package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type botPlayer interface {
	service.Player
	SetStepDuration(duration time.Duration)
	SetTurnDelay(delay time.Duration)
	SetProbe(probe minimax.ProbeFunc)
}

type resultPublisher interface {
	Publish(ctx context.Context, result *entity.GameResult) error
}

// GameOverListener - receives every finished game. It runs outside the manager lock.
type GameOverListener func(result *entity.GameResult)

type Option func(manager *GameManager)

func WithResultPublisher(publisher resultPublisher) Option {
	return func(that *GameManager) {
		that.publisher = publisher
	}
}

// WithClock - overrides the time source used for GameResult.FinishedAt.
func WithClock(now func() time.Time) Option {
	return func(that *GameManager) {
		that.now = now
	}
}

// GameManager - owns the board and runs the turn loop.
// Every operation that touches the board holds mu for its whole turn, AI searches included.
// players holds the current owner of each side: its HumanPlayer or the shared bot.
type GameManager struct {
	logger *slog.Logger

	mu      sync.Mutex
	board   *tictactoe.Board
	gameID  string
	humans  [2]*service.HumanPlayer
	players [2]service.Player
	bot     botPlayer

	publisher resultPublisher
	now       func() time.Time

	listenersMu sync.RWMutex
	listeners   []GameOverListener
}

func NewGameManager(logger *slog.Logger, bot botPlayer, options ...Option) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		board:  tictactoe.NewBoard(),
		bot:    bot,
		now:    time.Now,
	}

	for side := range manager.humans {
		manager.humans[side] = service.NewHumanPlayer()
		manager.players[side] = manager.humans[side]
	}

	for _, option := range options {
		option(manager)
	}

	return manager
}

// StartGame - discards the current game and starts a new one. If the starting side is AI-controlled it moves at once.
func (that *GameManager) StartGame(ctx context.Context, startingSide entity.Side) error {
	if !startingSide.IsValid() {
		return fmt.Errorf("%w: %d", entity.ErrUnknownSide, startingSide)
	}

	return that.turn(ctx, func() (*entity.GameResult, error) {
		that.gameID = uuid.NewString()
		that.board.Reset(startingSide)

		for _, human := range that.humans {
			human.Clear()
		}

		that.logger.Info("game started", "game_id", that.gameID, "starting_side", startingSide.String())

		return that.advance(ctx)
	})
}

// RequestMove - plays index for the side to move, then lets any AI-controlled side answer.
// An error wrapping ErrAITurnFailed means the move itself was committed; Resume retries the AI reply.
func (that *GameManager) RequestMove(ctx context.Context, index int) error {
	return that.turn(ctx, func() (*entity.GameResult, error) {
		if err := that.confirmRunning(); err != nil {
			return nil, err
		}

		side := that.board.Side()
		player := that.players[side]

		if !player.IsHuman() {
			return nil, fmt.Errorf("%w: %s side is AI-controlled", apperror.ErrNotYourTurn, side)
		}

		that.humans[side].SetPendingMove(index)

		move, err := player.ChooseMove(ctx, that.board)
		if err != nil {
			return nil, fmt.Errorf("failed make turn: %w", err)
		}

		result, err := that.commit(move)
		if err != nil || result != nil {
			return result, err
		}

		return that.advance(ctx)
	})
}

// SetAIControlled - hands a side to the bot or back to the human. A side handed to the bot on its own turn moves at once.
func (that *GameManager) SetAIControlled(ctx context.Context, side entity.Side, controlled bool) error {
	if !side.IsValid() {
		return fmt.Errorf("%w: %d", entity.ErrUnknownSide, side)
	}

	return that.turn(ctx, func() (*entity.GameResult, error) {
		if controlled {
			that.players[side] = that.bot
		} else {
			that.players[side] = that.humans[side]
		}

		that.logger.Debug("ai control changed", "side", side.String(), "controlled", controlled)

		if !controlled || !that.board.IsStarted() || that.board.IsFinished() {
			return nil, nil
		}

		return that.advance(ctx)
	})
}

func (that *GameManager) IsAIControlled(side entity.Side) bool {
	if !side.IsValid() {
		return false
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return !that.players[side].IsHuman()
}

// Resume - lets the AI-controlled side to move play, e.g. after a failed or cancelled AI turn.
// Does nothing when a human is to move.
func (that *GameManager) Resume(ctx context.Context) error {
	return that.turn(ctx, func() (*entity.GameResult, error) {
		if err := that.confirmRunning(); err != nil {
			return nil, err
		}

		return that.advance(ctx)
	})
}

// SetSearchPaceDelay - pause before every candidate the search evaluates. Takes effect immediately, even mid-search.
func (that *GameManager) SetSearchPaceDelay(delay time.Duration) error {
	if delay < 0 {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidDelay, delay)
	}

	that.bot.SetStepDuration(delay)

	return nil
}

// SetAITurnDelay - pause between the end of a search and the AI move being committed.
func (that *GameManager) SetAITurnDelay(delay time.Duration) error {
	if delay < 0 {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidDelay, delay)
	}

	that.bot.SetTurnDelay(delay)

	return nil
}

// OnSearchProbe - per-candidate callback of the AI search. It runs under the manager lock and must not call back into the manager.
func (that *GameManager) OnSearchProbe(probe minimax.ProbeFunc) {
	that.bot.SetProbe(probe)
}

func (that *GameManager) OnGameOver(listener GameOverListener) {
	that.listenersMu.Lock()
	defer that.listenersMu.Unlock()

	that.listeners = append(that.listeners, listener)
}

func (that *GameManager) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.Snapshot()
}

func (that *GameManager) GameID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.gameID
}

// turn - runs fn under the lock and delivers the game-over notification after releasing it.
func (that *GameManager) turn(ctx context.Context, fn func() (*entity.GameResult, error)) error {
	that.mu.Lock()
	result, err := fn()
	that.mu.Unlock()

	if result != nil {
		that.notify(ctx, result)
	}

	return err
}

// advance - lets AI-controlled sides move until the game ends or a human has to move.
func (that *GameManager) advance(ctx context.Context) (*entity.GameResult, error) {
	log := that.logger.With("method", "advance")

	for !that.board.IsFinished() && !that.players[that.board.Side()].IsHuman() {
		side := that.board.Side()

		move, err := that.players[side].ChooseMove(ctx, that.board)
		if err != nil {
			log.Warn("ai turn failed", "game_id", that.gameID, "side", side.String(), "error", err)
			return nil, fmt.Errorf("%w for %s side: %w", apperror.ErrAITurnFailed, side, err)
		}

		log.Debug("ai move", "game_id", that.gameID, "side", side.String(), "index", move)

		result, err := that.commit(move)
		if err != nil {
			return nil, fmt.Errorf("failed commit ai move: %w", err)
		}

		if result != nil {
			return result, nil
		}
	}

	return nil, nil
}

// commit - places the move for the side to move and evaluates termination: a win ends the game,
// a full board is a draw, anything else passes the turn.
func (that *GameManager) commit(index int) (*entity.GameResult, error) {
	side := that.board.Side()

	won, err := that.board.PlaceMark(index)
	if err != nil {
		return nil, fmt.Errorf("failed place mark: %w", err)
	}

	switch {
	case won:
		return that.finish(entity.OutcomeForWinner(side))
	case that.board.FreeCells() == 0:
		return that.finish(entity.OutcomeDraw)
	default:
		that.board.SwitchSide()
		return nil, nil
	}
}

func (that *GameManager) finish(outcome entity.Outcome) (*entity.GameResult, error) {
	if err := that.board.Conclude(outcome); err != nil {
		return nil, fmt.Errorf("failed conclude game: %w", err)
	}

	var line []int
	if winner, ok := outcome.Winner(); ok {
		if triple, found := that.board.WinningTriple(winner.Mark()); found {
			line = triple[:]
		}
	}

	result := entity.NewGameResult(that.gameID, outcome, that.board.Cells(), line, that.now())

	that.logger.Info("game finished", "game_id", that.gameID, "outcome", outcome.String())

	return result, nil
}

func (that *GameManager) confirmRunning() error {
	switch {
	case !that.board.IsStarted():
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameIsNotStarted)
	case that.board.IsFinished():
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	default:
		return nil
	}
}

// notify - publishes the result and calls the listeners in registration order.
func (that *GameManager) notify(ctx context.Context, result *entity.GameResult) {
	log := that.logger.With("method", "notify")

	if that.publisher != nil {
		if err := that.publisher.Publish(ctx, result); err != nil {
			log.Error("failed to publish game result", "game_id", result.GameID, "error", err)
		}
	}

	that.listenersMu.RLock()
	listeners := make([]GameOverListener, len(that.listeners))
	copy(listeners, that.listeners)
	that.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener(result)
	}
}
