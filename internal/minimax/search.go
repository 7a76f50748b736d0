package minimax

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// winScore - a win found at depth d scores winScore-d, so faster wins rank higher.
const winScore = 10

var ErrNoFreeCells = apperror.ErrNoFreeCellsAvailable

type Option func(searcher *Searcher)

// Decision - the move chosen for the side to move.
type Decision struct {
	Index int
	Score int
	Nodes int
}

// Probe - a candidate about to be evaluated.
type Probe struct {
	Index int
	Depth int
	Side  entity.Side
	Cells [entity.BoardSize]entity.Cell
}

type ProbeFunc func(probe Probe)

// Searcher - exhaustive minimax over the remaining game tree of a shared board.
// It places and undoes marks in place, so the board must not be touched by anyone else while Search runs.
type Searcher struct {
	stepDuration atomic.Int64
	probe        atomic.Pointer[ProbeFunc]
}

// WithStepDuration - pause before every candidate. Only paces the search, never changes its result.
func WithStepDuration(duration time.Duration) Option {
	return func(that *Searcher) {
		that.SetStepDuration(duration)
	}
}

func WithProbe(probe ProbeFunc) Option {
	return func(that *Searcher) {
		that.SetProbe(probe)
	}
}

func New(options ...Option) *Searcher {
	searcher := &Searcher{}
	for _, option := range options {
		option(searcher)
	}

	return searcher
}

func (that *Searcher) SetStepDuration(duration time.Duration) {
	if duration < 0 {
		duration = 0
	}

	that.stepDuration.Store(int64(duration))
}

func (that *Searcher) StepDuration() time.Duration {
	return time.Duration(that.stepDuration.Load())
}

// SetProbe - replaces the per-candidate callback, nil disables it.
func (that *Searcher) SetProbe(probe ProbeFunc) {
	if probe == nil {
		that.probe.Store(nil)
		return
	}

	that.probe.Store(&probe)
}

// Search - picks the optimal move for the side to move on board.
// On return, including on cancellation, the board is exactly as it was before the call.
func (that *Searcher) Search(ctx context.Context, board *tictactoe.Board) (Decision, error) {
	if board.IsFinished() {
		return Decision{}, fmt.Errorf("search: %w", apperror.ErrGameFinished)
	}

	if !board.IsStarted() {
		return Decision{}, fmt.Errorf("search: %w", apperror.ErrGameIsNotStarted)
	}

	if board.FreeCells() == 0 {
		return Decision{}, fmt.Errorf("search: %w", ErrNoFreeCells)
	}

	decision := Decision{}

	score, index, err := that.minimax(ctx, board, 1, &decision.Nodes)
	if err != nil {
		return Decision{}, fmt.Errorf("search aborted: %w", err)
	}

	decision.Index = index
	decision.Score = score

	return decision, nil
}

// minimax - scores the side to move at depth and returns the best index.
// Candidates are scanned in ascending order and only a strictly better score replaces the best,
// so ties keep the lowest index. A win ends the scan at this depth.
func (that *Searcher) minimax(ctx context.Context, board *tictactoe.Board, depth int, nodes *int) (int, int, error) {
	side := board.Side()

	bestScore := math.MinInt
	if side == entity.SideSecond {
		bestScore = math.MaxInt
	}
	bestIndex := -1

	for index := range entity.BoardSize {
		if free, _ := board.IsCellFree(index); !free {
			continue
		}

		if err := that.step(ctx, board, index, depth); err != nil {
			return 0, -1, err
		}

		won, err := board.PlaceMark(index)
		if err != nil {
			return 0, -1, fmt.Errorf("place candidate %d: %w", index, err)
		}
		*nodes++

		score := 0
		switch {
		case won:
			score = side.Sign() * (winScore - depth)
		case board.FreeCells() > 0:
			board.SwitchSide()
			score, _, err = that.minimax(ctx, board, depth+1, nodes)
			board.SwitchSide()
		}

		if undoErr := board.UndoMark(index); undoErr != nil {
			return 0, -1, fmt.Errorf("undo candidate %d: %w", index, undoErr)
		}

		if err != nil {
			return 0, -1, err
		}

		if improves(side, score, bestScore) {
			bestScore = score
			bestIndex = index
		}

		if won {
			break
		}
	}

	return bestScore, bestIndex, nil
}

// step - yield point before a candidate is placed: cancellation check, probe and pacing delay.
func (that *Searcher) step(ctx context.Context, board *tictactoe.Board, index, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if probe := that.probe.Load(); probe != nil {
		(*probe)(Probe{
			Index: index,
			Depth: depth,
			Side:  board.Side(),
			Cells: board.Cells(),
		})
	}

	delay := that.StepDuration()
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

func improves(side entity.Side, score, best int) bool {
	if side == entity.SideSecond {
		return score < best
	}

	return score > best
}
