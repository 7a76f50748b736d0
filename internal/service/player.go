package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrAwaitingInput = errors.New("waiting for player input")

// Player - owner of a side's turns. ChooseMove may read the board but must leave it as it found it.
type Player interface {
	IsHuman() bool
	ChooseMove(ctx context.Context, board *tictactoe.Board) (int, error)
}

// HumanPlayer - forwards moves requested from outside the engine.
type HumanPlayer struct {
	mu         sync.Mutex
	pending    int
	hasPending bool
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (that *HumanPlayer) IsHuman() bool {
	return true
}

// SetPendingMove - queues the next move, replacing an unconsumed one.
func (that *HumanPlayer) SetPendingMove(index int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.pending = index
	that.hasPending = true
}

func (that *HumanPlayer) HasPendingMove() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.hasPending
}

func (that *HumanPlayer) Clear() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.hasPending = false
}

// ChooseMove - hands out the pending move once. Without one it returns ErrAwaitingInput.
func (that *HumanPlayer) ChooseMove(_ context.Context, board *tictactoe.Board) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.hasPending {
		return -1, ErrAwaitingInput
	}

	index := that.pending
	that.hasPending = false

	free, err := board.IsCellFree(index)
	if err != nil {
		return -1, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	if !free {
		return -1, fmt.Errorf("%w: %w: %d", apperror.ErrIllegalMove, apperror.ErrCellOccupied, index)
	}

	return index, nil
}
