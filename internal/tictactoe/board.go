package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// minFreeForWin - no side can own a full triple while more cells than this are free.
const minFreeForWin = entity.BoardSize - 3

// Board - mutable game state shared by the turn loop and the search.
// The zero value is an uninitialized game that rejects every move.
type Board struct {
	cells    [entity.BoardSize]entity.Cell
	turn     entity.Side
	free     int
	started  bool
	finished bool
	outcome  entity.Outcome
}

func NewBoard() *Board {
	return &Board{}
}

// NewBoardFromCells - started, non-terminal board holding the given position with side to move.
func NewBoardFromCells(cells [entity.BoardSize]entity.Cell, side entity.Side) *Board {
	board := &Board{
		cells:   cells,
		turn:    side,
		started: true,
	}

	for _, cell := range cells {
		if cell == entity.CellEmpty {
			board.free++
		}
	}

	return board
}

// Reset - clears the board and starts a new game.
func (that *Board) Reset(startingSide entity.Side) {
	that.cells = [entity.BoardSize]entity.Cell{}
	that.turn = startingSide
	that.free = entity.BoardSize
	that.started = true
	that.finished = false
	that.outcome = entity.OutcomeDraw
}

func (that *Board) IsCellFree(index int) (bool, error) {
	if !validIndex(index) {
		return false, fmt.Errorf("%w: %d", apperror.ErrInvalidIndex, index)
	}

	return that.cells[index] == entity.CellEmpty, nil
}

// PlaceMark - writes the mark of the side to move into index and reports whether that mark now owns a triple.
// The board is untouched when an error is returned.
func (that *Board) PlaceMark(index int) (bool, error) {
	if err := that.validateMove(index); err != nil {
		return false, err
	}

	mark := that.turn.Mark()
	that.cells[index] = mark
	that.free--

	return that.CheckWin(mark), nil
}

// validateMove - checks if the move is valid.
func (that *Board) validateMove(index int) error {
	switch {
	case !that.started:
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameIsNotStarted)
	case that.finished:
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	case that.free == 0:
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrNoFreeCellsAvailable)
	case !validIndex(index):
		return fmt.Errorf("%w: %w: %d", apperror.ErrIllegalMove, apperror.ErrInvalidIndex, index)
	case that.cells[index] != entity.CellEmpty:
		return fmt.Errorf("%w: %w: %d", apperror.ErrIllegalMove, apperror.ErrCellOccupied, index)
	}

	return nil
}

// UndoMark - reverts a PlaceMark on index. Calls must pair one-to-one with successful placements.
func (that *Board) UndoMark(index int) error {
	if !validIndex(index) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidIndex, index)
	}

	if that.cells[index] == entity.CellEmpty {
		return fmt.Errorf("%w: cell %d is already empty", apperror.ErrIllegalMove, index)
	}

	that.cells[index] = entity.CellEmpty
	that.free++

	return nil
}

// CheckWin - reports whether mark occupies any of the eight triples.
func (that *Board) CheckWin(mark entity.Cell) bool {
	_, ok := that.WinningTriple(mark)
	return ok
}

// WinningTriple - the first triple fully owned by mark.
func (that *Board) WinningTriple(mark entity.Cell) ([3]int, bool) {
	if that.free > minFreeForWin || mark == entity.CellEmpty {
		return [3]int{}, false
	}

	for _, combo := range entity.WinCombos {
		if that.cells[combo[0]] == mark && that.cells[combo[1]] == mark && that.cells[combo[2]] == mark {
			return combo, true
		}
	}

	return [3]int{}, false
}

func (that *Board) SwitchSide() {
	that.turn = that.turn.Other()
}

// Conclude - marks the game terminal. Termination is decided by the caller.
func (that *Board) Conclude(outcome entity.Outcome) error {
	if !that.started {
		return apperror.ErrGameIsNotStarted
	}

	if that.finished {
		return apperror.ErrGameFinished
	}

	that.finished = true
	that.outcome = outcome

	return nil
}

func (that *Board) Side() entity.Side {
	return that.turn
}

func (that *Board) FreeCells() int {
	return that.free
}

// FreeIndices - empty cells in ascending index order.
func (that *Board) FreeIndices() []int {
	indices := make([]int, 0, that.free)
	for i, cell := range that.cells {
		if cell == entity.CellEmpty {
			indices = append(indices, i)
		}
	}

	return indices
}

func (that *Board) Cells() [entity.BoardSize]entity.Cell {
	return that.cells
}

func (that *Board) IsStarted() bool {
	return that.started
}

func (that *Board) IsFinished() bool {
	return that.finished
}

func (that *Board) Status() entity.Status {
	switch {
	case !that.started:
		return entity.StatusNotStarted
	case that.finished:
		return that.outcome.Status()
	default:
		return entity.StatusInProgress
	}
}

func (that *Board) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		Cells:     that.cells,
		Turn:      that.turn,
		FreeCells: that.free,
		Status:    that.Status(),
	}
}

func validIndex(index int) bool {
	return index >= 0 && index < entity.BoardSize
}
