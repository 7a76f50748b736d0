package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	x = entity.CellA
	o = entity.CellB
	e = entity.CellEmpty
)

// forEachConfiguration - visits all 3^9 assignments of cells.
func forEachConfiguration(visit func(cells [entity.BoardSize]entity.Cell)) {
	var cells [entity.BoardSize]entity.Cell
	var fill func(pos int)
	fill = func(pos int) {
		if pos == entity.BoardSize {
			visit(cells)
			return
		}
		for _, cell := range []entity.Cell{e, x, o} {
			cells[pos] = cell
			fill(pos + 1)
		}
	}
	fill(0)
}

func ownsTriple(cells [entity.BoardSize]entity.Cell, mark entity.Cell) bool {
	for _, combo := range entity.WinCombos {
		if cells[combo[0]] == mark && cells[combo[1]] == mark && cells[combo[2]] == mark {
			return true
		}
	}
	return false
}

func TestBoard_Reset(t *testing.T) {
	t.Run("Reset starts a clean game", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: reset with the second side to move
		board.Reset(entity.SideSecond)

		// Then: all cells are empty and the game is running
		expected := entity.Snapshot{
			Turn:      entity.SideSecond,
			FreeCells: 9,
			Status:    entity.StatusInProgress,
		}
		require.Equal(t, expected, board.Snapshot())
		assert.True(t, board.IsStarted())
		assert.False(t, board.IsFinished())
	})

	t.Run("Reset after a finished game", func(t *testing.T) {
		// Given: a board won by the first side and concluded
		board := NewBoardFromCells([entity.BoardSize]entity.Cell{x, x, x, o, o, e, e, e, e}, entity.SideSecond)
		require.NoError(t, board.Conclude(entity.OutcomeFirstWins))
		require.Equal(t, entity.StatusWonByFirst, board.Status())

		// When: reset
		board.Reset(entity.SideFirst)

		// Then: nine empty cells, not terminal
		assert.Equal(t, [entity.BoardSize]entity.Cell{}, board.Cells())
		assert.Equal(t, 9, board.FreeCells())
		assert.False(t, board.IsFinished())
		assert.Equal(t, entity.StatusInProgress, board.Status())
		assert.Equal(t, entity.SideFirst, board.Side())
	})
}

func TestBoard_PlaceMark(t *testing.T) {
	t.Run("PlaceMark writes the mark of the side to move", func(t *testing.T) {
		// Given: a fresh game with first to move
		board := NewBoard()
		board.Reset(entity.SideFirst)

		// When: first places in the centre
		won, err := board.PlaceMark(4)

		// Then: the cell holds A and one cell less is free
		require.NoError(t, err)
		assert.False(t, won)
		assert.Equal(t, x, board.Cells()[4])
		assert.Equal(t, 8, board.FreeCells())
		assert.Equal(t, entity.SideFirst, board.Side())
	})

	t.Run("PlaceMark reports a completed triple", func(t *testing.T) {
		// Given: A owns 0 and 3
		board := NewBoardFromCells([entity.BoardSize]entity.Cell{x, e, e, x, e, e, e, o, o}, entity.SideFirst)

		// When: A completes the left column
		won, err := board.PlaceMark(6)

		// Then: a win is reported
		require.NoError(t, err)
		assert.True(t, won)
		line, ok := board.WinningTriple(x)
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 3, 6}, line)
	})

	t.Run("Error on uninitialized game", func(t *testing.T) {
		// Given: a board that was never reset
		board := NewBoard()

		// When: a mark is placed
		_, err := board.PlaceMark(0)

		// Then: the move is illegal because the game is not started
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: first has played cell 0
		board := NewBoard()
		board.Reset(entity.SideFirst)
		_, err := board.PlaceMark(0)
		require.NoError(t, err)
		board.SwitchSide()
		before := *board

		// When: second tries the same cell
		_, err = board.PlaceMark(0)

		// Then: ErrIllegalMove and ErrCellOccupied are returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, before, *board)
	})

	t.Run("Invalid cell", func(t *testing.T) {
		board := NewBoard()
		board.Reset(entity.SideFirst)

		for _, index := range []int{-1, 9, 20} {
			// When: an index outside the board is passed
			_, err := board.PlaceMark(index)

			// Then: it is both illegal and an invalid index
			require.ErrorIs(t, err, apperror.ErrIllegalMove)
			require.ErrorIs(t, err, apperror.ErrInvalidIndex)
		}
		assert.Equal(t, 9, board.FreeCells())
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a concluded game with free cells left
		board := NewBoardFromCells([entity.BoardSize]entity.Cell{x, x, x, e, o, e, e, o, e}, entity.SideSecond)
		require.NoError(t, board.Conclude(entity.OutcomeFirstWins))

		// When: second tries to move
		_, err := board.PlaceMark(3)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Move on a full board", func(t *testing.T) {
		// Given: a full board that has not been concluded
		board := NewBoardFromCells([entity.BoardSize]entity.Cell{x, o, x, x, o, o, o, x, x}, entity.SideFirst)

		// When: a move is attempted
		_, err := board.PlaceMark(0)

		// Then: no cells are available
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrNoFreeCellsAvailable)
	})
}

func TestBoard_UndoMark(t *testing.T) {
	t.Run("Place then undo restores every position", func(t *testing.T) {
		forEachConfiguration(func(cells [entity.BoardSize]entity.Cell) {
			for _, side := range []entity.Side{entity.SideFirst, entity.SideSecond} {
				board := NewBoardFromCells(cells, side)
				for _, index := range board.FreeIndices() {
					before := *board

					_, err := board.PlaceMark(index)
					require.NoError(t, err)
					require.NoError(t, board.UndoMark(index))

					require.Equal(t, before, *board)
				}
			}
		})
	})

	t.Run("Undo of an empty cell fails", func(t *testing.T) {
		board := NewBoard()
		board.Reset(entity.SideFirst)

		err := board.UndoMark(3)

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, 9, board.FreeCells())
	})

	t.Run("Undo out of range fails", func(t *testing.T) {
		board := NewBoard()
		board.Reset(entity.SideFirst)

		require.ErrorIs(t, board.UndoMark(9), apperror.ErrInvalidIndex)
	})
}

func TestBoard_CheckWin(t *testing.T) {
	t.Run("CheckWin matches triple membership for every configuration", func(t *testing.T) {
		forEachConfiguration(func(cells [entity.BoardSize]entity.Cell) {
			board := NewBoardFromCells(cells, entity.SideFirst)

			require.Equal(t, ownsTriple(cells, x), board.CheckWin(x), "cells %v", cells)
			require.Equal(t, ownsTriple(cells, o), board.CheckWin(o), "cells %v", cells)
		})
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a position without a winner
		board := NewBoardFromCells([entity.BoardSize]entity.Cell{x, o, x, e, o, e, x, e, e}, entity.SideSecond)

		// Then: nobody has won
		assert.False(t, board.CheckWin(x))
		assert.False(t, board.CheckWin(o))
	})

	t.Run("Winner on the diagonal", func(t *testing.T) {
		board := NewBoardFromCells([entity.BoardSize]entity.Cell{o, x, e, x, o, e, x, e, o}, entity.SideFirst)

		line, ok := board.WinningTriple(o)

		require.True(t, ok)
		assert.Equal(t, [3]int{0, 4, 8}, line)
	})
}

func TestBoard_Queries(t *testing.T) {
	t.Run("IsCellFree", func(t *testing.T) {
		board := NewBoardFromCells([entity.BoardSize]entity.Cell{x, e, e, e, e, e, e, e, e}, entity.SideSecond)

		free, err := board.IsCellFree(0)
		require.NoError(t, err)
		assert.False(t, free)

		free, err = board.IsCellFree(1)
		require.NoError(t, err)
		assert.True(t, free)

		_, err = board.IsCellFree(-1)
		require.ErrorIs(t, err, apperror.ErrInvalidIndex)
	})

	t.Run("FreeIndices are ascending", func(t *testing.T) {
		board := NewBoardFromCells([entity.BoardSize]entity.Cell{x, e, o, e, x, e, e, o, e}, entity.SideSecond)

		assert.Equal(t, []int{1, 3, 5, 6, 8}, board.FreeIndices())
		assert.Equal(t, 5, board.FreeCells())
	})

	t.Run("SwitchSide toggles", func(t *testing.T) {
		board := NewBoard()
		board.Reset(entity.SideFirst)

		board.SwitchSide()
		assert.Equal(t, entity.SideSecond, board.Side())
		board.SwitchSide()
		assert.Equal(t, entity.SideFirst, board.Side())
	})

	t.Run("Conclude twice fails", func(t *testing.T) {
		board := NewBoardFromCells([entity.BoardSize]entity.Cell{x, o, x, x, o, o, o, x, x}, entity.SideFirst)

		require.NoError(t, board.Conclude(entity.OutcomeDraw))
		require.ErrorIs(t, board.Conclude(entity.OutcomeDraw), apperror.ErrGameFinished)
		assert.Equal(t, entity.StatusDraw, board.Status())
	})

	t.Run("Conclude before start fails", func(t *testing.T) {
		require.ErrorIs(t, NewBoard().Conclude(entity.OutcomeDraw), apperror.ErrGameIsNotStarted)
	})
}
