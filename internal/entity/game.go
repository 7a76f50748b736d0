package entity

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownOutcome = errors.New("unknown outcome")

// Cell - content of a single board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellA
	CellB
)

const (
	MarkA     = "X"
	MarkB     = "O"
	EmptyMark = " "
)

const BoardSize = 9

type Status uint8

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusWonByFirst
	StatusWonBySecond
	StatusDraw
)

// Outcome - result carried by the game-over notification.
type Outcome uint8

const (
	OutcomeFirstWins Outcome = iota
	OutcomeSecondWins
	OutcomeDraw
)

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Cell) String() string {
	switch that {
	case CellA:
		return MarkA
	case CellB:
		return MarkB
	default:
		return EmptyMark
	}
}

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in_progress"
	case StatusWonByFirst:
		return "won_by_first"
	case StatusWonBySecond:
		return "won_by_second"
	case StatusDraw:
		return "draw"
	default:
		return "not_started"
	}
}

func (that Status) IsFinished() bool {
	return that == StatusWonByFirst || that == StatusWonBySecond || that == StatusDraw
}

// OutcomeForWinner - the outcome of a game won by the given side.
func OutcomeForWinner(side Side) Outcome {
	if side == SideSecond {
		return OutcomeSecondWins
	}

	return OutcomeFirstWins
}

// Status - the terminal status matching the outcome.
func (that Outcome) Status() Status {
	switch that {
	case OutcomeFirstWins:
		return StatusWonByFirst
	case OutcomeSecondWins:
		return StatusWonBySecond
	default:
		return StatusDraw
	}
}

// Winner - the winning side, false on a draw.
func (that Outcome) Winner() (Side, bool) {
	switch that {
	case OutcomeFirstWins:
		return SideFirst, true
	case OutcomeSecondWins:
		return SideSecond, true
	default:
		return SideFirst, false
	}
}

func (that Outcome) String() string {
	switch that {
	case OutcomeFirstWins:
		return "first_wins"
	case OutcomeSecondWins:
		return "second_wins"
	default:
		return "draw"
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "first_wins":
		*that = OutcomeFirstWins
	case "second_wins":
		*that = OutcomeSecondWins
	case "draw":
		*that = OutcomeDraw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, text)
	}

	return nil
}

// Snapshot - read-only copy of the board used for rendering.
type Snapshot struct {
	Cells     [BoardSize]Cell
	Turn      Side
	FreeCells int
	Status    Status
}

// Mark - rendered content of the cell at index.
func (that Snapshot) Mark(index int) string {
	if index < 0 || index >= BoardSize {
		return EmptyMark
	}

	return that.Cells[index].String()
}

// GameResult - summary of a finished game.
type GameResult struct {
	GameID     string            `json:"game_id"`
	Outcome    Outcome           `json:"outcome"`
	Winner     string            `json:"winner,omitempty"`
	Board      [BoardSize]string `json:"board"`
	Line       []int             `json:"line,omitempty"`
	Moves      int               `json:"moves"`
	FinishedAt time.Time         `json:"finished_at"`
}

// NewGameResult - builds a result from the final cells. line is nil on a draw.
func NewGameResult(gameID string, outcome Outcome, cells [BoardSize]Cell, line []int, finishedAt time.Time) *GameResult {
	result := &GameResult{
		GameID:     gameID,
		Outcome:    outcome,
		Line:       line,
		FinishedAt: finishedAt,
	}

	if winner, ok := outcome.Winner(); ok {
		result.Winner = winner.Mark().String()
	}

	for i, cell := range cells {
		result.Board[i] = cell.String()
		if cell != CellEmpty {
			result.Moves++
		}
	}

	return result
}

func (that *GameResult) IsDraw() bool {
	return that.Outcome == OutcomeDraw
}
