package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

type fixture struct {
	manager *usecase.GameManager
	session *usecase.Session
	out     *bytes.Buffer
}

func newFixture(t *testing.T, aiFirst, aiSecond bool) *fixture {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	manager := usecase.NewGameManager(logger, service.NewBotPlayer(logger, minimax.New(), 0))
	require.NoError(t, manager.SetAIControlled(ctx, entity.SideFirst, aiFirst))
	require.NoError(t, manager.SetAIControlled(ctx, entity.SideSecond, aiSecond))

	session, err := usecase.NewSession(manager, entity.SideFirstName)
	require.NoError(t, err)

	return &fixture{manager: manager, session: session, out: &bytes.Buffer{}}
}

func (that *fixture) console(input string, options ...Option) *Console {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return New(logger, strings.NewReader(input), that.out, that.manager, that.session, options...)
}

// interruptedGame - runs the next failures move requests with an already cancelled context.
type interruptedGame struct {
	*usecase.GameManager
	failures int
}

func (that *interruptedGame) RequestMove(ctx context.Context, index int) error {
	if that.failures > 0 {
		that.failures--

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		return that.GameManager.RequestMove(cancelled, index)
	}

	return that.GameManager.RequestMove(ctx, index)
}

func TestConsole_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Human game ends with a win and the score", func(t *testing.T) {
		// Given: two humans and one game to play
		f := newFixture(t, false, false)
		console := f.console("1\n4\n2\n5\n3\n", WithGames(1))

		// When: X fills the top row
		err := console.Run(ctx)

		// Then: the win and the score are printed
		require.NoError(t, err)
		output := f.out.String()
		assert.Contains(t, output, "New game: X moves first.")
		assert.Contains(t, output, "X wins!")
		assert.Contains(t, output, "Score: X 1 - O 0, draws 0")
		assert.Equal(t, 1, f.session.Scoreboard().Wins(entity.SideFirst))
	})

	t.Run("Bad input is reported and the prompt repeats", func(t *testing.T) {
		// Given: garbage, an out-of-range number and an occupied cell before valid moves
		f := newFixture(t, false, false)
		console := f.console("abc\n0\n1\n1\n4\n2\n5\n3\n", WithGames(1))

		// When: running
		err := console.Run(ctx)

		// Then: each problem is explained and the game still finishes
		require.NoError(t, err)
		output := f.out.String()
		assert.Contains(t, output, `enter a cell number from 1 to 9: got "abc"`)
		assert.Contains(t, output, `enter a cell number from 1 to 9: got "0"`)
		assert.Contains(t, output, "That cell is already taken.")
		assert.Contains(t, output, "X wins!")
	})

	t.Run("Two AI sides draw every game", func(t *testing.T) {
		// Given: both sides AI-controlled and two games
		f := newFixture(t, true, true)
		console := f.console("", WithGames(2))

		// When: running without any input
		err := console.Run(ctx)

		// Then: both games are drawn
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(f.out.String(), "Draw."))
		assert.Equal(t, 2, f.session.Scoreboard().Draws())
	})

	t.Run("Probes are shown when enabled", func(t *testing.T) {
		// Given: the AI plays second and probes are shown
		f := newFixture(t, false, true)
		console := f.console("5\nq\n", WithGames(1), WithProbes(true))

		// When: the human moves once and quits
		err := console.Run(ctx)

		// Then: the AI announced its root candidates
		require.NoError(t, err)
		assert.Contains(t, f.out.String(), "O thinking: cell 1")
	})

	t.Run("Failed AI reply is resumed", func(t *testing.T) {
		// Given: the AI plays second and its first reply is interrupted
		f := newFixture(t, false, true)
		game := &interruptedGame{GameManager: f.manager, failures: 1}
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		console := New(logger, strings.NewReader("5\nq\n"), f.out, game, f.session, WithGames(1))

		// When: the human moves once and quits
		err := console.Run(ctx)

		// Then: the AI still answered and the human was prompted again
		require.NoError(t, err)
		snapshot := f.manager.Snapshot()
		assert.Equal(t, 7, snapshot.FreeCells)
		assert.Equal(t, entity.CellA, snapshot.Cells[4])
		assert.Equal(t, entity.SideFirst, snapshot.Turn)
		assert.Equal(t, 2, strings.Count(f.out.String(), "X to move"))
	})

	t.Run("End of input stops the console", func(t *testing.T) {
		f := newFixture(t, false, false)
		console := f.console("1\n")

		err := console.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, 8, f.manager.Snapshot().FreeCells)
	})

	t.Run("Declining another game stops the console", func(t *testing.T) {
		// Given: unlimited games, one won game then "n"
		f := newFixture(t, false, false)
		console := f.console("1\n4\n2\n5\n3\nn\n")

		// When: running
		err := console.Run(ctx)

		// Then: exactly one game was played
		require.NoError(t, err)
		assert.Equal(t, 1, f.session.Scoreboard().Games())
		assert.Contains(t, f.out.String(), "Play again? [Y/n]: ")
	})
}

func TestParseCell(t *testing.T) {
	index, err := parseCell("9")
	require.NoError(t, err)
	assert.Equal(t, 8, index)

	for _, input := range []string{"", "0", "10", "x", "-1"} {
		_, err = parseCell(input)
		require.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}
}
