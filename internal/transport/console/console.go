package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

const quitCommand = "q"

var (
	errQuit           = errors.New("player quit")
	ErrInvalidInput   = errors.New("enter a cell number from 1 to 9")
	ErrNoPlayerToMove = errors.New("no human player to move")
)

type uGame interface {
	RequestMove(ctx context.Context, index int) error
	Resume(ctx context.Context) error
	Snapshot() entity.Snapshot
	IsAIControlled(side entity.Side) bool
	OnGameOver(listener usecase.GameOverListener)
	OnSearchProbe(probe minimax.ProbeFunc)
}

type uSession interface {
	NextGame(ctx context.Context) (entity.Side, error)
	Scoreboard() *usecase.Scoreboard
}

// Console - plays games on a line-based terminal. Cells are numbered 1-9 like a phone keypad.
type Console struct {
	logger  *slog.Logger
	in      *bufio.Scanner
	out     io.Writer
	game    uGame
	session uSession

	games      int
	showProbes bool
	lastResult *entity.GameResult
}

type Option func(console *Console)

// WithGames - stops after n games instead of asking to play again. Zero means unlimited.
func WithGames(n int) Option {
	return func(that *Console) {
		that.games = n
	}
}

// WithProbes - prints the root candidates the AI is considering.
func WithProbes(show bool) Option {
	return func(that *Console) {
		that.showProbes = show
	}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, game uGame, session uSession, options ...Option) *Console {
	console := &Console{
		logger:  logger.With("component", "console"),
		in:      bufio.NewScanner(in),
		out:     out,
		game:    game,
		session: session,
	}

	for _, option := range options {
		option(console)
	}

	return console
}

// Run - plays games until the player quits, input ends, the game limit is reached or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.game.OnGameOver(func(result *entity.GameResult) {
		that.lastResult = result
	})

	if that.showProbes {
		that.game.OnSearchProbe(that.printProbe)
	}

	for played := 0; that.games == 0 || played < that.games; played++ {
		that.lastResult = nil

		side, err := that.session.NextGame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to start game: %w", err)
		}

		that.printf("\nNew game: %s moves first.\n", side.Mark())

		err = that.playGame(ctx)
		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF), ctx.Err() != nil:
			log.Info("console stopped", "games", played)
			return nil
		case err != nil:
			return err
		}

		that.printResult()

		if that.games == 0 && !that.askPlayAgain() {
			return nil
		}
	}

	return nil
}

// playGame - reads and forwards human moves until the game is over.
func (that *Console) playGame(ctx context.Context) error {
	log := that.logger.With("method", "playGame")

	for {
		snapshot := that.game.Snapshot()
		if snapshot.Status.IsFinished() {
			that.render(snapshot)
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if that.game.IsAIControlled(snapshot.Turn) {
			if err := that.game.Resume(ctx); err != nil {
				return fmt.Errorf("%w: %s side is AI-controlled: %w", ErrNoPlayerToMove, snapshot.Turn, err)
			}
			continue
		}

		that.render(snapshot)
		that.printf("%s to move [1-9, %s to quit]: ", snapshot.Turn.Mark(), quitCommand)

		line, err := that.readLine()
		if err != nil {
			return err
		}

		if line == quitCommand {
			return errQuit
		}

		index, err := parseCell(line)
		if err != nil {
			that.printf("%v\n", err)
			continue
		}

		if err = that.game.RequestMove(ctx, index); err != nil {
			if errors.Is(err, apperror.ErrIllegalMove) || errors.Is(err, apperror.ErrNotYourTurn) {
				that.printf("%s\n", describeMoveError(err))
				continue
			}

			if errors.Is(err, apperror.ErrAITurnFailed) && ctx.Err() == nil {
				log.Warn("ai reply failed, retrying", "error", err)
				continue
			}

			return fmt.Errorf("failed make turn: %w", err)
		}
	}
}

func (that *Console) askPlayAgain() bool {
	that.printf("Play again? [Y/n]: ")

	line, err := that.readLine()
	if err != nil {
		return false
	}

	switch strings.ToLower(line) {
	case "n", "no", quitCommand:
		return false
	default:
		return true
	}
}

func (that *Console) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Console) render(snapshot entity.Snapshot) {
	var b strings.Builder

	for row := range 3 {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}

		for col := range 3 {
			index := row*3 + col
			if col > 0 {
				b.WriteString("|")
			}

			label := snapshot.Mark(index)
			if snapshot.Cells[index] == entity.CellEmpty {
				label = strconv.Itoa(index + 1)
			}
			b.WriteString(" " + label + " ")
		}
		b.WriteString("\n")
	}

	that.printf("\n%s", b.String())
}

func (that *Console) printResult() {
	if that.lastResult == nil {
		return
	}

	if that.lastResult.IsDraw() {
		that.printf("Draw.\n")
	} else {
		that.printf("%s wins!\n", that.lastResult.Winner)
	}

	score := that.session.Scoreboard()
	that.printf("Score: %s %d - %s %d, draws %d\n",
		entity.SideFirst.Mark(), score.Wins(entity.SideFirst),
		entity.SideSecond.Mark(), score.Wins(entity.SideSecond),
		score.Draws(),
	)
}

func (that *Console) printProbe(probe minimax.Probe) {
	if probe.Depth != 1 {
		return
	}

	that.printf("%s thinking: cell %d\n", probe.Side.Mark(), probe.Index+1)
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// parseCell - converts keypad input 1-9 into a board index.
func parseCell(line string) (int, error) {
	number, err := strconv.Atoi(line)
	if err != nil || number < 1 || number > entity.BoardSize {
		return -1, fmt.Errorf("%w: got %q", ErrInvalidInput, line)
	}

	return number - 1, nil
}

func describeMoveError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "It's not your turn."
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over."
	default:
		return err.Error()
	}
}
