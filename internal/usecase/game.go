package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Session - a series of games on one manager with a running score.
type Session struct {
	manager      *GameManager
	scoreboard   *Scoreboard
	startingSide string
}

// NewSession - startingSide is "first", "second" or "random"; random flips a coin for every game.
func NewSession(manager *GameManager, startingSide string) (*Session, error) {
	if _, err := entity.ParseSide(startingSide); err != nil {
		return nil, fmt.Errorf("invalid starting side: %w", err)
	}

	session := &Session{
		manager:      manager,
		scoreboard:   NewScoreboard(),
		startingSide: startingSide,
	}
	manager.OnGameOver(session.scoreboard.Record)

	return session, nil
}

// NextGame - starts a new game and returns the side that moves first.
func (that *Session) NextGame(ctx context.Context) (entity.Side, error) {
	side, err := entity.ParseSide(that.startingSide)
	if err != nil {
		return side, fmt.Errorf("invalid starting side: %w", err)
	}

	if err = that.manager.StartGame(ctx, side); err != nil {
		return side, fmt.Errorf("failed to start game: %w", err)
	}

	return side, nil
}

func (that *Session) Scoreboard() *Scoreboard {
	return that.scoreboard
}
