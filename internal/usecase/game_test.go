package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func TestSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects unknown starting side", func(t *testing.T) {
		_, err := NewSession(NewGameManager(newTestLogger(), newBot()), "middle")

		require.ErrorIs(t, err, entity.ErrUnknownSide)
	})

	t.Run("Fixed starting side", func(t *testing.T) {
		// Given: a session where second always starts
		manager := NewGameManager(newTestLogger(), newBot())
		session, err := NewSession(manager, entity.SideSecondName)
		require.NoError(t, err)

		// When: a game starts
		side, err := session.NextGame(ctx)

		// Then: second is to move
		require.NoError(t, err)
		assert.Equal(t, entity.SideSecond, side)
		assert.Equal(t, entity.SideSecond, manager.Snapshot().Turn)
	})

	t.Run("Random starting side is one of the two", func(t *testing.T) {
		manager := NewGameManager(newTestLogger(), newBot())
		session, err := NewSession(manager, entity.SideRandomName)
		require.NoError(t, err)

		side, err := session.NextGame(ctx)

		require.NoError(t, err)
		assert.Contains(t, []entity.Side{entity.SideFirst, entity.SideSecond}, side)
		assert.Equal(t, side, manager.Snapshot().Turn)
	})

	t.Run("Scoreboard follows finished games", func(t *testing.T) {
		// Given: a human session where first starts
		manager := NewGameManager(newTestLogger(), newBot())
		session, err := NewSession(manager, entity.SideFirstName)
		require.NoError(t, err)

		// When: first wins a game and the next one is drawn
		_, err = session.NextGame(ctx)
		require.NoError(t, err)
		playMoves(t, manager, 0, 3, 1, 4, 2)

		_, err = session.NextGame(ctx)
		require.NoError(t, err)
		playMoves(t, manager, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the score reflects both
		scoreboard := session.Scoreboard()
		assert.Equal(t, 1, scoreboard.Wins(entity.SideFirst))
		assert.Zero(t, scoreboard.Wins(entity.SideSecond))
		assert.Equal(t, 1, scoreboard.Draws())
		assert.Equal(t, 2, scoreboard.Games())
	})
}

func TestScoreboard_Record(t *testing.T) {
	// Given: an empty scoreboard
	scoreboard := NewScoreboard()

	// When: recording one result of each kind
	scoreboard.Record(&entity.GameResult{Outcome: entity.OutcomeFirstWins})
	scoreboard.Record(&entity.GameResult{Outcome: entity.OutcomeSecondWins})
	scoreboard.Record(&entity.GameResult{Outcome: entity.OutcomeSecondWins})
	scoreboard.Record(&entity.GameResult{Outcome: entity.OutcomeDraw})

	// Then: each side is credited separately
	assert.Equal(t, 1, scoreboard.Wins(entity.SideFirst))
	assert.Equal(t, 2, scoreboard.Wins(entity.SideSecond))
	assert.Equal(t, 1, scoreboard.Draws())
	assert.Equal(t, 4, scoreboard.Games())
}
