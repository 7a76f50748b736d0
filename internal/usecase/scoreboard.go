package usecase

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Scoreboard - running totals over the games of one session.
type Scoreboard struct {
	mu    sync.Mutex
	wins  [2]int
	draws int
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// Record - credits the winner or counts a draw. Usable as a GameOverListener.
func (that *Scoreboard) Record(result *entity.GameResult) {
	that.mu.Lock()
	defer that.mu.Unlock()

	winner, ok := result.Outcome.Winner()
	if !ok {
		that.draws++
		return
	}

	that.wins[winner]++
}

func (that *Scoreboard) Wins(side entity.Side) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.wins[side]
}

func (that *Scoreboard) Draws() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.draws
}

func (that *Scoreboard) Games() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.wins[entity.SideFirst] + that.wins[entity.SideSecond] + that.draws
}
