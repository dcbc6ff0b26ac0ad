package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/alignment-games/internal/apperror"
	"github.com/rocketscienceinc/alignment-games/internal/game"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerTie = "-"
)

var (
	ErrInvalidCell        = errors.New("invalid cell index")
	ErrUnknownMatchStatus = errors.New("unknown match status")
)

// Match is the orchestrator's view of one running game: whose turn it is, who
// plays which mark and the latest board. The board itself is owned by a
// game.Game; Match only mirrors it.
type Match struct {
	ID       string       `json:"id"`
	Variant  game.Variant `json:"variant"`
	Board    game.State   `json:"board"`
	LastMove *game.Coord  `json:"last_move,omitempty"`
	Winner   string       `json:"winner"`
	Status   string       `json:"status"`
	Turn     game.Mark    `json:"player_turn"`
	Moves    int          `json:"moves"`
	Players  []*Player    `json:"players,omitempty"`
}

func NewMatch(id string, variant game.Variant) *Match {
	return &Match{
		ID:      id,
		Variant: variant,
		Turn:    game.X,
		Status:  StatusWaiting,
	}
}

// DetermineGameResult returns the winning mark, PlayerTie for a draw, or an
// empty string while the game continues.
func (that *Match) DetermineGameResult(g game.Game) string {
	for _, mark := range game.Marks {
		if g.Wins(mark, game.Live()) {
			return string(mark)
		}
	}

	if g.GameOver() {
		return PlayerTie
	}

	return ""
}

// UpdateGameState copies the board from g and settles status and winner.
func (that *Match) UpdateGameState(g game.Game) {
	that.Board = g.Snapshot()
	if last, ok := g.LastMove(); ok {
		that.LastMove = &last
	}

	switch winner := that.DetermineGameResult(g); winner {
	// one player wins or the board is full
	case string(game.X), string(game.O), PlayerTie:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = game.Empty
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

// MakeTurn plays mark at cell on g for the player whose turn it is and passes
// the turn on.
func (that *Match) MakeTurn(g game.Game, mark game.Mark, cell game.Coord) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	size := g.Size()
	if cell.Row < 0 || cell.Row >= size || cell.Col < 0 || cell.Col >= size {
		return fmt.Errorf("%w: cell (%d,%d)", ErrInvalidCell, cell.Row, cell.Col)
	}

	if !g.SetMove(cell.Row, cell.Col, mark) {
		return fmt.Errorf("%w: cell (%d,%d)", apperror.ErrCellOccupied, cell.Row, cell.Col)
	}

	that.Moves++
	that.Turn = mark.Opponent()
	that.UpdateGameState(g)

	return nil
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Match) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMatchStatus, that.Status)
	}
}

// PlayerByMark returns the player holding mark, or nil.
func (that *Match) PlayerByMark(mark game.Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

func (that *Match) GetRandomMarks() (game.Mark, game.Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return game.X, game.O
	}
	return game.O, game.X
}
