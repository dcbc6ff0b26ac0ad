package service

import (
	"context"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/alignment-games/internal/apperror"
	"github.com/rocketscienceinc/alignment-games/internal/game"
)

// Player decides where a mark goes next. It only reads the board through the
// game contract; committing the move is the caller's job.
type Player interface {
	NextMove(ctx context.Context, g game.Game, mark game.Mark) (game.Coord, error)
}

type botService struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewBotService returns a player that picks uniformly among the empty cells.
func NewBotService(seed int64) Player {
	return &botService{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *botService) NextMove(ctx context.Context, g game.Game, _ game.Mark) (game.Coord, error) {
	if err := ctx.Err(); err != nil {
		return game.NoMove, err
	}

	availableCells := g.EmptyCells(game.Live())
	if len(availableCells) == 0 {
		return game.NoMove, apperror.ErrNoAvailableMoves
	}

	that.mu.Lock()
	chosen := availableCells[that.rnd.Intn(len(availableCells))]
	that.mu.Unlock()

	return chosen, nil
}
