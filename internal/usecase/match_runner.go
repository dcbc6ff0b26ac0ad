package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/alignment-games/internal/apperror"
	"github.com/rocketscienceinc/alignment-games/internal/entity"
	"github.com/rocketscienceinc/alignment-games/internal/game"
	"github.com/rocketscienceinc/alignment-games/internal/service"
)

const defaultMaxRetries = 3

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	DeleteByID(ctx context.Context, id string) error
}

// Seat binds a match participant to the strategy that chooses its moves.
type Seat struct {
	Player   *entity.Player
	Strategy service.Player
}

type Options struct {
	// Out receives the rendered boards. Nil means stdout.
	Out io.Writer
	// PrintBoard renders the board after every move.
	PrintBoard bool
	// MaxRetries is how many rejected moves a player may make in one turn.
	MaxRetries int
}

// MatchRunner drives the turn loop around a game.Game: it asks the seated
// players for moves, commits them, and stops once the game is over. Whose turn
// it is lives here, not in the game.
type MatchRunner struct {
	logger    *slog.Logger
	matchRepo matchRepo
	options   Options
}

func NewMatchRunner(logger *slog.Logger, matchRepo matchRepo, options Options) *MatchRunner {
	if options.MaxRetries <= 0 {
		options.MaxRetries = defaultMaxRetries
	}

	return &MatchRunner{
		logger:    logger.With("component", "match_runner"),
		matchRepo: matchRepo,
		options:   options,
	}
}

// Play runs one match of the given variant to completion. X moves first.
func (that *MatchRunner) Play(ctx context.Context, variant game.Variant, seatX, seatO Seat) (*entity.Match, error) {
	g, err := game.New(variant, that.options.Out)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	match, err := that.createMatch(ctx, g, seatX, seatO)
	if err != nil {
		return nil, err
	}

	log := that.logger.With("method", "Play", "matchID", match.ID, "variant", variant)
	log.Info("match started", "playerX", seatX.Player.ID, "playerO", seatO.Player.ID)

	seats := map[game.Mark]Seat{
		game.X: seatX,
		game.O: seatO,
	}

	g.InitBoard()

	for match.IsOngoing() {
		if err = ctx.Err(); err != nil {
			that.cleanupMatch(ctx, match)
			return match, fmt.Errorf("match interrupted: %w", err)
		}

		if err = that.playTurn(ctx, g, match, seats[match.Turn]); err != nil {
			that.cleanupMatch(ctx, match)
			return match, fmt.Errorf("failed to play turn %d: %w", match.Moves+1, err)
		}

		if that.options.PrintBoard {
			g.PrintBoard()
		}

		if err = that.updateMatch(ctx, match); err != nil {
			that.cleanupMatch(ctx, match)
			return match, err
		}
	}

	log.Info("match finished", "winner", match.Winner, "moves", match.Moves)
	that.cleanupMatch(ctx, match)

	return match, nil
}

func (that *MatchRunner) createMatch(ctx context.Context, g game.Game, seatX, seatO Seat) (*entity.Match, error) {
	match := entity.NewMatch(uuid.NewString(), g.Variant())

	seatX.Player.Mark = game.X
	seatO.Player.Mark = game.O
	match.Players = []*entity.Player{seatX.Player, seatO.Player}
	match.Board = g.Snapshot()
	match.Status = entity.StatusOngoing

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return match, nil
}

// playTurn asks the seat for a move until the board accepts one or the retry
// budget runs out.
func (that *MatchRunner) playTurn(ctx context.Context, g game.Game, match *entity.Match, seat Seat) error {
	mark := match.Turn
	log := that.logger.With("method", "playTurn", "matchID", match.ID, "mark", mark)

	for attempt := 0; attempt <= that.options.MaxRetries; attempt++ {
		cell, err := seat.Strategy.NextMove(ctx, g, mark)
		if err != nil {
			return fmt.Errorf("player %s failed to choose a move: %w", seat.Player.ID, err)
		}

		err = match.MakeTurn(g, mark, cell)
		switch {
		case err == nil:
			log.Debug("move committed", "row", cell.Row, "col", cell.Col)
			return nil
		case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, entity.ErrInvalidCell):
			log.Warn("move rejected", "row", cell.Row, "col", cell.Col, "attempt", attempt+1, "error", err)
		default:
			return fmt.Errorf("failed to make turn: %w", err)
		}
	}

	return fmt.Errorf("%w: player %s", apperror.ErrInvalidMove, seat.Player.ID)
}

func (that *MatchRunner) updateMatch(ctx context.Context, match *entity.Match) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	return nil
}

// cleanupMatch drops the stored snapshot; no history is kept once a match ends.
func (that *MatchRunner) cleanupMatch(ctx context.Context, match *entity.Match) {
	log := that.logger.With("method", "cleanupMatch", "matchID", match.ID)

	if err := that.matchRepo.DeleteByID(context.WithoutCancel(ctx), match.ID); err != nil {
		log.Error("failed to delete match", "error", err)
		return
	}

	log.Debug("match deleted")
}
