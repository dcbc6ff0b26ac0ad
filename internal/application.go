package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/alignment-games/internal/config"
	"github.com/rocketscienceinc/alignment-games/internal/entity"
	"github.com/rocketscienceinc/alignment-games/internal/game"
	"github.com/rocketscienceinc/alignment-games/internal/repository"
	"github.com/rocketscienceinc/alignment-games/internal/repository/storage"
	"github.com/rocketscienceinc/alignment-games/internal/service"
	"github.com/rocketscienceinc/alignment-games/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one bot-versus-bot match of the configured variant.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	matchRepo, closeRepo, err := initMatchRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	seed := conf.Match.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runner := usecase.NewMatchRunner(logger, matchRepo, usecase.Options{
		Out:        os.Stdout,
		PrintBoard: !conf.Match.HideBoard,
		MaxRetries: conf.Match.MaxRetries,
	})

	// a coin flip decides which bot opens
	botA := entity.NewBotPlayer("bot-a", game.Empty)
	botB := entity.NewBotPlayer("bot-b", game.Empty)
	seatA := usecase.Seat{Player: botA, Strategy: service.NewBotService(seed)}
	seatB := usecase.Seat{Player: botB, Strategy: service.NewBotService(seed + 1)}

	seatX, seatO := seatA, seatB
	if first, _ := (&entity.Match{}).GetRandomMarks(); first == game.O {
		seatX, seatO = seatB, seatA
	}

	match, err := runner.Play(ctx, game.Variant(conf.Variant), seatX, seatO)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	log.Info("Match result", "matchID", match.ID, "winner", match.Winner, "moves", match.Moves)

	return nil
}

// initMatchRepository returns the redis-backed store when enabled, otherwise an
// in-memory one.
func initMatchRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.MatchRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Redis disabled, keeping match snapshots in memory")
		return repository.NewInMemoryMatchRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewMatchRepository(redisStorage), closeFn, nil
}
