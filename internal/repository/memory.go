package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/alignment-games/internal/entity"
)

// memoryMatch is the MatchRepository used when redis is disabled. Matches are
// stored as JSON so callers never share a pointer with the store.
type memoryMatch struct {
	mu      sync.Mutex
	matches map[string][]byte
}

func NewInMemoryMatchRepository() MatchRepository {
	return &memoryMatch{
		matches: make(map[string][]byte),
	}
}

func (that *memoryMatch) CreateOrUpdate(_ context.Context, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[match.ID] = matchJSON

	return nil
}

func (that *memoryMatch) GetByID(_ context.Context, id string) (*entity.Match, error) {
	that.mu.Lock()
	matchJSON, ok := that.matches[id]
	that.mu.Unlock()

	if !ok {
		return &entity.Match{}, ErrMatchNotFound
	}

	var existingMatch entity.Match
	if err := json.Unmarshal(matchJSON, &existingMatch); err != nil {
		return &entity.Match{}, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &existingMatch, nil
}

func (that *memoryMatch) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[id]; !ok {
		return ErrMatchNotFound
	}

	delete(that.matches, id)

	return nil
}
