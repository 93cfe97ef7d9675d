package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

// ResultStorage provides in-memory storage for finished games.
type ResultStorage struct {
	mu      sync.RWMutex
	results []*entities.GameResult
}

// NewResultStorage creates a new ResultStorage.
func NewResultStorage() *ResultStorage {
	return &ResultStorage{}
}

// Save stores a copy of the result.
func (s *ResultStorage) Save(_ context.Context, result *entities.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := *result
	r.Turns = append([]entities.Turn(nil), result.Turns...)
	s.results = append(s.results, &r)
	return nil
}

// Top returns up to limit results ordered by score, highest first.
// Equal scores keep the earlier game first.
func (s *ResultStorage) Top(_ context.Context, limit int) ([]*entities.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]*entities.GameResult, len(s.results))
	copy(sorted, s.results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted, nil
}

// Len returns the number of stored results.
func (s *ResultStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
