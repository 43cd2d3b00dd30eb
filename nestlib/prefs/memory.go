package prefs

import (
	"context"
	"sync"
)

// memoryRepository keeps everything in process memory. It is the
// fallback when no database is configured, mirroring how the browser
// version degrades when local storage is unavailable.
type memoryRepository struct {
	mu     sync.RWMutex
	prefs  map[string]Preferences
	recent map[string][]RecentGame
}

// NewMemoryRepository returns an in-memory Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		prefs:  make(map[string]Preferences),
		recent: make(map[string][]RecentGame),
	}
}

func (r *memoryRepository) GetPreferences(_ context.Context, userID string) (*Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.prefs[userID]; ok {
		out := p
		return &out, nil
	}
	return DefaultPreferences(userID), nil
}

func (r *memoryRepository) SavePreferences(_ context.Context, p *Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs[p.UserID] = *p
	return nil
}

func (r *memoryRepository) GetRecent(_ context.Context, userID string) ([]RecentGame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]RecentGame(nil), r.recent[userID]...), nil
}

func (r *memoryRepository) SaveRecent(_ context.Context, userID string, games []RecentGame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recent[userID] = append([]RecentGame(nil), games...)
	return nil
}
