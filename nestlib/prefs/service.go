package prefs

import (
	"context"
	"fmt"
	"time"

	"github.com/daiphu1801/NestGameLibrary/nestlib/catalog"
)

// Service wraps a Repository with validation and the recent-list rules.
type Service struct {
	repository  Repository
	recentLimit int
}

// NewService creates a Service. recentLimit <= 0 uses DefaultRecentLimit.
func NewService(repository Repository, recentLimit int) *Service {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &Service{repository: repository, recentLimit: recentLimit}
}

// Preferences returns the stored preferences for userID, or defaults.
func (s *Service) Preferences(ctx context.Context, userID string) (*Preferences, error) {
	return s.repository.GetPreferences(ctx, userID)
}

// SetLanguage persists a new UI language.
func (s *Service) SetLanguage(ctx context.Context, userID, language string) (*Preferences, error) {
	if !ValidLanguage(language) {
		return nil, fmt.Errorf("unsupported language %q", language)
	}

	p, err := s.repository.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Language = language
	if err := s.repository.SavePreferences(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetTheme persists a new theme.
func (s *Service) SetTheme(ctx context.Context, userID, theme string) (*Preferences, error) {
	if !ValidTheme(theme) {
		return nil, fmt.Errorf("unsupported theme %q", theme)
	}

	p, err := s.repository.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Theme = theme
	if err := s.repository.SavePreferences(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Recent returns the recently-played list, most recent first.
func (s *Service) Recent(ctx context.Context, userID string) ([]RecentGame, error) {
	return s.repository.GetRecent(ctx, userID)
}

// RecordPlay puts a game at the front of the recently-played list,
// de-duplicating by game id and trimming to the configured limit.
func (s *Service) RecordPlay(ctx context.Context, userID string, game catalog.GameRecord) ([]RecentGame, error) {
	list, err := s.repository.GetRecent(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := RecentGame{
		UserID:   userID,
		GameID:   game.ID,
		Name:     game.Name,
		Category: game.Category,
		Path:     game.Path,
		Rating:   game.Rating,
		PlayedAt: time.Now(),
	}

	updated := pushRecent(list, entry, s.recentLimit)
	if err := s.repository.SaveRecent(ctx, userID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
