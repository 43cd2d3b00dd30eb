package prefs

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

const defaultQueryTimeout = 5 * time.Second

// Repository persists user preferences and the recently-played list.
//
//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	GetPreferences(ctx context.Context, userID string) (*Preferences, error)
	SavePreferences(ctx context.Context, p *Preferences) error
	GetRecent(ctx context.Context, userID string) ([]RecentGame, error)
	SaveRecent(ctx context.Context, userID string, games []RecentGame) error
}

type bunRepository struct {
	db *bun.DB
}

// NewRepository returns a Postgres-backed repository.
func NewRepository(db *bun.DB) Repository {
	return &bunRepository{db: db}
}

func (r *bunRepository) GetPreferences(ctx context.Context, userID string) (*Preferences, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	p := new(Preferences)
	err := r.db.NewSelect().
		Model(p).
		Where("user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultPreferences(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *bunRepository) SavePreferences(ctx context.Context, p *Preferences) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	p.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(p).
		On("CONFLICT (user_id) DO UPDATE").
		Set("language = EXCLUDED.language").
		Set("theme = EXCLUDED.theme").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *bunRepository) GetRecent(ctx context.Context, userID string) ([]RecentGame, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	var games []RecentGame
	err := r.db.NewSelect().
		Model(&games).
		Where("user_id = ?", userID).
		Order("played_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (r *bunRepository) SaveRecent(ctx context.Context, userID string, games []RecentGame) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*RecentGame)(nil)).
			Where("user_id = ?", userID).
			Exec(ctx); err != nil {
			return err
		}
		if len(games) == 0 {
			return nil
		}
		for i := range games {
			games[i].UserID = userID
		}
		_, err := tx.NewInsert().Model(&games).Exec(ctx)
		return err
	})
}
