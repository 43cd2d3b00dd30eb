// Package nestlib wires the NES game library together: configuration,
// the in-memory catalog, persisted preferences and the web API.
package nestlib

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daiphu1801/NestGameLibrary/nestlib/catalog"
	"github.com/daiphu1801/NestGameLibrary/nestlib/database"
	"github.com/daiphu1801/NestGameLibrary/nestlib/ingest"
	"github.com/daiphu1801/NestGameLibrary/nestlib/logger"
	"github.com/daiphu1801/NestGameLibrary/nestlib/prefs"
)

func New(cfg *Config, version string, commit string) *App {
	return &App{
		Cfg:     cfg,
		Store:   catalog.NewStore(cfg.Catalog.PageSize),
		Version: version,
		Commit:  commit,
	}
}

type App struct {
	Cfg     *Config
	Store   *catalog.Store
	DB      *database.DB
	Prefs   *prefs.Service
	Version string
	Commit  string
}

// SetupPrefs connects the preferences store. Without a configured
// database it falls back to an in-memory store, so a bare config is
// still a working library.
func (a *App) SetupPrefs(ctx context.Context) error {
	var repo prefs.Repository

	if a.Cfg.DB.Configured() {
		db, err := database.New(ctx, a.Cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect preferences database: %w", err)
		}
		a.DB = db
		repo = prefs.NewRepository(db.BunDB())
		logger.LogSystem("Preferences database connected",
			slog.String("database", a.Cfg.DB.Database))
	} else {
		repo = prefs.NewMemoryRepository()
		logger.LogSystem("No database configured, preferences are in-memory only")
	}

	a.Prefs = prefs.NewService(repo, a.Cfg.Catalog.RecentLimit)
	return nil
}

// LoadCatalog runs the ingest chain and fills the store. The store is
// not served before this returns; the chain's demo fallback guarantees
// it comes back non-empty.
func (a *App) LoadCatalog(ctx context.Context) error {
	normalizer, err := ingest.NewNormalizer(a.Cfg.Storage.BaseURL, a.Cfg.Storage.LegacyBases...)
	if err != nil {
		return err
	}

	// A misconfigured bucket only costs one source in the chain, not
	// startup.
	var bucket ingest.Source
	if a.Cfg.Storage.Bucket.Configured() {
		b, err := ingest.NewBucketSource(ctx, a.Cfg.Storage.Bucket)
		if err != nil {
			logger.LogError("Bucket source unavailable", err)
		} else {
			bucket = b
		}
	}

	chain, err := ingest.NewChain(normalizer, ingest.DefaultSources(a.Cfg.Catalog.DataFile, a.Cfg.Catalog.DataURL, bucket)...)
	if err != nil {
		return err
	}

	records, err := chain.Load(ctx)
	if err != nil {
		return err
	}

	a.Store.Load(records)
	logger.LogSystem("Catalog loaded", slog.Int("games", a.Store.Len()))

	if a.Cfg.Catalog.VerifyPaths {
		if broken := ingest.VerifyPaths(ctx, records, nil); broken > 0 {
			slog.Warn("Catalog contains broken game paths", slog.Int("broken", broken))
		}
	}
	return nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
