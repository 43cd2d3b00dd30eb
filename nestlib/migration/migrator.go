// Package migration exports the legacy MongoDB catalog into the
// games.json format the ingest file source consumes.
package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/daiphu1801/NestGameLibrary/nestlib/ingest"
)

const connectTimeout = 10 * time.Second

type Migrator struct {
	mongoURI   string
	database   string
	collection string
	outPath    string

	stats MigrationStats
}

func NewMigrator(mongoURI, database, collection, outPath string) *Migrator {
	if collection == "" {
		collection = "games"
	}
	return &Migrator{
		mongoURI:   mongoURI,
		database:   database,
		collection: collection,
		outPath:    outPath,
	}
}

// Run reads every legacy document, converts it and writes the result
// as a games.json file. Documents without a title are skipped, not
// fatal; ids are reassigned sequentially so the output is dense.
func (m *Migrator) Run(ctx context.Context) (MigrationStats, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(m.mongoURI))
	if err != nil {
		return m.stats, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			slog.Warn("Failed to disconnect from mongo", slog.Any("error", err))
		}
	}()

	coll := client.Database(m.database).Collection(m.collection)
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return m.stats, fmt.Errorf("failed to query %s.%s: %w", m.database, m.collection, err)
	}
	defer cursor.Close(ctx)

	var games []ingest.RawGame
	nextID := int64(1)
	for cursor.Next(ctx) {
		var legacy LegacyGame
		if err := cursor.Decode(&legacy); err != nil {
			slog.Warn("Skipping undecodable document", slog.Any("error", err))
			m.stats.Skipped++
			continue
		}
		m.stats.Read++

		if legacy.Title == "" {
			m.stats.Skipped++
			continue
		}

		games = append(games, convert(legacy, nextID))
		nextID++
		m.stats.Converted++
	}
	if err := cursor.Err(); err != nil {
		return m.stats, fmt.Errorf("cursor error: %w", err)
	}

	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return m.stats, fmt.Errorf("failed to encode games: %w", err)
	}
	if err := os.WriteFile(m.outPath, data, 0o644); err != nil {
		return m.stats, fmt.Errorf("failed to write %s: %w", m.outPath, err)
	}

	slog.Info("Legacy catalog exported",
		slog.String("out", m.outPath),
		slog.Int("read", m.stats.Read),
		slog.Int("converted", m.stats.Converted),
		slog.Int("skipped", m.stats.Skipped))
	return m.stats, nil
}

// convert maps a legacy document onto the current wire shape. Paths
// stay as bare filenames; the ingest normalizer resolves them against
// the configured base URL at load time.
func convert(legacy LegacyGame, id int64) ingest.RawGame {
	raw := ingest.RawGame{
		ID:          id,
		Name:        legacy.Title,
		FileName:    legacy.File,
		Path:        legacy.File,
		Category:    legacy.Genre,
		Description: legacy.Summary,
		Rating:      legacy.Stars,
		Year:        legacy.Released,
		IsFeatured:  legacy.Featured,
		Region:      legacy.Region,
		Image:       legacy.Boxart,
	}
	if len(legacy.Snaps) > 0 {
		raw.ImageSnap = legacy.Snaps[0]
	}
	if len(legacy.Snaps) > 1 {
		raw.ImageTitle = legacy.Snaps[1]
	}
	return raw
}
