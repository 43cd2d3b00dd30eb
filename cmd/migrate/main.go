package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/daiphu1801/NestGameLibrary/nestlib/logger"
	"github.com/daiphu1801/NestGameLibrary/nestlib/migration"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler("NESLib-Migrate")))

	mongoURI := flag.String("mongo-uri", "mongodb://localhost:27017", "legacy MongoDB connection URI")
	database := flag.String("database", "neslibrary", "legacy database name")
	collection := flag.String("collection", "games", "legacy games collection")
	out := flag.String("out", "games.json", "output path for the generated catalog")
	flag.Parse()

	migrator := migration.NewMigrator(*mongoURI, *database, *collection, *out)

	stats, err := migrator.Run(context.Background())
	if err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Migration completed successfully!",
		slog.Int("converted", stats.Converted),
		slog.Int("skipped", stats.Skipped))
}
