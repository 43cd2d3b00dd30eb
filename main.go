package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daiphu1801/NestGameLibrary/nestlib"
	"github.com/daiphu1801/NestGameLibrary/nestlib/ingest"
	"github.com/daiphu1801/NestGameLibrary/nestlib/logger"
	"github.com/daiphu1801/NestGameLibrary/nestlib/web"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler("NESLib")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting NES Game Library",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := nestlib.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Configuration loaded successfully")

	// Reinstall the handler with the configured tag and level. The default
	// one above exists so config loading itself is logged.
	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Tag).WithLevel(cfg.Log.Level)))

	app := nestlib.New(cfg, version, commit)
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.SetupPrefs(ctx); err != nil {
		slog.Error("Failed to set up preferences store", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.LoadCatalog(ctx); err != nil {
		if errors.Is(err, ingest.ErrBaseURLUnset) {
			printConfigError(*path)
			os.Exit(1)
		}
		slog.Error("Failed to load catalog", slog.Any("error", err))
		os.Exit(1)
	}

	srv := web.NewServer(&web.WebApp{
		Store:   app.Store,
		Prefs:   app.Prefs,
		Version: version,
		Commit:  commit,
	})

	s := make(chan os.Signal, 1)
	signal.Notify(s, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Listen(cfg.Web.Addr()); err != nil {
			slog.Error("Failed to start server", slog.Any("error", err))
		}
	}()
	slog.Info("Server started", slog.String("address", cfg.Web.Addr()))

	<-s
	slog.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", slog.Any("error", err))
	}

	slog.Info("Shutdown complete")
}

// printConfigError explains how to fix the one fatal misconfiguration:
// a missing storage base URL. Shown instead of starting the server.
func printConfigError(configPath string) {
	fmt.Fprintf(os.Stderr, `
⚙️  Configuration required

The storage base URL is not set, so ROM filenames in the catalog cannot
be resolved. The library will not start until it is configured.

Step 1: open your config file (%s) and set the URL of your
R2/S3-compatible bucket:

    [storage]
    base_url = "https://your-r2-url.r2.dev"

Step 2: alternatively, export it as an environment variable:

    export NESLIB_BASE_URL="https://your-r2-url.r2.dev"

See README.md for details.
`, configPath)
}
