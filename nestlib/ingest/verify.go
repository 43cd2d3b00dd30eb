package ingest

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daiphu1801/NestGameLibrary/nestlib/catalog"
)

const (
	verifyConcurrency = 8
	verifyTimeout     = 10 * time.Second
)

// VerifyPaths HEAD-checks every playable record's resolved path and
// returns how many are unreachable. Broken paths are logged, not
// removed: a storage hiccup must not shrink the catalog. Checks run
// concurrently, bounded by verifyConcurrency.
func VerifyPaths(ctx context.Context, records []catalog.GameRecord, client *http.Client) int {
	if client == nil {
		client = &http.Client{Timeout: verifyTimeout}
	}

	var broken atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(verifyConcurrency)
	for i := range records {
		rec := &records[i]
		if !rec.Playable() {
			continue
		}

		g.Go(func() error {
			req, err := http.NewRequestWithContext(gctx, http.MethodHead, rec.Path, nil)
			if err != nil {
				broken.Add(1)
				slog.Warn("Unverifiable game path",
					slog.String("type", "ingest"),
					slog.String("game", rec.Name),
					slog.Any("error", err))
				return nil
			}

			resp, err := client.Do(req)
			if err != nil {
				broken.Add(1)
				slog.Warn("Unreachable game path",
					slog.String("type", "ingest"),
					slog.String("game", rec.Name),
					slog.Any("error", err))
				return nil
			}
			resp.Body.Close()

			if resp.StatusCode >= 400 {
				broken.Add(1)
				slog.Warn("Broken game path",
					slog.String("type", "ingest"),
					slog.String("game", rec.Name),
					slog.Int("status", resp.StatusCode))
			}
			return nil
		})
	}
	g.Wait()

	return int(broken.Load())
}
