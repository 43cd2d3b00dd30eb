package ingest

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/daiphu1801/NestGameLibrary/nestlib/catalog"
	"github.com/daiphu1801/NestGameLibrary/nestlib/logger"
)

//go:embed data/games.json
var bundledData embed.FS

const fetchTimeout = 15 * time.Second

// Source produces raw catalog entries. Sources are tried in priority
// order by Chain; a source returning no entries is treated the same as
// a failing one.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]RawGame, error)
}

// EmbeddedSource serves the games.json compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Fetch(_ context.Context) ([]RawGame, error) {
	data, err := bundledData.ReadFile("data/games.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled data: %w", err)
	}
	var games []RawGame
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("failed to parse bundled data: %w", err)
	}
	return games, nil
}

// FileSource reads a generated games.json from disk.
type FileSource struct {
	Path string
}

func (FileSource) Name() string { return "file" }

func (s FileSource) Fetch(_ context.Context) ([]RawGame, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	var games []RawGame
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	return games, nil
}

// RemoteSource fetches a games.json over HTTP.
type RemoteSource struct {
	URL    string
	Client *http.Client
}

func (RemoteSource) Name() string { return "remote" }

func (s RemoteSource) Fetch(ctx context.Context) ([]RawGame, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, s.URL)
	}

	var games []RawGame
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.URL, err)
	}
	return games, nil
}

// DemoSource is the last-resort hand-authored catalog. It is
// deterministic and never fails, which makes the chain as a whole total.
type DemoSource struct{}

func (DemoSource) Name() string { return "demo" }

func (DemoSource) Fetch(_ context.Context) ([]RawGame, error) {
	titles := []string{
		"Super Mario Bros.", "Super Mario Bros. 2", "Super Mario Bros. 3",
		"Mega Man", "Mega Man 2", "Castlevania", "Contra",
		"The Legend of Zelda", "Final Fantasy", "Tetris",
		"Metroid", "Punch-Out!!", "Double Dragon",
	}

	games := make([]RawGame, 0, len(titles))
	for i, name := range titles {
		games = append(games, RawGame{
			ID:          int64(i + 1),
			Name:        name,
			Category:    string(catalog.CategoryPlatformer),
			Description: "Classic NES game",
			Rating:      4,
			Year:        1985 + i,
			IsFeatured:  i < 5,
		})
	}
	return games, nil
}

// Chain tries each source in order and normalizes the first non-empty
// result. Construct it with NewChain so the base URL precondition is
// checked before any source is touched.
type Chain struct {
	normalizer *Normalizer
	sources    []Source
}

func NewChain(normalizer *Normalizer, sources ...Source) (*Chain, error) {
	if normalizer == nil {
		return nil, ErrBaseURLUnset
	}
	return &Chain{normalizer: normalizer, sources: sources}, nil
}

// Load walks the chain. With a DemoSource at the end it cannot come
// back empty; the error return only reports context cancellation.
func (c *Chain) Load(ctx context.Context) ([]catalog.GameRecord, error) {
	for _, src := range c.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		raw, err := src.Fetch(ctx)
		if err == nil && len(raw) == 0 {
			err = fmt.Errorf("source %s returned no entries", src.Name())
		}
		logger.LogIngest(src.Name(), len(raw), time.Since(start), err)
		if err != nil {
			continue
		}

		return c.normalizer.Normalize(raw), nil
	}

	return nil, fmt.Errorf("all catalog sources exhausted")
}

// DefaultSources builds the standard priority order: bundled data,
// then an optional generated file, then an optional remote URL, then
// an optional bucket source, then the demo set.
func DefaultSources(dataFile, dataURL string, bucket Source) []Source {
	sources := []Source{EmbeddedSource{}}
	if dataFile != "" {
		sources = append(sources, FileSource{Path: dataFile})
	}
	if dataURL != "" {
		sources = append(sources, RemoteSource{URL: dataURL})
	}
	if bucket != nil {
		sources = append(sources, bucket)
	}
	return append(sources, DemoSource{})
}
