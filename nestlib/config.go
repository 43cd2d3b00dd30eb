package nestlib

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/daiphu1801/NestGameLibrary/nestlib/database"
	"github.com/daiphu1801/NestGameLibrary/nestlib/ingest"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	// Environment override keeps secrets out of the config file.
	if env := os.Getenv("NESLIB_BASE_URL"); env != "" {
		cfg.Storage.BaseURL = env
	}

	return &cfg, nil
}

type Config struct {
	Log     LogConfig         `toml:"log"`
	Storage StorageConfig     `toml:"storage"`
	Catalog CatalogConfig     `toml:"catalog"`
	Web     WebConfig         `toml:"web"`
	DB      database.DBConfig `toml:"db"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
	Tag   string     `toml:"tag"`
}

// StorageConfig locates the ROM storage. BaseURL is the one required
// setting in the whole file: without it bare filenames in the catalog
// cannot be resolved and startup must halt.
type StorageConfig struct {
	BaseURL     string              `toml:"base_url"`
	LegacyBases []string            `toml:"legacy_bases"`
	Bucket      ingest.BucketConfig `toml:"bucket"`
}

type CatalogConfig struct {
	DataFile    string `toml:"data_file"`
	DataURL     string `toml:"data_url"`
	PageSize    int    `toml:"page_size"`
	RecentLimit int    `toml:"recent_limit"`
	VerifyPaths bool   `toml:"verify_paths"`
}

type WebConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns the listen address, defaulting to :8620.
func (w WebConfig) Addr() string {
	host := w.Host
	port := w.Port
	if port == 0 {
		port = 8620
	}
	return fmt.Sprintf("%s:%d", host, port)
}
