package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daiphu1801/NestGameLibrary/nestlib/catalog"
)

func TestVerifyPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	records := []catalog.GameRecord{
		{ID: 1, Name: "Contra", Path: srv.URL + "/contra.zip"},
		{ID: 2, Name: "Tetris", Path: srv.URL + "/missing/tetris.zip"},
		{ID: 3, Name: "Metroid", Path: srv.URL + "/metroid.zip"},
		{ID: 4, Name: "Demo Entry"}, // unplayable, skipped
	}

	if got := VerifyPaths(context.Background(), records, srv.Client()); got != 1 {
		t.Errorf("VerifyPaths() = %d broken, want 1", got)
	}
}

func TestVerifyPaths_emptyCatalog(t *testing.T) {
	if got := VerifyPaths(context.Background(), nil, nil); got != 0 {
		t.Errorf("VerifyPaths(nil) = %d, want 0", got)
	}
}

func TestBucketConfig_Configured(t *testing.T) {
	tests := []struct {
		name string
		cfg  BucketConfig
		want bool
	}{
		{name: "empty", cfg: BucketConfig{}, want: false},
		{name: "endpoint only", cfg: BucketConfig{Endpoint: "https://acc.r2.cloudflarestorage.com"}, want: false},
		{name: "endpoint and bucket", cfg: BucketConfig{Endpoint: "https://acc.r2.cloudflarestorage.com", Bucket: "roms"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Configured(); got != tt.want {
				t.Errorf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewBucketSource_requiresEndpointAndBucket(t *testing.T) {
	if _, err := NewBucketSource(context.Background(), BucketConfig{}); err == nil {
		t.Error("NewBucketSource() with empty config succeeded, want error")
	}
}
