package ingest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/daiphu1801/NestGameLibrary/nestlib/catalog"
)

const testBase = "https://roms.example.dev"

func TestNewNormalizer_requiresBaseURL(t *testing.T) {
	for _, base := range []string{"", "   "} {
		if _, err := NewNormalizer(base); !errors.Is(err, ErrBaseURLUnset) {
			t.Errorf("NewNormalizer(%q) error = %v, want ErrBaseURLUnset", base, err)
		}
	}
}

func TestNormalizer_resolvePath(t *testing.T) {
	n, err := NewNormalizer(testBase+"/", "legacy.example.net")
	if err != nil {
		t.Fatalf("NewNormalizer() error = %v", err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "bare filename gets base prefix",
			path: "Contra (U).zip",
			want: testBase + "/Contra (U).zip",
		},
		{
			name: "built-in legacy base is rewritten keeping the filename",
			path: "https://pub-87204256ff0f4764bde4d1dd64f4c380.r2.dev/Contra (U).zip",
			want: testBase + "/Contra (U).zip",
		},
		{
			name: "configured legacy base is rewritten",
			path: "https://legacy.example.net/roms/Tetris (U).zip",
			want: testBase + "/Tetris (U).zip",
		},
		{
			name: "absolute path on another host is untouched",
			path: "https://other.example.com/Mega Man (U).zip",
			want: "https://other.example.com/Mega Man (U).zip",
		},
		{
			name: "empty stays empty",
			path: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.resolvePath(tt.path); got != tt.want {
				t.Errorf("resolvePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	n, err := NewNormalizer(testBase)
	if err != nil {
		t.Fatalf("NewNormalizer() error = %v", err)
	}

	raw := []RawGame{
		{
			ID:         1,
			Name:       "Contra",
			Category:   "shooter",
			Rating:     5,
			Year:       1988,
			Path:       "Contra (U).zip",
			Image:      "https://img.example.com/contra-box.png",
			ImageSnap:  "https://img.example.com/contra-snap.png",
			ImageTitle: "",
		},
		{
			ID:       2,
			Name:     "Mystery Cart",
			Category: "shmup", // not in the enum
		},
	}

	records := n.Normalize(raw)
	if len(records) != 2 {
		t.Fatalf("Normalize() returned %d records, want 2", len(records))
	}

	contra := records[0]
	if contra.Path != testBase+"/Contra (U).zip" {
		t.Errorf("path = %q, want prefixed", contra.Path)
	}
	if contra.Category != catalog.CategoryShooter {
		t.Errorf("category = %v, want shooter", contra.Category)
	}
	wantImages := catalog.ImageChain{
		"https://img.example.com/contra-box.png",
		"https://img.example.com/contra-snap.png",
	}
	if !reflect.DeepEqual(contra.Images, wantImages) {
		t.Errorf("images = %v, want %v (empty candidates dropped)", contra.Images, wantImages)
	}

	mystery := records[1]
	if mystery.Category != catalog.CategoryOther {
		t.Errorf("unknown category coerced to %v, want other", mystery.Category)
	}
	if mystery.Playable() {
		t.Errorf("record without path reported as playable")
	}
	if mystery.EffectiveRating() != catalog.DefaultRating {
		t.Errorf("EffectiveRating() = %d, want %d", mystery.EffectiveRating(), catalog.DefaultRating)
	}
	if mystery.EffectiveYear() != catalog.DefaultYear {
		t.Errorf("EffectiveYear() = %d, want %d", mystery.EffectiveYear(), catalog.DefaultYear)
	}
}
