// Package ingest turns raw catalog entries from any source into
// well-formed catalog records, and owns the source fallback chain.
package ingest

import (
	"errors"
	"strings"

	"github.com/daiphu1801/NestGameLibrary/nestlib/catalog"
)

// ErrBaseURLUnset is returned when ingestion is attempted without a
// configured storage base URL. This is a hard precondition: resolving
// bare ROM filenames without it would produce broken paths for every
// record, so initialization must halt instead.
var ErrBaseURLUnset = errors.New("storage base_url is not configured")

// legacyBases are hardcoded storage origins from older catalog dumps.
// Paths pointing at them are rewritten onto the configured base URL.
var legacyBases = []string{
	"pub-87204256ff0f4764bde4d1dd64f4c380.r2.dev",
}

// RawGame is the wire shape of one catalog entry, as produced by the
// offline generator or the legacy exporter.
type RawGame struct {
	ID          int64  `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	FileName    string `json:"fileName,omitempty" bson:"fileName,omitempty"`
	Path        string `json:"path,omitempty" bson:"path,omitempty"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Rating      int    `json:"rating,omitempty" bson:"rating,omitempty"`
	Year        int    `json:"year,omitempty" bson:"year,omitempty"`
	IsFeatured  bool   `json:"isFeatured,omitempty" bson:"isFeatured,omitempty"`
	Region      string `json:"region,omitempty" bson:"region,omitempty"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	ImageSnap   string `json:"imageSnap,omitempty" bson:"imageSnap,omitempty"`
	ImageTitle  string `json:"imageTitle,omitempty" bson:"imageTitle,omitempty"`
}

// Normalizer rewrites raw entries into catalog records against a
// configured storage base URL.
type Normalizer struct {
	baseURL     string
	legacyBases []string
}

// NewNormalizer returns a normalizer for the given base URL, or
// ErrBaseURLUnset when it is empty. extraLegacy adds deployment-specific
// legacy origins on top of the built-in ones.
func NewNormalizer(baseURL string, extraLegacy ...string) (*Normalizer, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrBaseURLUnset
	}
	return &Normalizer{
		baseURL:     strings.TrimRight(baseURL, "/"),
		legacyBases: append(append([]string{}, legacyBases...), extraLegacy...),
	}, nil
}

// Normalize converts a batch of raw entries into catalog records.
func (n *Normalizer) Normalize(raw []RawGame) []catalog.GameRecord {
	records := make([]catalog.GameRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, n.normalizeOne(r))
	}
	return records
}

func (n *Normalizer) normalizeOne(r RawGame) catalog.GameRecord {
	var images catalog.ImageChain
	for _, img := range []string{r.Image, r.ImageSnap, r.ImageTitle} {
		if strings.TrimSpace(img) != "" {
			images = append(images, n.resolvePath(img))
		}
	}

	return catalog.GameRecord{
		ID:          r.ID,
		Name:        r.Name,
		Category:    catalog.ParseCategory(r.Category),
		Description: r.Description,
		Rating:      r.Rating,
		Year:        r.Year,
		Path:        n.resolvePath(r.Path),
		IsFeatured:  r.IsFeatured,
		Region:      r.Region,
		Images:      images,
	}
}

// resolvePath makes the playable-asset locator absolute. Bare filenames
// get the base URL prefixed; locators on a legacy origin are rebuilt on
// the configured base, keeping only the filename. Empty stays empty:
// the record is an unplayable demo entry.
func (n *Normalizer) resolvePath(path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "http") {
		return n.baseURL + "/" + strings.TrimLeft(path, "/")
	}
	for _, legacy := range n.legacyBases {
		if strings.Contains(path, legacy) {
			parts := strings.Split(path, "/")
			return n.baseURL + "/" + parts[len(parts)-1]
		}
	}
	return path
}
