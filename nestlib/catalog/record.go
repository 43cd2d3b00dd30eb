package catalog

// Category is the closed set of game genres the library knows about.
// Anything else coming out of ingestion collapses into CategoryOther.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryPlatformer Category = "platformer"
	CategoryRPG        Category = "rpg"
	CategorySports     Category = "sports"
	CategoryFighting   Category = "fighting"
	CategoryPuzzle     Category = "puzzle"
	CategoryRacing     Category = "racing"
	CategoryShooter    Category = "shooter"
	CategoryStrategy   Category = "strategy"
	CategoryAdventure  Category = "adventure"
	CategoryOther      Category = "other"
)

// Categories lists every selectable genre, in display order. CategoryAll
// is a filter value, not a genre, so it is not included here.
var Categories = []Category{
	CategoryPlatformer,
	CategoryRPG,
	CategorySports,
	CategoryFighting,
	CategoryPuzzle,
	CategoryRacing,
	CategoryShooter,
	CategoryStrategy,
	CategoryAdventure,
	CategoryOther,
}

// CategoryIcons maps each genre to its display icon.
var CategoryIcons = map[Category]string{
	CategoryAll:        "🎮",
	CategoryPlatformer: "🏃",
	CategoryRPG:        "⚔️",
	CategorySports:     "⚽",
	CategoryFighting:   "🥊",
	CategoryPuzzle:     "🧩",
	CategoryRacing:     "🏎️",
	CategoryShooter:    "🔫",
	CategoryStrategy:   "🎯",
	CategoryAdventure:  "🗺️",
	CategoryOther:      "📦",
}

// ParseCategory coerces an arbitrary string into a known genre,
// falling back to CategoryOther for anything unrecognized.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

const (
	// DefaultRating is substituted for unrated games when sorting.
	DefaultRating = 3
	// DefaultYear is substituted for games with an unknown release year
	// when sorting. Display code must check Year == 0 instead.
	DefaultYear = 1985
)

// GameRecord is a single catalog entry. Records are immutable after
// ingestion; a catalog reload replaces the whole list.
type GameRecord struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Description string     `json:"description,omitempty"`
	Rating      int        `json:"rating,omitempty"` // 0 = unrated
	Year        int        `json:"year,omitempty"`   // 0 = unknown
	Path        string     `json:"path,omitempty"`   // empty = unplayable
	IsFeatured  bool       `json:"isFeatured,omitempty"`
	Region      string     `json:"region,omitempty"`
	Images      ImageChain `json:"images,omitempty"`
}

// EffectiveRating returns the rating used for ordering, substituting
// DefaultRating for unrated games.
func (g *GameRecord) EffectiveRating() int {
	if g.Rating == 0 {
		return DefaultRating
	}
	return g.Rating
}

// EffectiveYear returns the year used for ordering, substituting
// DefaultYear for games with no known release year.
func (g *GameRecord) EffectiveYear() int {
	if g.Year == 0 {
		return DefaultYear
	}
	return g.Year
}

// Playable reports whether the record carries a playable asset.
func (g *GameRecord) Playable() bool {
	return g.Path != ""
}

// ImageChain is an ordered list of candidate image locators. The image
// loader walks it with a cursor; the list itself is never shortened.
type ImageChain []string

// Cursor returns a fresh cursor positioned at the first candidate.
func (c ImageChain) Cursor() *ImageCursor {
	return &ImageCursor{chain: c}
}

// ImageCursor tracks which candidate of an ImageChain should be tried
// next. Failed candidates stay in the chain; only the cursor advances.
type ImageCursor struct {
	chain ImageChain
	next  int
}

// Next returns the next candidate locator, or false when the chain is
// exhausted.
func (c *ImageCursor) Next() (string, bool) {
	if c.next >= len(c.chain) {
		return "", false
	}
	candidate := c.chain[c.next]
	c.next++
	return candidate, true
}

// Remaining reports how many candidates have not been tried yet.
func (c *ImageCursor) Remaining() int {
	return len(c.chain) - c.next
}
