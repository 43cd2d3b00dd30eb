package prefs

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/daiphu1801/NestGameLibrary/nestlib/catalog"
)

// Supported UI languages.
const (
	LanguageEnglish    = "en"
	LanguageVietnamese = "vi"
)

// Supported themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultRecentLimit caps the recently-played list.
const DefaultRecentLimit = 10

// Preferences holds the small bits of UI state persisted per user.
type Preferences struct {
	bun.BaseModel `bun:"table:preferences"`

	UserID    string    `bun:"user_id,pk" json:"userId"`
	Language  string    `bun:"language,notnull" json:"language"`
	Theme     string    `bun:"theme,notnull" json:"theme"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

// DefaultPreferences returns the preferences a fresh user starts with.
func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:   userID,
		Language: LanguageEnglish,
		Theme:    ThemeDark,
	}
}

// ValidLanguage reports whether s is a supported language code.
func ValidLanguage(s string) bool {
	return s == LanguageEnglish || s == LanguageVietnamese
}

// ValidTheme reports whether s is a supported theme.
func ValidTheme(s string) bool {
	return s == ThemeLight || s == ThemeDark
}

// RecentGame is one entry of the recently-played list: just enough of
// the game record to render a card and relaunch the game.
type RecentGame struct {
	bun.BaseModel `bun:"table:recent_games"`

	UserID   string           `bun:"user_id,pk" json:"-"`
	GameID   int64            `bun:"game_id,pk" json:"id"`
	Name     string           `bun:"name,notnull" json:"name"`
	Category catalog.Category `bun:"category,notnull" json:"category"`
	Path     string           `bun:"path" json:"path,omitempty"`
	Rating   int              `bun:"rating" json:"rating,omitempty"`
	PlayedAt time.Time        `bun:"played_at,notnull" json:"playedAt"`
}

// pushRecent inserts entry at the front of list, dropping any older
// entry for the same game and trimming to limit. The input slice is
// not modified.
func pushRecent(list []RecentGame, entry RecentGame, limit int) []RecentGame {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	merged := make([]RecentGame, 0, len(list)+1)
	merged = append(merged, entry)
	for _, g := range list {
		if g.GameID == entry.GameID {
			continue
		}
		merged = append(merged, g)
	}

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
