package prefs

import (
	"context"
	"testing"
	"time"
)

func Test_pushRecent(t *testing.T) {
	entry := func(id int64, name string) RecentGame {
		return RecentGame{GameID: id, Name: name, PlayedAt: time.Unix(id, 0)}
	}

	tests := []struct {
		name  string
		list  []RecentGame
		push  RecentGame
		limit int
		want  []int64
	}{
		{
			name: "push onto empty list",
			push: entry(1, "Contra"),
			want: []int64{1},
		},
		{
			name: "new entry goes first",
			list: []RecentGame{entry(1, "Contra"), entry(2, "Tetris")},
			push: entry(3, "Metroid"),
			want: []int64{3, 1, 2},
		},
		{
			name: "replay moves the game to the front",
			list: []RecentGame{entry(1, "Contra"), entry(2, "Tetris"), entry(3, "Metroid")},
			push: entry(2, "Tetris"),
			want: []int64{2, 1, 3},
		},
		{
			name:  "list is trimmed to the limit",
			list:  []RecentGame{entry(1, "a"), entry(2, "b"), entry(3, "c")},
			push:  entry(4, "d"),
			limit: 3,
			want:  []int64{4, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pushRecent(tt.list, tt.push, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("pushRecent() returned %d entries, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].GameID != id {
					t.Errorf("entry %d = game %d, want %d", i, got[i].GameID, id)
				}
			}
		})
	}
}

func Test_pushRecent_cap(t *testing.T) {
	var list []RecentGame
	for i := int64(1); i <= 25; i++ {
		list = pushRecent(list, RecentGame{GameID: i}, 0)
	}
	if len(list) != DefaultRecentLimit {
		t.Errorf("list grew to %d entries, want capped at %d", len(list), DefaultRecentLimit)
	}
	if list[0].GameID != 25 {
		t.Errorf("front entry = %d, want most recent 25", list[0].GameID)
	}
}

func TestMemoryRepository_roundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	p, err := repo.GetPreferences(ctx, "u1")
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if p.Language != LanguageEnglish || p.Theme != ThemeDark {
		t.Errorf("defaults = %q/%q, want en/dark", p.Language, p.Theme)
	}

	p.Theme = ThemeLight
	if err := repo.SavePreferences(ctx, p); err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}
	p2, _ := repo.GetPreferences(ctx, "u1")
	if p2.Theme != ThemeLight {
		t.Errorf("Theme = %q after save, want light", p2.Theme)
	}

	games := []RecentGame{{GameID: 1, Name: "Contra"}}
	if err := repo.SaveRecent(ctx, "u1", games); err != nil {
		t.Fatalf("SaveRecent() error = %v", err)
	}
	got, _ := repo.GetRecent(ctx, "u1")
	if len(got) != 1 || got[0].Name != "Contra" {
		t.Errorf("GetRecent() = %+v, want Contra", got)
	}
}
