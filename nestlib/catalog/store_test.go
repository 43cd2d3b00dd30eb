package catalog

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func bigCatalog(n int) []GameRecord {
	records := make([]GameRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, GameRecord{
			ID:       int64(i),
			Name:     fmt.Sprintf("Game %04d", i),
			Category: CategoryOther,
			Rating:   (i % 5) + 1,
			Year:     1983 + (i % 10),
		})
	}
	return records
}

func TestStore_visibleOrder(t *testing.T) {
	s := NewStore(0)
	s.Load(smallCatalog())

	got := names(s.CurrentPageSlice())
	want := []string{"Contra", "Tetris"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CurrentPageSlice() = %v, want %v", got, want)
	}
	if s.TotalPages() != 1 {
		t.Errorf("TotalPages() = %d, want 1", s.TotalPages())
	}
}

func TestStore_categoryFilter(t *testing.T) {
	s := NewStore(0)
	s.Load(smallCatalog())
	s.SetCategory(CategoryPuzzle)

	got := names(s.CurrentPageSlice())
	if !reflect.DeepEqual(got, []string{"Tetris"}) {
		t.Errorf("CurrentPageSlice() = %v, want [Tetris]", got)
	}
}

func TestStore_query(t *testing.T) {
	s := NewStore(0)
	s.Load(smallCatalog())
	s.SetQuery("  CON ") // trimmed and lower-cased by the store

	if s.View().Query != "con" {
		t.Errorf("stored query = %q, want %q", s.View().Query, "con")
	}
	got := names(s.CurrentPageSlice())
	if !reflect.DeepEqual(got, []string{"Contra"}) {
		t.Errorf("CurrentPageSlice() = %v, want [Contra]", got)
	}
}

func TestStore_pagination(t *testing.T) {
	s := NewStore(0)
	s.Load(bigCatalog(125))

	if got := s.TotalPages(); got != 3 {
		t.Fatalf("TotalPages() = %d, want 3", got)
	}

	wantSizes := []int{60, 60, 5}
	var all []string
	for page := 1; page <= 3; page++ {
		s.SetPage(page)
		slice := s.CurrentPageSlice()
		if len(slice) != wantSizes[page-1] {
			t.Errorf("page %d has %d records, want %d", page, len(slice), wantSizes[page-1])
		}
		all = append(all, names(slice)...)
	}

	// Concatenating all pages must reproduce the full sorted set with
	// no duplicate and no omission.
	s.SetPage(1)
	seen := make(map[string]bool, len(all))
	for _, name := range all {
		if seen[name] {
			t.Errorf("record %q appears on more than one page", name)
		}
		seen[name] = true
	}
	if len(all) != s.VisibleCount() {
		t.Errorf("pages cover %d records, want %d", len(all), s.VisibleCount())
	}
}

func TestStore_pageClamp(t *testing.T) {
	s := NewStore(0)
	s.Load(bigCatalog(125))

	s.SetPage(2)
	for _, n := range []int{0, -1, 4, 99} {
		s.SetPage(n)
		if s.CurrentPage() != 2 {
			t.Errorf("SetPage(%d) changed page to %d, want unchanged 2", n, s.CurrentPage())
		}
	}
}

func TestStore_filterMutationResetsPage(t *testing.T) {
	s := NewStore(0)
	s.Load(bigCatalog(125))

	mutations := []struct {
		name string
		run  func()
	}{
		{"SetCategory", func() { s.SetCategory(CategoryOther) }},
		{"SetQuery", func() { s.SetQuery("game") }},
		{"SetSort", func() { s.SetSort(SortYearDesc) }},
		{"SetPageSize", func() { s.SetPageSize(50) }},
	}

	for _, m := range mutations {
		s.SetPage(2)
		m.run()
		if s.CurrentPage() != 1 {
			t.Errorf("%s left page at %d, want 1", m.name, s.CurrentPage())
		}
	}
}

// Shrinking the visible set below the current page's range clamps the
// page downward so earlier pages with content are not skipped.
func TestStore_pageClampsDownOnReload(t *testing.T) {
	s := NewStore(0)
	s.Load(bigCatalog(125))
	s.SetPage(3)

	s.Load(bigCatalog(70)) // now only 2 pages
	if s.CurrentPage() != 2 {
		t.Errorf("page = %d after shrink, want 2", s.CurrentPage())
	}
	if len(s.CurrentPageSlice()) != 10 {
		t.Errorf("page slice has %d records, want 10", len(s.CurrentPageSlice()))
	}
}

func TestStore_resetView(t *testing.T) {
	s := NewStore(0)
	s.Load(bigCatalog(125))

	s.SetCategory(CategoryOther)
	s.SetQuery("game")
	s.SetSort(SortRatingDesc)
	s.SetPageSize(20)
	s.SetPage(3)

	s.ResetView()

	want := DefaultView(0)
	if got := s.View(); got != want {
		t.Errorf("View() after reset = %+v, want %+v", got, want)
	}
}

func TestStore_emptyCatalog(t *testing.T) {
	s := NewStore(0)
	s.Load(nil)

	if s.TotalPages() != 0 {
		t.Errorf("TotalPages() = %d, want 0", s.TotalPages())
	}
	if got := s.CurrentPageSlice(); len(got) != 0 {
		t.Errorf("CurrentPageSlice() = %v, want empty", got)
	}
	if s.VisibleCount() != 0 {
		t.Errorf("VisibleCount() = %d, want 0", s.VisibleCount())
	}
}

// Mixed readers and writers must not corrupt the view; run with -race.
func TestStore_concurrentAccess(t *testing.T) {
	s := NewStore(0)
	s.Load(bigCatalog(125))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				switch (worker + j) % 4 {
				case 0:
					s.SetQuery(fmt.Sprintf("game %d", j%9))
				case 1:
					s.SetPage(1 + j%3)
				case 2:
					s.View()
					s.CurrentPageSlice()
				case 3:
					s.TotalPages()
					s.Suggest("game", 3)
				}
			}
		}(i)
	}
	wg.Wait()

	s.ResetView()
	if s.VisibleCount() != 125 {
		t.Errorf("VisibleCount() = %d after reset, want 125", s.VisibleCount())
	}
	if s.CurrentPage() != 1 {
		t.Errorf("CurrentPage() = %d after reset, want 1", s.CurrentPage())
	}
}

func TestStore_suggest(t *testing.T) {
	s := NewStore(0)
	s.Load([]GameRecord{
		{ID: 1, Name: "Contra"},
		{ID: 2, Name: "Castlevania"},
		{ID: 3, Name: "Tetris"},
	})

	got := s.Suggest("contr", 5)
	if len(got) == 0 || got[0] != "Contra" {
		t.Errorf("Suggest(contr) = %v, want Contra first", got)
	}

	if got := s.Suggest("", 5); got != nil {
		t.Errorf("Suggest(empty) = %v, want nil", got)
	}
}
