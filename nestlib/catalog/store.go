package catalog

import (
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

const visibleCacheSize = 128

// Store owns the canonical game list and the live view parameters.
// It is deliberately a plain constructed object rather than a package
// global so tests and embedders can run independent instances.
//
// All methods are safe for concurrent use; the web layer calls into
// one shared store from concurrently handled requests.
type Store struct {
	mu      sync.RWMutex
	games   []GameRecord
	visible []GameRecord
	view    ViewState

	defaultPageSize int
	cache           *lru.Cache // view params -> visible set
}

// NewStore creates an empty store with the given default page size
// (0 means DefaultPageSize).
func NewStore(pageSize int) *Store {
	cache, _ := lru.New(visibleCacheSize)
	s := &Store{
		defaultPageSize: pageSize,
		view:            DefaultView(pageSize),
		cache:           cache,
	}
	return s
}

// Load replaces the full game list. The view parameters survive a
// reload, but the page is clamped if the new visible set is smaller.
func (s *Store) Load(records []GameRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = records
	s.cache.Purge()
	s.refresh()
}

// Len returns the size of the full catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// All returns the full catalog list, unfiltered.
func (s *Store) All() []GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games
}

// View returns a copy of the current view parameters.
func (s *Store) View() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetCategory changes the category filter and jumps back to page 1.
func (s *Store) SetCategory(c Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.Category = c
	s.view.Page = 1
	s.refresh()
}

// SetQuery changes the text filter and jumps back to page 1. The input
// is lower-cased and trimmed here so downstream matching is a plain
// substring comparison.
func (s *Store) SetQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.Query = strings.ToLower(strings.TrimSpace(text))
	s.view.Page = 1
	s.refresh()
}

// SetSort changes the sort key and jumps back to page 1.
func (s *Store) SetSort(key SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.Sort = key
	s.view.Page = 1
	s.refresh()
}

// SetPageSize changes the page size and jumps back to page 1.
// Non-positive sizes are ignored.
func (s *Store) SetPageSize(n int) {
	if n <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.PageSize = n
	s.view.Page = 1
}

// SetPage moves to page n if it is within [1, TotalPages]; anything
// else is silently ignored.
func (s *Store) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 1 || n > s.totalPages() {
		return
	}
	s.view.Page = n
}

// ResetView restores every view parameter to its default in one step.
func (s *Store) ResetView() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = DefaultView(s.defaultPageSize)
	s.refresh()
}

// VisibleCount returns the size of the current filtered set.
func (s *Store) VisibleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visible)
}

// CurrentPage returns the 1-based current page number.
func (s *Store) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.Page
}

// TotalPages returns ceil(visible/pageSize); 0 when nothing is visible,
// which callers treat as "no pagination", not an error.
func (s *Store) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalPages()
}

func (s *Store) totalPages() int {
	if len(s.visible) == 0 {
		return 0
	}
	return (len(s.visible) + s.view.PageSize - 1) / s.view.PageSize
}

// CurrentPageSlice returns the ordered records of the current page,
// clipped to the visible set's bounds.
func (s *Store) CurrentPageSlice() []GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := (s.view.Page - 1) * s.view.PageSize
	if start >= len(s.visible) {
		return nil
	}
	end := start + s.view.PageSize
	if end > len(s.visible) {
		end = len(s.visible)
	}
	return s.visible[start:end]
}

// refresh recomputes the visible set for the current view and clamps
// the page downward when the set shrank below it. Filter and sort
// results are cached per view params; pagination is cheap slicing on
// top of the cached set. Callers must hold the write lock.
func (s *Store) refresh() {
	key := s.cacheKey()
	if cached, ok := s.cache.Get(key); ok {
		s.visible = cached.([]GameRecord)
	} else {
		s.visible = runQuery(s.games, s.view)
		s.cache.Add(key, s.visible)
	}

	if total := s.totalPages(); total > 0 && s.view.Page > total {
		s.view.Page = total
	}
}

func (s *Store) cacheKey() string {
	return fmt.Sprintf("%s|%s|%s", s.view.Category, s.view.Query, s.view.Sort)
}
