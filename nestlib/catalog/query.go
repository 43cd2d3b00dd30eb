package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of the visible set.
type SortKey string

const (
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortRatingDesc SortKey = "rating-desc"
	SortYearDesc   SortKey = "year-desc"
	SortYearAsc    SortKey = "year-asc"
)

// ParseSortKey coerces an arbitrary string into a known sort key,
// falling back to SortNameAsc.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNameAsc, SortNameDesc, SortRatingDesc, SortYearDesc, SortYearAsc:
		return SortKey(s)
	default:
		return SortNameAsc
	}
}

// ViewState holds the current filter, sort and pagination parameters.
type ViewState struct {
	Category Category
	Query    string // lower-cased, trimmed
	Sort     SortKey
	PageSize int
	Page     int
}

// DefaultPageSize matches the grid size the original library shipped with.
const DefaultPageSize = 60

// DefaultView returns the view every session starts from.
func DefaultView(pageSize int) ViewState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return ViewState{
		Category: CategoryAll,
		Query:    "",
		Sort:     SortNameAsc,
		PageSize: pageSize,
		Page:     1,
	}
}

// matches applies the filter predicate: category must match unless the
// filter is "all", and the query must be a substring of the name or, when
// present, the description. The query is already lower-cased by the store.
func matches(g *GameRecord, view ViewState) bool {
	if view.Category != CategoryAll && g.Category != view.Category {
		return false
	}
	if view.Query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(g.Name), view.Query) {
		return true
	}
	return g.Description != "" && strings.Contains(strings.ToLower(g.Description), view.Query)
}

// runQuery derives the visible ordered subset of records for a view.
// Pure with respect to its inputs; the returned slice is freshly
// allocated and safe to hold across further store mutations.
func runQuery(records []GameRecord, view ViewState) []GameRecord {
	visible := make([]GameRecord, 0, len(records))
	for i := range records {
		if matches(&records[i], view) {
			visible = append(visible, records[i])
		}
	}
	sortRecords(visible, view.Sort)
	return visible
}

// sortRecords orders records in place. The sort must be stable so that
// ties keep their filter-step relative order.
func sortRecords(records []GameRecord, key SortKey) {
	switch key {
	case SortNameAsc, SortNameDesc:
		cl := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(records, func(i, j int) bool {
			cmp := cl.CompareString(records[i].Name, records[j].Name)
			if key == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortRatingDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].EffectiveRating() > records[j].EffectiveRating()
		})
	case SortYearDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].EffectiveYear() > records[j].EffectiveYear()
		})
	case SortYearAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].EffectiveYear() < records[j].EffectiveYear()
		})
	}
}
