package catalog

import (
	"github.com/sahilm/fuzzy"
)

// gameSource implements fuzzy.Source over a record slice.
type gameSource []GameRecord

func (s gameSource) Len() int            { return len(s) }
func (s gameSource) String(i int) string { return s[i].Name }

// Suggest returns up to limit game names fuzzy-matching the query,
// best match first. The UI uses this for "did you mean" hints when a
// search comes back empty; an empty query yields no suggestions.
func (s *Store) Suggest(query string, limit int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if query == "" || limit <= 0 || len(s.games) == 0 {
		return nil
	}

	results := fuzzy.FindFrom(query, gameSource(s.games))
	if len(results) > limit {
		results = results[:limit]
	}

	names := make([]string, 0, len(results))
	for _, m := range results {
		names = append(names, s.games[m.Index].Name)
	}
	return names
}
