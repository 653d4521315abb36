package labels

import (
	"sort"
	"strings"

	"github.com/arbovm/levenshtein"
)

// Match is a label ranked by edit distance to a search query
type Match struct {
	Class    int    `json:"class"`
	Label    string `json:"label"`
	Distance int    `json:"distance"`
}

// Search returns up to limit labels closest to the query by case-insensitive
// Levenshtein distance. Labels containing the query as a substring rank as
// distance 0 so partial names still surface.
func (t *Table) Search(query string, limit int) []Match {
	if limit <= 0 || len(t.entries) == 0 {
		return nil
	}

	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]Match, 0, len(t.entries))
	for i, label := range t.entries {
		l := strings.ToLower(label)
		distance := levenshtein.Distance(q, l)
		if q != "" && strings.Contains(l, q) {
			distance = 0
		}
		matches = append(matches, Match{
			Class:    i + 1,
			Label:    label,
			Distance: distance,
		})
	}

	// Class order breaks distance ties, keeping results deterministic
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Distance < matches[b].Distance
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
