package catalog

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// DidYouMean proposes the closest title for a query that matched nothing.
// Titles farther than half the query length are not proposed.
func DidYouMean(projects []Project, query string) mo.Option[string] {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(projects) == 0 {
		return mo.None[string]()
	}

	distance := func(p Project) int {
		return levenshtein.Distance(query, strings.ToLower(p.Title))
	}

	closest := lo.MinBy(projects, func(a, b Project) bool {
		return distance(a) < distance(b)
	})

	if distance(closest) > len(query)/2 {
		return mo.None[string]()
	}
	return mo.Some(closest.Title)
}
