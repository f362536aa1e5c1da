package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Query selects a derived view of the catalog.
type Query struct {
	Page Page
	// SubCategory narrows the page to one sub_categoria.
	SubCategory string
	// Search narrows any page by title, genre or actor.
	Search string
	// HomeLimit caps each category on the home page. Zero means no cap.
	HomeLimit int

	Favorites []string
	// History holds project ids, most recent first.
	History []string
}

// View returns the projects shown for q, in display order.
func View(projects []Project, q Query) []Project {
	var out []Project

	switch q.Page {
	case PageHome:
		for _, category := range Categories {
			in := lo.Filter(projects, func(p Project, _ int) bool { return p.Category == category })
			if q.HomeLimit > 0 && len(in) > q.HomeLimit {
				in = in[:q.HomeLimit]
			}
			out = append(out, in...)
		}
	case PageFavorites:
		out = lo.Filter(projects, func(p Project, _ int) bool { return lo.Contains(q.Favorites, p.ID) })
	case PageHistory:
		byID := lo.KeyBy(projects, func(p Project) string { return p.ID })
		out = lo.FilterMap(q.History, func(id string, _ int) (Project, bool) {
			p, ok := byID[id]
			return p, ok
		})
	case PageSearch:
		out = projects
	default:
		category, _ := q.Page.Category()
		out = lo.Filter(projects, func(p Project, _ int) bool { return p.Category == category })
	}

	if q.SubCategory != "" {
		out = lo.Filter(out, func(p Project, _ int) bool { return p.SubCategory == q.SubCategory })
	}

	if q.Search != "" {
		out = lo.Filter(out, func(p Project, _ int) bool { return Matches(&p, q.Search) })
	}

	return out
}

// Matches reports whether query is a case-insensitive substring of the
// title, a genre or an actor of p.
func Matches(p *Project, query string) bool {
	q := strings.ToLower(query)
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), q) }

	return contains(p.Title) || lo.ContainsBy(p.Genres, contains) || lo.ContainsBy(p.Actors, contains)
}

// Find returns the project with the given id.
func Find(projects []Project, id string) (Project, bool) {
	return lo.Find(projects, func(p Project) bool { return p.ID == id })
}
