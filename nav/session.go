package nav

import (
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/focus"
)

// Session is what the browser shows.
type Session struct {
	Page        catalog.Page
	SubCategory string
	Search      string
	// Selected is the project of the open detail view.
	Selected *catalog.Project
	Focus    focus.State
}

func newSession() Session {
	return Session{Page: catalog.PageHome, Focus: focus.Initial()}
}

// Typing reports whether printable keys edit the search box.
func (s Session) Typing() bool {
	return s.Page == catalog.PageSearch && s.Selected == nil
}

func (s *Session) goTo(page catalog.Page) {
	s.Page = page
	s.SubCategory = ""
	s.Search = ""
	s.Selected = nil
	s.Focus = focus.ForPage(s.Focus)
	s.Focus.LastMenu = int(page)
}

func (s *Session) search(q string) {
	s.goTo(catalog.PageSearch)
	s.Search = q
}
