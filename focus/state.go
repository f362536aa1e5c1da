// Package focus is the directional navigation state machine of the browser.
//
// Focus lives in one of three zones: the top menu, the content grid or the
// detail view of a project. Reduce maps an input event and the current
// layout to the next state plus an Effect for the caller to apply.
package focus

import "fmt"

// Sub is a row of the detail view, top to bottom.
type Sub int

const (
	Back Sub = iota
	Genres
	Actors
	Buttons
	Episodes
)

var subs = []Sub{Back, Genres, Actors, Buttons, Episodes}

func (s Sub) String() string {
	switch s {
	case Back:
		return "back"
	case Genres:
		return "genres"
	case Actors:
		return "actors"
	case Buttons:
		return "buttons"
	case Episodes:
		return "episodes"
	default:
		return fmt.Sprintf("Sub(%d)", int(s))
	}
}

// Focus is one of Menu, Content or Detail.
type Focus interface {
	isFocus()
	String() string
}

type Menu struct{ Index int }

type Content struct{ Index int }

type Detail struct {
	Sub   Sub
	Index int
}

func (Menu) isFocus()    {}
func (Content) isFocus() {}
func (Detail) isFocus()  {}

func (m Menu) String() string    { return fmt.Sprintf("menu[%d]", m.Index) }
func (c Content) String() string { return fmt.Sprintf("content[%d]", c.Index) }
func (d Detail) String() string  { return fmt.Sprintf("detail.%s[%d]", d.Sub, d.Index) }

// State is the focus plus what it returns to.
type State struct {
	Focus Focus
	// LastMenu is restored when leaving the grid upwards.
	LastMenu int
	// From is the grid index the detail view was opened from.
	From int
	// Waiting is set while the focus sits in the menu only because the
	// grid is empty. The first card takes it back once the grid fills.
	Waiting bool
}

// Initial focuses the first card of the home page.
func Initial() State {
	return State{Focus: Content{}}
}

// ForPage is the state after the page, category or search changes.
func ForPage(s State) State {
	s.Focus = Content{}
	return s
}

// ForDetail is the state after a detail view opens from grid index from.
func ForDetail(s State, from int) State {
	s.Focus = Detail{Sub: Buttons}
	s.From = from
	return s
}

// Index is the index of the focus within its collection.
func (s State) Index() int {
	switch f := s.Focus.(type) {
	case Menu:
		return f.Index
	case Content:
		return f.Index
	case Detail:
		return f.Index
	default:
		return 0
	}
}

func (s State) String() string {
	if s.Focus == nil {
		return "none"
	}
	return s.Focus.String()
}
