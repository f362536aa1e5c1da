package focus

import "github.com/mydrama-tv/mydrama/util"

// Event is a navigation input.
type Event int

const (
	Up Event = iota
	Down
	Left
	Right
	Activate
	LongActivate
	BackOut
)

func (e Event) String() string {
	switch e {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Activate:
		return "activate"
	case LongActivate:
		return "long-activate"
	case BackOut:
		return "back"
	default:
		return "unknown"
	}
}

func clamp(i, count int) int {
	return util.Clamp(i, 0, count-1)
}

// Normalize makes s valid for l: indices in range and never inside an
// empty collection.
func Normalize(s State, l Layout) State {
	if l.Detail != nil {
		d, ok := s.Focus.(Detail)
		if !ok || l.Detail.count(d.Sub) == 0 {
			d = Detail{Sub: Buttons}
		}
		d.Index = clamp(d.Index, l.Detail.count(d.Sub))
		s.Focus = d
		return s
	}

	s.LastMenu = clamp(s.LastMenu, l.MenuCount)

	switch f := s.Focus.(type) {
	case Menu:
		if s.Waiting && l.ContentCount > 0 {
			s.Focus = Content{}
			s.Waiting = false
		} else {
			s.Focus = Menu{Index: clamp(f.Index, l.MenuCount)}
		}
	case Content:
		if l.ContentCount == 0 {
			s.Focus = Menu{Index: s.LastMenu}
			s.Waiting = true
		} else {
			s.Focus = Content{Index: clamp(f.Index, l.ContentCount)}
			s.Waiting = false
		}
	default:
		// a detail focus without a detail view falls back to where it came from
		if l.ContentCount == 0 {
			s.Focus = Menu{Index: s.LastMenu}
			s.Waiting = true
		} else {
			s.Focus = Content{Index: clamp(s.From, l.ContentCount)}
			s.Waiting = false
		}
	}
	return s
}

// Reduce applies ev to s. The returned state is normalized for l; after
// applying the effect the caller normalizes again for the new layout.
func Reduce(s State, ev Event, l Layout) (State, Effect) {
	s = Normalize(s, l)

	if ev == BackOut {
		return backOut(s, l)
	}

	switch f := s.Focus.(type) {
	case Menu:
		return menu(s, f, ev, l)
	case Content:
		return content(s, f, ev, l)
	case Detail:
		return detail(s, f, ev, l)
	}
	return s, Effect{}
}

func backOut(s State, l Layout) (State, Effect) {
	if l.Detail != nil {
		s.Focus = Content{Index: s.From}
		return s, Effect{Kind: CloseDetail}
	}
	if !l.OnHome {
		return ForPage(s), Effect{Kind: GoHome}
	}
	return s, Effect{}
}

func menu(s State, f Menu, ev Event, l Layout) (State, Effect) {
	// the user is in the menu on purpose now
	s.Waiting = false

	switch ev {
	case Left:
		f.Index = clamp(f.Index-1, l.MenuCount)
	case Right:
		f.Index = clamp(f.Index+1, l.MenuCount)
	case Down:
		if l.ContentCount > 0 {
			s.Focus = Content{}
			return s, Effect{}
		}
	case Activate, LongActivate:
		s.LastMenu = f.Index
		return ForPage(s), Effect{Kind: SelectPage, Index: f.Index}
	}

	s.Focus = f
	s.LastMenu = f.Index
	return s, Effect{}
}

func content(s State, f Content, ev Event, l Layout) (State, Effect) {
	rows := l.rows()

	switch ev {
	case Left:
		f.Index = clamp(f.Index-1, l.ContentCount)
	case Right:
		f.Index = clamp(f.Index+1, l.ContentCount)
	case Down:
		f.Index = clamp(f.Index+rows, l.ContentCount)
	case Up:
		if f.Index < rows {
			s.Focus = Menu{Index: s.LastMenu}
			return s, Effect{}
		}
		f.Index = clamp(f.Index-rows, l.ContentCount)
	case Activate:
		return ForDetail(s, f.Index), Effect{Kind: OpenDetail, Index: f.Index}
	case LongActivate:
		return s, Effect{Kind: ToggleFavorite, Index: f.Index}
	}

	s.Focus = f
	return s, Effect{}
}

// neighbour finds the next non-empty detail row in direction step.
func neighbour(d *DetailLayout, from Sub, step int) (Sub, bool) {
	for i := int(from) + step; i >= 0 && i < len(subs); i += step {
		if d.count(subs[i]) > 0 {
			return subs[i], true
		}
	}
	return from, false
}

func detail(s State, f Detail, ev Event, l Layout) (State, Effect) {
	d := l.Detail
	count := d.count(f.Sub)

	switch ev {
	case Left, Right:
		if f.Sub == Genres || f.Sub == Actors || f.Sub == Buttons {
			step := 1
			if ev == Left {
				step = -1
			}
			f.Index = clamp(f.Index+step, count)
		}
	case Down:
		if f.Sub == Episodes {
			f.Index = clamp(f.Index+1, count)
			break
		}
		if next, ok := neighbour(d, f.Sub, 1); ok {
			f = Detail{Sub: next}
		}
	case Up:
		if f.Sub == Episodes && f.Index > 0 {
			f.Index--
			break
		}
		if prev, ok := neighbour(d, f.Sub, -1); ok {
			f = Detail{Sub: prev}
		}
	case Activate, LongActivate:
		return activateDetail(s, f)
	}

	s.Focus = f
	return s, Effect{}
}

func activateDetail(s State, f Detail) (State, Effect) {
	switch f.Sub {
	case Back:
		s.Focus = Content{Index: s.From}
		return s, Effect{Kind: CloseDetail}
	case Genres:
		return ForPage(s), Effect{Kind: SearchGenre, Index: f.Index}
	case Actors:
		return ForPage(s), Effect{Kind: SearchActor, Index: f.Index}
	case Buttons:
		if f.Index == 1 {
			return s, Effect{Kind: Play}
		}
		return s, Effect{Kind: ToggleDetailFavorite}
	case Episodes:
		return s, Effect{Kind: Play, Index: f.Index}
	}
	return s, Effect{}
}
