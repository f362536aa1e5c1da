package focus

// DetailLayout sizes the rows of an open detail view.
type DetailLayout struct {
	Genres   int
	Actors   int
	Buttons  int
	Episodes int
}

// DetailFor sizes a detail view. Series get one button (favorite), movies
// two (favorite, watch).
func DetailFor(genres, actors int, series bool, episodes int) *DetailLayout {
	d := &DetailLayout{Genres: genres, Actors: actors, Buttons: 2}
	if series {
		d.Buttons = 1
		d.Episodes = episodes
	}
	return d
}

func (d *DetailLayout) count(s Sub) int {
	switch s {
	case Back:
		return 1
	case Genres:
		return d.Genres
	case Actors:
		return d.Actors
	case Buttons:
		return d.Buttons
	case Episodes:
		return d.Episodes
	default:
		return 0
	}
}

// Layout is what is on screen when an event arrives.
type Layout struct {
	MenuCount    int
	ContentCount int
	ItemsPerRow  int
	// Detail is nil while no detail view is open.
	Detail *DetailLayout
	OnHome bool
}

// ItemsPerRow fits cards of cardWidth into width, at least one.
func ItemsPerRow(width, cardWidth int) int {
	if cardWidth <= 0 {
		return 1
	}
	return max(1, width/cardWidth)
}

func (l Layout) rows() int {
	return max(1, l.ItemsPerRow)
}
