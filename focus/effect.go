package focus

// EffectKind is the page or selection change requested by a transition.
type EffectKind int

const (
	None EffectKind = iota
	// SelectPage commits menu entry Index as the active page.
	SelectPage
	// OpenDetail opens grid item Index.
	OpenDetail
	CloseDetail
	// ToggleFavorite flips grid item Index.
	ToggleFavorite
	// ToggleDetailFavorite flips the project of the open detail view.
	ToggleDetailFavorite
	// SearchGenre searches genre Index of the open project.
	SearchGenre
	// SearchActor searches actor Index of the open project.
	SearchActor
	// Play starts episode Index of the open project.
	Play
	GoHome
)

type Effect struct {
	Kind  EffectKind
	Index int
}

func (e Effect) String() string {
	names := [...]string{"none", "select-page", "open-detail", "close-detail", "toggle-favorite",
		"toggle-detail-favorite", "search-genre", "search-actor", "play", "go-home"}
	if int(e.Kind) < len(names) {
		return names[e.Kind]
	}
	return "unknown"
}
