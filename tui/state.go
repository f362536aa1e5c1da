package tui

type state int

const (
	loadingState state = iota
	errorState
	gridState
	detailState
	searchState
	playerState
)

func (s state) String() string {
	switch s {
	case loadingState:
		return "loading"
	case errorState:
		return "error"
	case gridState:
		return "grid"
	case detailState:
		return "detail"
	case searchState:
		return "search"
	case playerState:
		return "player"
	default:
		return "unknown"
	}
}
