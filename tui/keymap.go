package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mydrama-tv/mydrama/color"
	"github.com/mydrama-tv/mydrama/style"
)

// statefulKeymap is the key help of each state. Routing itself happens in nav.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	showHelp,
	up, down, left, right,
	confirm, hold, back,
	favorite, category, remove, clearHistory, openURL,
	acceptSearchSuggestion,
	retry, skipError,
	playPause, seekBack, seekForward, mute, nextEp, prevEp, stop key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "esci"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "esci"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "aiuto"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "su"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "giù"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "sinistra"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "destra"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apri"),
		),
		hold: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter 2s"), style.Fg(color.Orange)("preferito")),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "indietro"),
		),
		favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "preferito"),
		),
		category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "categoria"),
		),
		remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "rimuovi"),
		),
		clearHistory: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "svuota"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "poster"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "suggerimento"),
		),
		retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "riprova"),
		),
		skipError: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "continua"),
		),
		playPause: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("play/pausa")),
		),
		seekBack: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "indietro"),
		),
		seekForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "avanti"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "muto"),
		),
		nextEp: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "prossimo"),
		),
		prevEp: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "precedente"),
		),
		stop: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "stop"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case errorState:
		return to2(h(k.retry, k.skipError, k.quit))
	case gridState:
		return h(k.confirm, k.hold, k.back, k.showHelp, k.quit),
			h(k.up, k.down, k.left, k.right, k.confirm, k.hold, k.favorite, k.category, k.remove, k.clearHistory, k.openURL, k.back, k.quit)
	case searchState:
		return to2(h(k.confirm, k.hold, k.acceptSearchSuggestion, k.back, k.forceQuit))
	case detailState:
		return h(k.confirm, k.favorite, k.back, k.showHelp),
			h(k.up, k.down, k.left, k.right, k.confirm, k.favorite, k.openURL, k.back, k.quit)
	case playerState:
		return h(k.playPause, k.seekBack, k.seekForward, k.stop),
			h(k.playPause, k.seekBack, k.seekForward, k.mute, k.nextEp, k.prevEp, k.stop)
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
