package tui

import (
	"time"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydrama-tv/mydrama/internal/ui"
	"github.com/mydrama-tv/mydrama/nav"
	"github.com/mydrama-tv/mydrama/playback"
	"github.com/mydrama-tv/mydrama/remote"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := b.notifier.Update(msg); handled {
		return b, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case catalogLoadedMsg:
		b.nav.SetCatalog(msg.projects)
		if msg.err != nil {
			b.raiseError(msg.err)
			return b, nil
		}
		b.setState(gridState)
		b.syncSearch()
		b.syncState()
		return b, nil
	case mediaEventMsg:
		cmd := b.nav.Player().OnEvent(msg.event)
		b.syncState()
		return b, tea.Batch(cmd, b.waitForMediaEvent())
	case playback.ControlsExpiredMsg:
		b.nav.Player().ControlsExpired(msg)
		return b, nil
	case releaseMsg:
		if at, ok := b.repeat.Release(msg.token); ok && b.browsing() {
			return b, b.key(nav.KeyEvent{Key: nav.KeyEnter, Kind: nav.Up, At: at})
		}
		return b, nil
	case remote.KeyMsg:
		if b.browsing() {
			return b, b.key(msg.Event)
		}
		return b, nil
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case errorState:
		return b.updateError(msg)
	case playerState:
		return b.updatePlayer(msg)
	default:
		return b.updateBrowse(msg)
	}
}

func (b *statefulBubble) browsing() bool {
	return b.state != loadingState && b.state != errorState
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.retry):
			b.lastError = nil
			b.setState(loadingState)
			return b, tea.Batch(b.spinnerC.Tick, b.loadCatalog())
		case bubblesKey.Matches(msg, b.keymap.skipError):
			b.lastError = nil
			b.setState(gridState)
			b.syncState()
			return b, ui.Notify("Catalogo vuoto")
		}
	}
	return b, nil
}

// translate names a terminal key the way nav expects.
func (b *statefulBubble) translate(msg tea.KeyMsg, typing bool) string {
	if typing {
		return msg.String()
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.up):
		return nav.KeyUp
	case bubblesKey.Matches(msg, b.keymap.down):
		return nav.KeyDown
	case bubblesKey.Matches(msg, b.keymap.left):
		return nav.KeyLeft
	case bubblesKey.Matches(msg, b.keymap.right):
		return nav.KeyRight
	}
	return msg.String()
}

func (b *statefulBubble) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		typing := b.state == searchState

		switch {
		case !typing && bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case !typing && bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil
		case typing && bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion):
			if suggestion, ok := b.searchSuggestion.Get(); ok {
				b.nav.Search(suggestion)
				b.syncSearch()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b, b.pressEnter(time.Now())
		}

		return b, b.key(nav.KeyEvent{Key: b.translate(msg, typing), Kind: nav.Down, At: time.Now()})
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return b, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return b, b.key(nav.KeyEvent{Key: nav.KeyUp, At: time.Now()})
		case tea.MouseButtonWheelDown:
			return b, b.key(nav.KeyEvent{Key: nav.KeyDown, At: time.Now()})
		}
	}

	var cmd tea.Cmd
	if b.state == searchState {
		b.inputC, cmd = b.inputC.Update(msg)
	}
	return b, cmd
}

func (b *statefulBubble) updatePlayer(msg tea.Msg) (tea.Model, tea.Cmd) {
	player := b.nav.Player()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b, b.pressEnter(time.Now())
		case bubblesKey.Matches(msg, b.keymap.playPause):
			return b, b.key(nav.KeyEvent{Key: nav.KeyEnter, Kind: nav.Down, At: time.Now()})
		}
		return b, b.key(nav.KeyEvent{Key: msg.String(), Kind: nav.Down, At: time.Now()})
	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionMotion:
			return b, player.Interact()
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft {
				return b, nil
			}
			if msg.Y == b.barY && msg.X >= b.barX && msg.X < b.barX+b.barWidth {
				player.SeekAt(msg.X-b.barX, b.barWidth)
			}
			return b, player.Interact()
		}
	}
	return b, nil
}
