package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init fetches the catalog and starts listening to the player.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, b.spinnerC.Tick, b.loadCatalog(), b.waitForMediaEvent())
}
