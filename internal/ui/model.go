// Package ui holds the transient notification line of the interface.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/style"
)

// DefaultLifetime is how long a notification stays on screen.
const DefaultLifetime = 3 * time.Second

// NotifyMsg puts a notification on screen.
type NotifyMsg struct {
	Text    string
	Failure bool
}

type clearMsg struct{ seq int }

// Notify returns a command showing text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Text: text}
	}
}

// Fail returns a command showing err.
func Fail(err error) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Text: err.Error(), Failure: true}
	}
}

// Notifier shows the latest notification until its lifetime passes.
// A newer notification restarts the countdown.
type Notifier struct {
	Lifetime time.Duration

	text    string
	failure bool
	seq     int
}

// Update consumes notification messages. It reports whether msg was one.
func (n *Notifier) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case NotifyMsg:
		n.seq++
		n.text = msg.Text
		n.failure = msg.Failure

		seq, lifetime := n.seq, n.Lifetime
		if lifetime <= 0 {
			lifetime = DefaultLifetime
		}
		return true, tea.Tick(lifetime, func(time.Time) tea.Msg {
			return clearMsg{seq: seq}
		})
	case clearMsg:
		if msg.seq == n.seq {
			n.text = ""
		}
		return true, nil
	}
	return false, nil
}

// Text is the notification on screen, if any.
func (n *Notifier) Text() string {
	return n.text
}

func (n *Notifier) View() string {
	if n.text == "" {
		return ""
	}
	if n.failure {
		return style.Fg(style.ErrorColor)(icon.Get(icon.Fail) + " " + n.text)
	}
	return style.Fg(style.SuccessColor)(icon.Get(icon.Success) + " " + n.text)
}
