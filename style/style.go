// Package style composes lipgloss styles for the CLI and the TUI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mydrama-tv/mydrama/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored is a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer that paints text with c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

var Title = func(s string) string {
	return Colored(color.New("230"), color.Rose).Bold(true).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag renders a padded badge.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Focusable picks between the idle and the focused rendition of a widget.
func Focusable(idle, focused lipgloss.Style) func(bool) lipgloss.Style {
	return func(on bool) lipgloss.Style {
		if on {
			return focused
		}
		return idle
	}
}

// Card styles of the catalog grid.
var Card = Focusable(
	New().Border(lipgloss.RoundedBorder()).BorderForeground(BorderColor).Padding(0, 1),
	New().Border(lipgloss.ThickBorder()).BorderForeground(ActiveBorderColor).Padding(0, 1),
)

// MenuItem styles of the top menu.
var MenuItem = Focusable(
	New().Foreground(Subtext).Padding(0, 1),
	New().Foreground(Base).Background(AccentColor).Bold(true).Padding(0, 1),
)

// Chip styles of genres, actors, buttons and episodes in the detail view.
var Chip = Focusable(
	New().Foreground(Text).Background(Surface).Padding(0, 1),
	New().Foreground(Base).Background(Pink).Bold(true).Padding(0, 1),
)
