package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/style"
)

// cardLines is the number of text lines inside a card border.
const cardLines = 3

// fit truncates or pads plain text to exactly width cells.
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// pad fills styled text up to width cells.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func subtitle(p *catalog.Project) string {
	parts := []string{p.Category}
	if p.SubCategory != "" {
		parts = append(parts, p.SubCategory)
	}
	return strings.Join(parts, " · ")
}

func badges(p *catalog.Project, favorite bool) string {
	var out []string
	if favorite {
		out = append(out, style.Fg(style.AccentColor)(icon.Get(icon.Heart)))
	}
	if p.IsOnAir() {
		out = append(out, style.Tag(style.Base, style.Peach)(icon.Get(icon.OnAir)+" on air"))
	}
	if p.Video.IsSeries {
		out = append(out, style.Fg(style.Subtext)(episodesLabel(p.EpisodeCount())))
	}
	return strings.Join(out, " ")
}

func episodesLabel(n int) string {
	if n == 1 {
		return "1 episodio"
	}
	return fmt.Sprintf("%d episodi", n)
}

// renderCard draws p in a bordered box width cells wide.
func renderCard(p *catalog.Project, width int, focused, favorite bool) string {
	inner := max(4, width-4)

	title := fit(p.Title, inner)
	if focused {
		title = style.Bold(title)
	}

	lines := []string{
		title,
		style.Faint(fit(subtitle(p), inner)),
		pad(style.New().MaxWidth(inner).Render(badges(p, favorite)), inner),
	}

	return style.Card(focused).Render(strings.Join(lines[:cardLines], "\n"))
}
