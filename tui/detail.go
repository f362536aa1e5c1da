package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/focus"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/samber/lo"
)

// flow packs chips into lines of at most width cells. lineOf maps each chip
// to the line holding it.
func flow(chips []string, width int) (lines []string, lineOf []int) {
	var current []string
	used := 0

	for _, chip := range chips {
		w := lipgloss.Width(chip)
		if len(current) > 0 && used+1+w > width {
			lines = append(lines, strings.Join(current, " "))
			current, used = nil, 0
		}
		if len(current) > 0 {
			used++
		}
		current = append(current, chip)
		used += w
		lineOf = append(lineOf, len(lines))
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines, lineOf
}

func (b *statefulBubble) renderMarkdown(text string, width int) string {
	if b.markdown == nil || b.markdownWidth != width {
		theme := "dark"
		if !b.darkBackground {
			theme = "light"
		}

		r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(theme), glamour.WithWordWrap(width))
		if err != nil {
			return wrap.String(text, width)
		}
		b.markdown, b.markdownWidth = r, width
	}

	out, err := b.markdown.Render(text)
	if err != nil {
		return wrap.String(text, width)
	}
	return strings.Trim(out, "\n")
}

// detailLines draws the detail view of p and returns the line of the focus.
func (b *statefulBubble) detailLines(p *catalog.Project) ([]string, int) {
	d, _ := b.nav.Session().Focus.Focus.(focus.Detail)
	on := func(sub focus.Sub, i int) bool {
		return d.Sub == sub && d.Index == i
	}

	var (
		lines     []string
		focusLine int
	)

	chipRow := func(label string, sub focus.Sub, items []string) {
		if len(items) == 0 {
			return
		}

		lines = append(lines, style.Faint(label))
		chips := lo.Map(items, func(s string, i int) string {
			return style.Chip(on(sub, i)).Render(s)
		})

		flowed, lineOf := flow(chips, b.width)
		if d.Sub == sub && d.Index < len(lineOf) {
			focusLine = len(lines) + lineOf[d.Index]
		}
		lines = append(lines, flowed...)
		lines = append(lines, "")
	}

	lines = append(lines, style.Chip(on(focus.Back, 0)).Render("← Indietro"), "")

	header := style.Title(p.Title)
	if p.IsOnAir() {
		header += " " + style.Tag(style.Base, style.Peach)(icon.Get(icon.OnAir)+" on air")
	}
	kind := "film"
	if p.Video.IsSeries {
		kind = "serie, " + episodesLabel(p.EpisodeCount())
	}
	lines = append(lines, header, style.Faint(subtitle(p)+" · "+kind), "")

	chipRow("Generi", focus.Genres, p.DisplayGenres())
	chipRow("Cast", focus.Actors, p.Actors)

	favorite := icon.Get(icon.Heart) + " Aggiungi ai preferiti"
	if b.nav.Favorites().Has(p.ID) {
		favorite = icon.Get(icon.Heart) + " Rimuovi dai preferiti"
	}
	buttons := []string{style.Chip(on(focus.Buttons, 0)).Render(favorite)}
	if !p.Video.IsSeries {
		buttons = append(buttons, style.Chip(on(focus.Buttons, 1)).Render(icon.Get(icon.Play)+" Guarda"))
	}
	if d.Sub == focus.Buttons {
		focusLine = len(lines)
	}
	lines = append(lines, strings.Join(buttons, " "), "")

	if p.Description != "" {
		lines = append(lines, strings.Split(b.renderMarkdown(p.Description, max(20, b.width)), "\n")...)
		lines = append(lines, "")
	}

	if p.Video.IsSeries {
		lines = append(lines, style.Faint("Episodi"))

		last, watched := b.nav.History().Get(p.ID)
		for i := 0; i < p.EpisodeCount(); i++ {
			label := fmt.Sprintf("%2d  %s", i+1, fit(p.EpisodeTitle(i), max(10, b.width-12)))
			line := style.Chip(on(focus.Episodes, i)).Render(label)
			if watched && last.EpisodeIndex == i {
				line += " " + style.Fg(style.SecondaryColor)(icon.Get(icon.History))
			}
			if on(focus.Episodes, i) {
				focusLine = len(lines)
			}
			lines = append(lines, line)
		}
	}

	return lines, focusLine
}
