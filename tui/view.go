package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/focus"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/mydrama-tv/mydrama/util"
	"github.com/samber/lo"
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case errorState:
		return b.viewError()
	case playerState:
		return b.viewPlayer()
	case detailState:
		return b.viewDetail()
	case searchState:
		return b.viewSearch()
	case gridState:
		return b.viewGrid()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(true, []string{
		style.Title("mydrama"),
		"",
		b.spinnerC.View() + " Caricamento catalogo",
	})
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)

	return b.renderLines(true, []string{
		style.ErrorTitle("Errore"),
		"",
		icon.Get(icon.Fail) + " Impossibile caricare il catalogo:",
		"",
		errorMsg,
	})
}

// viewMenu draws the top menu. The active page is underlined, the focused
// entry highlighted.
func (b *statefulBubble) viewMenu() string {
	s := b.nav.Session()
	menu, menuFocused := s.Focus.Focus.(focus.Menu)

	items := lo.Map(catalog.Pages, func(p catalog.Page, i int) string {
		focused := menuFocused && menu.Index == i
		st := style.MenuItem(focused)
		if p == s.Page && !focused {
			st = st.Foreground(style.AccentColor).Underline(true)
		}
		return st.Render(p.String())
	})

	if b.remoteAddr != "" {
		items = append(items, style.Faint(" "+icon.Get(icon.Remote)+" "+b.remoteAddr))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	return style.New().MaxWidth(b.width).Render(row)
}

func (b *statefulBubble) pageTitle() string {
	s := b.nav.Session()
	title := s.Page.String()
	if s.SubCategory != "" {
		title += " · " + s.SubCategory
	}
	count := style.Faint(util.Quantify(len(b.nav.View()), "titolo", "titoli"))
	return style.Title(title) + " " + count
}

// grid draws the cards that fit in height lines.
func (b *statefulBubble) grid(height int) []string {
	view := b.nav.View()
	if len(view) == 0 {
		return nil
	}

	perRow := b.nav.Layout().ItemsPerRow
	selected := -1
	if c, ok := b.nav.Session().Focus.Focus.(focus.Content); ok {
		selected = c.Index
	}

	favorites := b.nav.Favorites()
	rows := lo.Map(lo.Chunk(view, perRow), func(row []catalog.Project, r int) string {
		cards := lo.Map(row, func(p catalog.Project, c int) string {
			return renderCard(&p, b.cardWidth, r*perRow+c == selected, favorites.Has(p.ID))
		})
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	})

	cardHeight := max(1, lipgloss.Height(rows[0]))
	b.gridScroll.Height = max(1, height/cardHeight)
	if selected >= 0 {
		b.gridScroll.Reveal(selected/perRow, len(rows))
	}

	end := min(len(rows), b.gridScroll.Offset+b.gridScroll.Height)
	return rows[b.gridScroll.Offset:end]
}

func (b *statefulBubble) viewGrid() string {
	header := []string{b.viewMenu(), "", b.pageTitle(), ""}

	rows := b.grid(b.height - len(header) - b.footerHeight())
	if len(rows) == 0 {
		rows = []string{style.Faint("Nessun titolo")}
	}

	return b.renderLines(true, append(header, rows...))
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{b.viewMenu(), "", b.inputC.View()}

	hint := ""
	if suggestion, ok := b.searchSuggestion.Get(); ok {
		hint = style.Faint(icon.Get(icon.Search) + " " + suggestion + " (tab)")
	}
	lines = append(lines, hint, b.pageTitle(), "")

	rows := b.grid(b.height - len(lines) - b.footerHeight())
	if len(rows) == 0 {
		rows = []string{style.Faint("Nessun risultato")}
		if q := b.nav.Session().Search; q != "" {
			if guess, ok := catalog.DidYouMean(b.nav.Projects(), q).Get(); ok {
				rows = append(rows, "", "Forse cercavi "+style.Fg(style.AccentColor)(guess)+"?")
			}
		}
	}

	return b.renderLines(true, append(lines, rows...))
}

func (b *statefulBubble) viewDetail() string {
	p := b.nav.Session().Selected
	if p == nil {
		return b.viewGrid()
	}

	header := []string{b.viewMenu(), ""}
	lines, focusLine := b.detailLines(p)

	b.detailScroll.Height = max(1, b.height-len(header)-b.footerHeight())
	b.detailScroll.Reveal(focusLine, len(lines))

	end := min(len(lines), b.detailScroll.Offset+b.detailScroll.Height)
	return b.renderLines(true, append(header, lines[b.detailScroll.Offset:end]...))
}

func (b *statefulBubble) viewPlayer() string {
	st := b.nav.Player().State()
	if st.Project == nil {
		return b.viewGrid()
	}

	now := icon.Get(icon.Play) + " In riproduzione"
	if !st.IsPlaying {
		now = icon.Get(icon.Pause) + " In pausa"
	}
	if st.Muted {
		now += "  " + icon.Get(icon.Muted) + " muto"
	} else {
		now += "  " + icon.Get(icon.Volume)
	}

	lines := []string{
		style.Title("mydrama"),
		"",
		style.Bold(st.Project.Title),
	}
	if st.Project.Video.IsSeries {
		lines = append(lines, style.Faint(fmt.Sprintf("Episodio %d di %d · %s",
			st.Episode+1, st.Project.EpisodeCount(), st.Project.EpisodeTitle(st.Episode))))
	}
	lines = append(lines, "", now, "")

	// the padding frame puts line i at row i+1, column 2
	b.barY = len(lines) + 1
	b.barX = 2
	b.barWidth = b.progressC.Width
	lines = append(lines,
		b.progressC.ViewAs(st.Fraction()),
		style.Faint(util.FormatTime(st.CurrentTime)+" / "+util.FormatTime(st.Duration)),
	)

	if st.ShowNextPrompt {
		next := st.Project.EpisodeTitle(st.Episode + 1)
		lines = append(lines, "", style.Tag(style.Base, style.AccentColor)(icon.Get(icon.Next)+" Prossimo episodio: "+next+" · invio"))
	}

	if st.Err != nil {
		lines = append(lines, "", style.Fg(style.ErrorColor)(icon.Get(icon.Fail)+" "+st.Err.Error()))
	}

	return b.renderLines(st.ControlsVisible, lines)
}

func (b *statefulBubble) footerHeight() int {
	return 1 + lipgloss.Height(b.helpC.View(b.keymap))
}

// renderLines pads lines to the screen, then adds the notification and the
// key help at the bottom.
func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)

	footer := b.notifier.View()
	if addHelp {
		footer += "\n" + b.helpC.View(b.keymap)
	}

	if gap := b.height - h - lipgloss.Height(footer); gap > 0 {
		l += strings.Repeat("\n", gap)
	}
	l += "\n" + footer

	return paddingStyle.Render(l)
}
