package nav

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/favorites"
	"github.com/mydrama-tv/mydrama/focus"
	"github.com/mydrama-tv/mydrama/history"
	"github.com/mydrama-tv/mydrama/internal/ui"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/open"
	"github.com/mydrama-tv/mydrama/playback"
	"github.com/mydrama-tv/mydrama/press"
	"github.com/samber/lo"
)

// Queries remembers what was searched.
type Queries interface {
	Remember(q string, weight int) error
}

type Options struct {
	HomeLimit int
	CardWidth int
	// SeekStep is how many seconds left and right seek.
	SeekStep float64
	// LongPress is the hold time of a long activation.
	LongPress time.Duration
}

func DefaultOptions() Options {
	return Options{
		HomeLimit: 6,
		CardWidth: 28,
		SeekStep:  10,
		LongPress: press.DefaultThreshold,
	}
}

// Controller owns the browsing session and dispatches keys to it or to
// playback. Like playback.Controller it lives on the update loop.
type Controller struct {
	opts      Options
	favorites *favorites.Set
	history   *history.History
	player    *playback.Controller
	press     *press.Tracker

	// Queries is optional.
	Queries Queries
	// Open shows a poster outside the terminal.
	Open func(url string) error

	projects []catalog.Project
	view     []catalog.Project
	width    int
	session  Session
}

func New(fav *favorites.Set, hist *history.History, player *playback.Controller, opts Options) *Controller {
	if opts.CardWidth <= 0 {
		opts.CardWidth = DefaultOptions().CardWidth
	}
	if opts.SeekStep <= 0 {
		opts.SeekStep = DefaultOptions().SeekStep
	}

	c := &Controller{
		opts:      opts,
		favorites: fav,
		history:   hist,
		player:    player,
		press:     press.New(opts.LongPress),
		Open:      open.URL,
		session:   newSession(),
	}
	c.refresh()
	return c
}

// SetCatalog replaces the projects being browsed.
func (c *Controller) SetCatalog(projects []catalog.Project) {
	c.projects = projects
	if c.session.Selected != nil {
		if p, ok := catalog.Find(projects, c.session.Selected.ID); ok {
			c.session.Selected = &p
		} else {
			c.session.Selected = nil
		}
	}
	c.refresh()
}

func (c *Controller) Projects() []catalog.Project {
	return c.projects
}

// Resize records the width of the grid.
func (c *Controller) Resize(width int) {
	c.width = width
	c.refresh()
}

// GoTo opens page with a fresh focus.
func (c *Controller) GoTo(page catalog.Page) {
	c.session.goTo(page)
	c.refresh()
}

// Search opens the search page for q.
func (c *Controller) Search(q string) {
	c.session.search(q)
	c.refresh()
}

func (c *Controller) Session() Session {
	return c.session
}

// View is the grid of the current page.
func (c *Controller) View() []catalog.Project {
	return c.view
}

func (c *Controller) Player() *playback.Controller {
	return c.player
}

func (c *Controller) Favorites() *favorites.Set {
	return c.favorites
}

func (c *Controller) History() *history.History {
	return c.history
}

// Focused returns the project under the grid focus.
func (c *Controller) Focused() (catalog.Project, bool) {
	f, ok := c.session.Focus.Focus.(focus.Content)
	if !ok || f.Index >= len(c.view) {
		return catalog.Project{}, false
	}
	return c.view[f.Index], true
}

// Layout describes the screen for the focus machine.
func (c *Controller) Layout() focus.Layout {
	l := focus.Layout{
		MenuCount:    len(catalog.Pages),
		ContentCount: len(c.view),
		ItemsPerRow:  focus.ItemsPerRow(c.width, c.opts.CardWidth),
		OnHome:       c.session.Page == catalog.PageHome,
	}

	if p := c.session.Selected; p != nil {
		l.Detail = focus.DetailFor(len(p.DisplayGenres()), len(p.Actors), p.Video.IsSeries, p.EpisodeCount())
	}
	return l
}

func (c *Controller) refresh() {
	c.view = catalog.View(c.projects, catalog.Query{
		Page:        c.session.Page,
		SubCategory: c.session.SubCategory,
		Search:      c.session.Search,
		HomeLimit:   c.opts.HomeLimit,
		Favorites:   c.favorites.List(),
		History:     c.history.ProjectIDs(),
	})
	c.session.Focus = focus.Normalize(c.session.Focus, c.Layout())
}

// Key handles one key event and returns the follow-up commands.
func (c *Controller) Key(ev KeyEvent) tea.Cmd {
	ev.Key = Canonical(ev.Key)

	log.WithFields(map[string]any{
		"key":   ev.Key,
		"kind":  ev.Kind.String(),
		"focus": c.session.Focus.String(),
	}).Trace("nav: key")

	if c.player.Active() {
		return c.playbackKey(ev)
	}
	return c.browseKey(ev)
}

func (c *Controller) playbackKey(ev KeyEvent) tea.Cmd {
	if ev.Kind == Up {
		return nil
	}

	var cmd tea.Cmd

	switch ev.Key {
	case KeyEnter:
		if c.player.State().ShowNextPrompt {
			cmd = c.player.Next()
		} else {
			c.player.TogglePlayPause()
		}
	case KeyLeft:
		c.player.SeekBy(-c.opts.SeekStep)
	case KeyRight:
		c.player.SeekBy(c.opts.SeekStep)
	case "m":
		c.player.ToggleMute()
	case "n":
		cmd = c.player.Next()
	case "p":
		cmd = c.player.Prev()
	case KeyEscape, KeyBackspace:
		c.player.Stop()
		c.press.Cancel()
		return nil
	}

	return tea.Batch(cmd, c.player.Interact())
}

func (c *Controller) browseKey(ev KeyEvent) tea.Cmd {
	if ev.Key == KeyEnter {
		if ev.Kind == Down {
			c.press.Down(ev.At)
			return nil
		}

		switch c.press.Up(ev.At) {
		case press.Short:
			return c.reduce(focus.Activate)
		case press.Long:
			return c.reduce(focus.LongActivate)
		}
		return nil
	}

	if ev.Kind == Up {
		return nil
	}

	// a terminal cannot report the width before the first resize
	c.refresh()

	switch ev.Key {
	case KeyUp:
		return c.reduce(focus.Up)
	case KeyDown:
		return c.reduce(focus.Down)
	case KeyLeft:
		return c.reduce(focus.Left)
	case KeyRight:
		return c.reduce(focus.Right)
	case KeyEscape:
		return c.reduce(focus.BackOut)
	case KeyBackspace:
		if c.session.Typing() && c.session.Search != "" {
			r := []rune(c.session.Search)
			c.setSearch(string(r[:len(r)-1]))
			return nil
		}
		return c.reduce(focus.BackOut)
	}

	if c.session.Typing() && printable(ev.Key) {
		c.setSearch(c.session.Search + ev.Key)
		return nil
	}

	switch ev.Key {
	case "f":
		return c.toggleFocused()
	case "c":
		c.CycleSubCategory()
	case "x":
		return c.removeFocusedFromHistory()
	case "X":
		return c.ClearHistory()
	case "o":
		return c.openPoster()
	}
	return nil
}

func (c *Controller) setSearch(q string) {
	c.session.Search = q
	c.session.Focus = focus.ForPage(c.session.Focus)
	c.refresh()
}

func (c *Controller) reduce(ev focus.Event) tea.Cmd {
	next, effect := focus.Reduce(c.session.Focus, ev, c.Layout())
	c.session.Focus = next

	cmd := c.apply(effect)
	c.refresh()
	return cmd
}

func (c *Controller) apply(effect focus.Effect) tea.Cmd {
	s := &c.session

	switch effect.Kind {
	case focus.SelectPage:
		if effect.Index < len(catalog.Pages) {
			s.goTo(catalog.Pages[effect.Index])
		}
	case focus.GoHome:
		s.goTo(catalog.PageHome)
	case focus.OpenDetail:
		if effect.Index < len(c.view) {
			p := c.view[effect.Index]
			s.Selected = &p
			if s.Page == catalog.PageSearch {
				c.remember(s.Search)
			}
		}
	case focus.CloseDetail:
		s.Selected = nil
	case focus.ToggleFavorite:
		if effect.Index < len(c.view) {
			return c.toggleFavorite(c.view[effect.Index])
		}
	case focus.ToggleDetailFavorite:
		if s.Selected != nil {
			return c.toggleFavorite(*s.Selected)
		}
	case focus.SearchGenre, focus.SearchActor:
		if s.Selected == nil {
			return nil
		}
		terms := s.Selected.DisplayGenres()
		if effect.Kind == focus.SearchActor {
			terms = s.Selected.Actors
		}
		if effect.Index < len(terms) {
			s.search(terms[effect.Index])
			c.remember(s.Search)
		}
	case focus.Play:
		if s.Selected != nil {
			c.press.Cancel()
			return c.player.Start(*s.Selected, effect.Index)
		}
	}
	return nil
}

func (c *Controller) remember(q string) {
	if c.Queries == nil || q == "" {
		return
	}
	if err := c.Queries.Remember(q, 1); err != nil {
		log.Debugf("nav: remember query: %s", err)
	}
}

func (c *Controller) toggleFavorite(p catalog.Project) tea.Cmd {
	added, err := c.favorites.Toggle(p.ID)
	if err != nil {
		log.Error(err)
		return ui.Fail(err)
	}

	if added {
		return ui.Notify(fmt.Sprintf("%s aggiunto ai preferiti", p.Title))
	}
	return ui.Notify(fmt.Sprintf("%s rimosso dai preferiti", p.Title))
}

func (c *Controller) toggleFocused() tea.Cmd {
	if p := c.session.Selected; p != nil {
		return c.toggleFavorite(*p)
	}
	if p, ok := c.Focused(); ok {
		return c.toggleFavorite(p)
	}
	return nil
}

// CycleSubCategory steps the filter of a category page through its
// sub-categories and back to none.
func (c *Controller) CycleSubCategory() {
	category, ok := c.session.Page.Category()
	if !ok || c.session.Selected != nil {
		return
	}

	options := append([]string{""}, catalog.SubCategories(category)...)
	_, i, _ := lo.FindIndexOf(options, func(s string) bool { return s == c.session.SubCategory })
	c.session.SubCategory = options[(i+1)%len(options)]
	c.session.Focus = focus.ForPage(c.session.Focus)
	c.refresh()
}

func (c *Controller) removeFocusedFromHistory() tea.Cmd {
	if c.session.Page != catalog.PageHistory {
		return nil
	}

	p, ok := c.Focused()
	if !ok {
		return nil
	}

	if _, err := c.history.Remove(p.ID); err != nil {
		log.Error(err)
		return ui.Fail(err)
	}
	c.refresh()
	return ui.Notify(fmt.Sprintf("%s rimosso dalla cronologia", p.Title))
}

// ClearHistory forgets everything watched. Only the history page offers it.
func (c *Controller) ClearHistory() tea.Cmd {
	if c.session.Page != catalog.PageHistory || c.history.Len() == 0 {
		return nil
	}

	if err := c.history.Clear(); err != nil {
		log.Error(err)
		return ui.Fail(err)
	}
	c.refresh()
	return ui.Notify("Cronologia cancellata")
}

var errNoPoster = errors.New("nessun poster")

func (c *Controller) openPoster() tea.Cmd {
	p := c.session.Selected
	if p == nil {
		if focused, ok := c.Focused(); ok {
			p = &focused
		}
	}
	if p == nil {
		return nil
	}

	if p.Poster == "" {
		return ui.Fail(errNoPoster)
	}
	if err := c.Open(p.Poster); err != nil {
		log.Warnf("nav: open poster %s: %s", p.Poster, err)
		return ui.Fail(err)
	}
	return nil
}
