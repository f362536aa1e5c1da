package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/nav"
	"github.com/mydrama-tv/mydrama/network"
	"github.com/mydrama-tv/mydrama/player"
	"github.com/mydrama-tv/mydrama/util"
	"github.com/samber/mo"
)

type catalogLoadedMsg struct {
	projects []catalog.Project
	err      error
}

type mediaEventMsg struct {
	event player.Event
}

// releaseMsg checks whether a held Enter has been let go.
type releaseMsg struct {
	token int
}

func (b *statefulBubble) loadCatalog() tea.Cmd {
	client, url, ttl := b.client, b.catalogURL, b.offlineTTL
	if client == nil {
		client = network.NewClient(0, 20*time.Second)
	}

	return func() tea.Msg {
		log.Info("loading catalog from " + url)
		var (
			projects []catalog.Project
			err      error
		)
		if ttl > 0 {
			projects, err = catalog.FetchCached(context.Background(), client, url, ttl)
		} else {
			projects, err = catalog.Fetch(context.Background(), client, url)
		}
		if err != nil {
			log.Error(err)
		} else {
			log.Infof("catalog: %s", util.Quantify(len(projects), "project", "projects"))
		}
		return catalogLoadedMsg{projects: projects, err: err}
	}
}

func (b *statefulBubble) waitForMediaEvent() tea.Cmd {
	if b.media == nil {
		return nil
	}

	events := b.media.Events()
	if events == nil {
		return nil
	}

	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return mediaEventMsg{event: ev}
	}
}

func (b *statefulBubble) releaseAfter(token int) tea.Cmd {
	return tea.Tick(b.repeat.Gap, func(time.Time) tea.Msg {
		return releaseMsg{token: token}
	})
}

// pressEnter folds terminal auto-repeat into one press and one release.
func (b *statefulBubble) pressEnter(at time.Time) tea.Cmd {
	down, token := b.repeat.Press(at)

	var cmd tea.Cmd
	if down {
		cmd = b.key(nav.KeyEvent{Key: nav.KeyEnter, Kind: nav.Down, At: at})
	}
	return tea.Batch(cmd, b.releaseAfter(token))
}

// key hands ev to the navigation controller and refreshes what depends on it.
func (b *statefulBubble) key(ev nav.KeyEvent) tea.Cmd {
	wasPlaying := b.nav.Player().Active()

	cmd := b.nav.Key(ev)

	if !wasPlaying && b.nav.Player().Active() {
		b.gridScroll.Reset()
		b.detailScroll.Reset()
	}

	b.syncSearch()
	b.syncState()
	return cmd
}

func (b *statefulBubble) syncSearch() {
	s := b.nav.Session()

	if b.inputC.Value() != s.Search {
		b.inputC.SetValue(s.Search)
		b.inputC.CursorEnd()
	}

	b.searchSuggestion = mo.None[string]()
	if s.Typing() && b.queries != nil {
		b.searchSuggestion = b.queries.Suggest(s.Search)
	}
}
