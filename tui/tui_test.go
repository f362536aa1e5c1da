package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/favorites"
	"github.com/mydrama-tv/mydrama/history"
	"github.com/mydrama-tv/mydrama/internal/ui"
	"github.com/mydrama-tv/mydrama/nav"
	"github.com/mydrama-tv/mydrama/playback"
	"github.com/mydrama-tv/mydrama/remote"
	"github.com/mydrama-tv/mydrama/store"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fixedSuggester string

func (f fixedSuggester) Suggest(string) mo.Option[string] {
	return mo.Some(string(f))
}

func projects() []catalog.Project {
	film := catalog.Project{
		ID:          "m1",
		Title:       "Film uno",
		Category:    catalog.CategoryFilm,
		SubCategory: "Corea",
		Genres:      []string{"Romance"},
		Description: "Una storia **d'amore**.",
		Video:       catalog.VideoData{URL: "https://cdn.example/m1.mp4"},
	}

	series := catalog.Project{ID: "s1", Title: "Serie due", Category: catalog.CategoryDrama}
	series.Video.IsSeries = true
	series.Video.Episodes = []catalog.Episode{
		{Title: "Inizio", URL: "https://cdn.example/s1/1.mp4"},
		{Title: "Fine", URL: "https://cdn.example/s1/2.mp4"},
	}

	return []catalog.Project{film, series}
}

func newTestBubble(t *testing.T, options *Options) *statefulBubble {
	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	hist := history.New(s, 20)
	playbackOptions := playback.DefaultOptions()
	playbackOptions.ControlsTimeout = time.Millisecond
	navC := nav.New(favorites.New(s), hist, playback.New(hist, playbackOptions), nav.DefaultOptions())

	b := newBubble(options, navC, nil)
	b.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return b
}

func load(b *statefulBubble) {
	b.Update(catalogLoadedMsg{projects: projects()})
}

func TestBubble(t *testing.T) {
	Convey("Given a freshly started interface", t, func() {
		b := newTestBubble(t, nil)

		So(b.state, ShouldEqual, loadingState)
		So(b.View(), ShouldContainSubstring, "Caricamento")

		Convey("A loaded catalog shows the home grid", func() {
			load(b)

			So(b.state, ShouldEqual, gridState)
			view := b.View()
			So(view, ShouldContainSubstring, "Film uno")
			So(view, ShouldContainSubstring, "Serie due")
			So(view, ShouldContainSubstring, "2 titoli")

			Convey("Enter opens the focused card once released", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyEnter})
				So(b.state, ShouldEqual, gridState)

				b.Update(releaseMsg{token: 1})
				So(b.state, ShouldEqual, detailState)

				view := b.View()
				So(view, ShouldContainSubstring, "Indietro")
				So(view, ShouldContainSubstring, "Romance")
				So(view, ShouldContainSubstring, "Guarda")

				Convey("and a stale release check changes nothing", func() {
					b.Update(releaseMsg{token: 1})
					So(b.state, ShouldEqual, detailState)
				})

				Convey("and watching switches to the player", func() {
					b.Update(tea.KeyMsg{Type: tea.KeyRight})
					b.Update(tea.KeyMsg{Type: tea.KeyEnter})
					b.Update(releaseMsg{token: 2})

					So(b.state, ShouldEqual, playerState)
					So(b.View(), ShouldContainSubstring, "In riproduzione")

					b.Update(tea.KeyMsg{Type: tea.KeyEsc})
					So(b.state, ShouldEqual, detailState)
				})

				Convey("and moving the pointer over the player shows the controls again", func() {
					b.Update(tea.KeyMsg{Type: tea.KeyRight})
					b.Update(tea.KeyMsg{Type: tea.KeyEnter})
					b.Update(releaseMsg{token: 2})
					So(b.state, ShouldEqual, playerState)

					player := b.nav.Player()
					b.Update(player.Interact()())
					So(player.State().ControlsVisible, ShouldBeFalse)

					_, cmd := b.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
					So(cmd, ShouldNotBeNil)
					So(player.State().ControlsVisible, ShouldBeTrue)

					b.Update(cmd())
					So(player.State().ControlsVisible, ShouldBeFalse)
				})
			})

			Convey("A long remote press adds a favorite and says so", func() {
				t0 := time.UnixMilli(1_700_000_000_000)
				b.Update(remote.KeyMsg{Event: nav.KeyEvent{Key: "Enter", Kind: nav.Down, At: t0}})
				_, cmd := b.Update(remote.KeyMsg{Event: nav.KeyEvent{Key: "Enter", Kind: nav.Up, At: t0.Add(2 * time.Second)}})

				So(cmd, ShouldNotBeNil)
				So(b.nav.Favorites().Has("m1"), ShouldBeTrue)

				msg, ok := cmd().(ui.NotifyMsg)
				So(ok, ShouldBeTrue)
				b.Update(msg)
				So(b.View(), ShouldContainSubstring, "aggiunto ai preferiti")
			})

			Convey("q quits outside the search box", func() {
				_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
				So(cmd, ShouldNotBeNil)
				So(cmd(), ShouldResemble, tea.Quit())
			})
		})

		Convey("A failed catalog offers a retry", func() {
			b.Update(catalogLoadedMsg{projects: []catalog.Project{}, err: errors.New("boom")})
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "boom")

			Convey("r loads again", func() {
				_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
				So(cmd, ShouldNotBeNil)
				So(b.state, ShouldEqual, loadingState)
			})

			Convey("esc continues with an empty catalog", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, gridState)
				So(b.View(), ShouldContainSubstring, "Nessun titolo")
			})
		})
	})

	Convey("Given the search page", t, func() {
		b := newTestBubble(t, &Options{Page: catalog.PageSearch})
		b.queries = fixedSuggester("serie due")
		load(b)

		So(b.state, ShouldEqual, searchState)

		Convey("Typing filters and q is just a letter", func() {
			for _, r := range "serq" {
				b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			}
			So(b.nav.Session().Search, ShouldEqual, "serq")
			So(b.inputC.Value(), ShouldEqual, "serq")
			So(b.View(), ShouldContainSubstring, "Nessun risultato")

			Convey("and tab accepts the suggestion", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyTab})
				So(b.nav.Session().Search, ShouldEqual, "serie due")
				So(b.nav.View(), ShouldHaveLength, 1)
			})
		})

		Convey("A near miss gets a did-you-mean", func() {
			for _, r := range "Film unp" {
				b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			}
			So(b.View(), ShouldContainSubstring, "Forse cercavi")
		})
	})
}

func TestFlow(t *testing.T) {
	Convey("Chips wrap at the width", t, func() {
		lines, lineOf := flow([]string{"aaaa", "bbbb", "cccc"}, 10)
		So(lines, ShouldResemble, []string{"aaaa bbbb", "cccc"})
		So(lineOf, ShouldResemble, []int{0, 0, 1})
	})

	Convey("Plain text is fitted to the card", t, func() {
		So(fit("Goblin", 8), ShouldEqual, "Goblin  ")
		So(fit("Crash Landing on You", 8), ShouldEqual, "Crash L…")
	})
}
