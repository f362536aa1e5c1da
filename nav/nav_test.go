package nav

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/favorites"
	"github.com/mydrama-tv/mydrama/focus"
	"github.com/mydrama-tv/mydrama/history"
	"github.com/mydrama-tv/mydrama/playback"
	"github.com/mydrama-tv/mydrama/player"
	"github.com/mydrama-tv/mydrama/store"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

type stubMedia struct{ paused bool }

func (m *stubMedia) Load(string, string) error { return nil }

func (m *stubMedia) SetPause(paused bool) error {
	m.paused = paused
	return nil
}

func (m *stubMedia) SetMute(bool) error { return nil }
func (m *stubMedia) Seek(float64) error { return nil }
func (m *stubMedia) Fullscreen() error { return nil }
func (m *stubMedia) Stop() error { return nil }
func (m *stubMedia) Events() <-chan player.Event { return nil }
func (m *stubMedia) Close() error { return nil }

type stubQueries []string

func (q *stubQueries) Remember(s string, _ int) error {
	*q = append(*q, s)
	return nil
}

var t0 = time.UnixMilli(1_700_000_000_000)

func tap(c *Controller, key string) tea.Cmd {
	return c.Key(KeyEvent{Key: key, Kind: Down, At: t0})
}

func enter(c *Controller, hold time.Duration) tea.Cmd {
	c.Key(KeyEvent{Key: KeyEnter, Kind: Down, At: t0})
	return c.Key(KeyEvent{Key: KeyEnter, Kind: Up, At: t0.Add(hold)})
}

func fixture() []catalog.Project {
	film := func(id, sub string) catalog.Project {
		return catalog.Project{
			ID:          id,
			Title:       "Film " + id,
			Poster:      "https://img.example/" + id + ".jpg",
			Category:    catalog.CategoryFilm,
			SubCategory: sub,
			Video:       catalog.VideoData{URL: "https://cdn.example/" + id + ".mp4"},
		}
	}

	projects := []catalog.Project{film("m1", "Corea"), film("m2", "Corea"), film("m3", "Cina"), film("m4", "Cina"), film("m5", "Giappone")}
	projects[0].Genres = []string{"Romance", "On Air"}
	projects[0].Actors = []string{"Lee Min-ho"}

	s := catalog.Project{ID: "s1", Title: "Serie s1", Category: catalog.CategoryDrama, SubCategory: "Corea"}
	s.Video.IsSeries = true
	for i := 0; i < 5; i++ {
		s.Video.Episodes = append(s.Video.Episodes, catalog.Episode{URL: fmt.Sprintf("https://cdn.example/s1/%d.mp4", i)})
	}
	return append(projects, s)
}

func ids(projects []catalog.Project) []string {
	return lo.Map(projects, func(p catalog.Project, _ int) string { return p.ID })
}

func newController(t *testing.T) (*Controller, *stubMedia) {
	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	hist := history.New(s, 20)
	media := &stubMedia{}
	pc := playback.New(hist, playback.DefaultOptions())
	pc.Bind(media)

	c := New(favorites.New(s), hist, pc, DefaultOptions())
	c.SetCatalog(fixture())
	c.Resize(120)
	return c, media
}

func TestBrowsing(t *testing.T) {
	Convey("Given the home page with four cards per row", t, func() {
		c, _ := newController(t)

		So(ids(c.View()), ShouldResemble, []string{"m1", "m2", "m3", "m4", "m5", "s1"})
		So(c.Session().Focus.Focus, ShouldResemble, focus.Content{Index: 0})
		So(c.Layout().ItemsPerRow, ShouldEqual, 4)

		Convey("A short Enter opens the focused card", func() {
			tap(c, KeyRight)
			enter(c, 100*time.Millisecond)

			So(c.Session().Selected.ID, ShouldEqual, "m2")
			So(c.Session().Focus.Focus, ShouldResemble, focus.Detail{Sub: focus.Buttons})

			Convey("and Escape restores the card", func() {
				tap(c, KeyEscape)
				So(c.Session().Selected, ShouldBeNil)
				So(c.Session().Focus.Focus, ShouldResemble, focus.Content{Index: 1})
			})
		})

		Convey("A long Enter toggles the favorite in place", func() {
			cmd := enter(c, 2*time.Second)

			So(cmd, ShouldNotBeNil)
			So(c.Favorites().Has("m1"), ShouldBeTrue)
			So(c.Session().Selected, ShouldBeNil)

			enter(c, 2500*time.Millisecond)
			So(c.Favorites().Has("m1"), ShouldBeFalse)
		})

		Convey("Up from the first row reaches the menu", func() {
			tap(c, KeyUp)
			So(c.Session().Focus.Focus, ShouldResemble, focus.Menu{Index: 0})

			Convey("and Enter commits a page", func() {
				tap(c, KeyRight)
				tap(c, KeyRight)
				enter(c, 0)

				So(c.Session().Page, ShouldEqual, catalog.PageFavorites)
				So(c.View(), ShouldBeEmpty)
				So(c.Session().Focus.Focus, ShouldResemble, focus.Menu{Index: 2})
			})
		})

		Convey("Escape on another page goes home", func() {
			c.GoTo(catalog.PageFilm)
			So(c.View(), ShouldHaveLength, 5)

			tap(c, KeyEscape)
			So(c.Session().Page, ShouldEqual, catalog.PageHome)
		})

		Convey("c cycles the sub-category of a category page", func() {
			c.GoTo(catalog.PageFilm)

			tap(c, "c")
			So(c.Session().SubCategory, ShouldEqual, "Cina")
			So(ids(c.View()), ShouldResemble, []string{"m3", "m4"})

			tap(c, "c")
			So(c.Session().SubCategory, ShouldEqual, "Corea")

			c.GoTo(catalog.PageHome)
			tap(c, "c")
			So(c.Session().SubCategory, ShouldBeEmpty)
		})

		Convey("o opens the poster of the focused card", func() {
			var opened []string
			c.Open = func(url string) error {
				opened = append(opened, url)
				return nil
			}

			tap(c, "o")
			So(opened, ShouldResemble, []string{"https://img.example/m1.jpg"})
		})

		Convey("f toggles the favorite of the focused card", func() {
			tap(c, "f")
			So(c.Favorites().List(), ShouldResemble, []string{"m1"})
		})
	})
}

func TestCatalogArrival(t *testing.T) {
	Convey("Given a controller created before the catalog loads", t, func() {
		s, err := store.NewSQLite(":memory:")
		So(err, ShouldBeNil)
		defer s.Close()

		hist := history.New(s, 20)
		pc := playback.New(hist, playback.DefaultOptions())
		pc.Bind(&stubMedia{})
		c := New(favorites.New(s), hist, pc, DefaultOptions())
		c.GoTo(catalog.PageHome)

		So(c.View(), ShouldBeEmpty)
		So(c.Session().Focus.Focus, ShouldResemble, focus.Menu{Index: 0})

		Convey("The first card is focused once the catalog arrives", func() {
			c.SetCatalog(fixture())
			c.Resize(120)
			So(c.Session().Focus.Focus, ShouldResemble, focus.Content{Index: 0})

			Convey("and a short Enter opens it", func() {
				enter(c, 100*time.Millisecond)
				So(c.Session().Page, ShouldEqual, catalog.PageHome)
				So(c.Session().Selected, ShouldNotBeNil)
				So(c.Session().Selected.ID, ShouldEqual, "m1")
			})
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given the search page", t, func() {
		c, _ := newController(t)
		c.GoTo(catalog.PageSearch)

		So(c.Session().Typing(), ShouldBeTrue)
		So(c.View(), ShouldHaveLength, 6)

		Convey("Typing narrows the results", func() {
			for _, k := range []string{"L", "e", "e"} {
				tap(c, k)
			}
			So(c.Session().Search, ShouldEqual, "Lee")
			So(ids(c.View()), ShouldResemble, []string{"m1"})

			Convey("and Backspace deletes before backing out", func() {
				tap(c, KeyBackspace)
				So(c.Session().Search, ShouldEqual, "Le")

				tap(c, KeyBackspace)
				tap(c, KeyBackspace)
				So(c.Session().Search, ShouldBeEmpty)
				So(c.Session().Page, ShouldEqual, catalog.PageSearch)

				tap(c, KeyBackspace)
				So(c.Session().Page, ShouldEqual, catalog.PageHome)
			})
		})

		Convey("Shortcut letters are typed, not run", func() {
			tap(c, "c")
			tap(c, "x")
			So(c.Session().Search, ShouldEqual, "cx")
		})
	})

	Convey("Given the detail view of a film with genres and actors", t, func() {
		c, _ := newController(t)
		queries := &stubQueries{}
		c.Queries = queries

		enter(c, 0)
		So(c.Layout().Detail, ShouldResemble, focus.DetailFor(1, 1, false, 0))

		Convey("Activating a genre searches it", func() {
			tap(c, KeyUp)
			tap(c, KeyUp)
			So(c.Session().Focus.Focus, ShouldResemble, focus.Detail{Sub: focus.Genres})

			enter(c, 0)
			So(c.Session().Page, ShouldEqual, catalog.PageSearch)
			So(c.Session().Search, ShouldEqual, "Romance")
			So(c.Session().Selected, ShouldBeNil)
			So(c.Session().Focus.Focus, ShouldResemble, focus.Content{Index: 0})
			So(ids(c.View()), ShouldResemble, []string{"m1"})
			So(*queries, ShouldResemble, stubQueries{"Romance"})
		})

		Convey("Activating an actor searches them", func() {
			tap(c, KeyUp)
			enter(c, 0)
			So(c.Session().Search, ShouldEqual, "Lee Min-ho")
		})
	})
}

func TestHistoryPage(t *testing.T) {
	Convey("Given two watched films", t, func() {
		c, _ := newController(t)
		So(c.history.Record("m3", 0), ShouldBeNil)
		So(c.history.Record("m2", 0), ShouldBeNil)

		c.GoTo(catalog.PageHistory)
		So(ids(c.View()), ShouldResemble, []string{"m2", "m3"})

		Convey("x removes the focused entry", func() {
			tap(c, "x")
			So(ids(c.View()), ShouldResemble, []string{"m3"})
			So(c.history.Len(), ShouldEqual, 1)
		})

		Convey("X clears the history and focus leaves the empty grid", func() {
			tap(c, "X")
			So(c.View(), ShouldBeEmpty)
			So(c.Session().Focus.Focus, ShouldResemble, focus.Menu{Index: int(catalog.PageHistory)})
		})

		Convey("x does nothing elsewhere", func() {
			c.GoTo(catalog.PageHome)
			tap(c, "x")
			So(c.history.Len(), ShouldEqual, 2)
		})
	})
}

func TestPlaybackKeys(t *testing.T) {
	Convey("Given a film playing from its detail view", t, func() {
		c, media := newController(t)

		enter(c, 0)
		tap(c, KeyRight)
		cmd := enter(c, 0)

		So(cmd, ShouldNotBeNil)
		So(c.Player().Active(), ShouldBeTrue)
		So(c.Player().State().Project.ID, ShouldEqual, "m1")
		So(c.history.List()[0].ProjectID, ShouldEqual, "m1")

		Convey("Enter pauses and resumes", func() {
			So(tap(c, KeyEnter), ShouldNotBeNil)
			So(c.Player().State().IsPlaying, ShouldBeFalse)
			So(media.paused, ShouldBeTrue)

			c.Key(KeyEvent{Key: KeyEnter, Kind: Up, At: t0})
			So(c.Player().State().IsPlaying, ShouldBeFalse)

			tap(c, KeyEnter)
			So(c.Player().State().IsPlaying, ShouldBeTrue)
		})

		Convey("Arrows seek by the step", func() {
			c.Player().OnLoadedMetadata(100)
			c.Player().OnTimeUpdate(50)

			tap(c, KeyRight)
			So(c.Player().State().CurrentTime, ShouldAlmostEqual, 60, 1e-9)
			tap(c, KeyLeft)
			tap(c, KeyLeft)
			So(c.Player().State().CurrentTime, ShouldAlmostEqual, 40, 1e-9)
		})

		Convey("Escape returns to the detail view", func() {
			So(tap(c, KeyEscape), ShouldBeNil)
			So(c.Player().Active(), ShouldBeFalse)
			So(c.Session().Selected.ID, ShouldEqual, "m1")
			So(c.Session().Focus.Focus, ShouldResemble, focus.Detail{Sub: focus.Buttons, Index: 1})
		})

		Convey("Browsing keys do not reach the grid", func() {
			tap(c, "f")
			tap(c, KeyDown)
			So(c.Favorites().Len(), ShouldEqual, 0)
			So(c.Session().Focus.Focus, ShouldResemble, focus.Detail{Sub: focus.Buttons, Index: 1})
		})
	})

	Convey("Given the first episode of a series near its end", t, func() {
		c, _ := newController(t)

		tap(c, KeyDown)
		tap(c, KeyRight)
		enter(c, 0)
		So(c.Session().Selected.ID, ShouldEqual, "s1")

		tap(c, KeyDown)
		So(c.Session().Focus.Focus, ShouldResemble, focus.Detail{Sub: focus.Episodes})
		enter(c, 0)

		c.Player().OnLoadedMetadata(100)
		c.Player().OnTimeUpdate(85)
		So(c.Player().State().ShowNextPrompt, ShouldBeTrue)

		Convey("Enter starts the next episode", func() {
			tap(c, KeyEnter)
			So(c.Player().State().Episode, ShouldEqual, 1)
			So(c.Player().State().ShowNextPrompt, ShouldBeFalse)
			So(c.Player().State().IsPlaying, ShouldBeTrue)
		})

		Convey("p and n step through episodes", func() {
			tap(c, "n")
			tap(c, "n")
			So(c.Player().State().Episode, ShouldEqual, 2)
			tap(c, "p")
			So(c.Player().State().Episode, ShouldEqual, 1)
		})
	})
}

func TestCanonical(t *testing.T) {
	Convey("Browser key names map onto terminal ones", t, func() {
		So(Canonical("ArrowLeft"), ShouldEqual, KeyLeft)
		So(Canonical("Escape"), ShouldEqual, KeyEscape)
		So(Canonical("x"), ShouldEqual, "x")
	})

	Convey("Only single printable runes are typed", t, func() {
		So(printable("a"), ShouldBeTrue)
		So(printable("è"), ShouldBeTrue)
		So(printable("ctrl+c"), ShouldBeFalse)
		So(printable("\t"), ShouldBeFalse)
	})
}
