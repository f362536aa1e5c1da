package playback

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/player"
	. "github.com/smartystreets/goconvey/convey"
)

type call struct {
	name string
	arg  any
}

type fakeMedia struct {
	calls  []call
	failOn string
}

func (f *fakeMedia) do(name string, arg any) error {
	if name == f.failOn {
		return errors.New("boom")
	}
	f.calls = append(f.calls, call{name, arg})
	return nil
}

func (f *fakeMedia) Load(url, _ string) error { return f.do("load", url) }
func (f *fakeMedia) SetPause(p bool) error { return f.do("pause", p) }
func (f *fakeMedia) SetMute(m bool) error { return f.do("mute", m) }
func (f *fakeMedia) Seek(s float64) error { return f.do("seek", s) }
func (f *fakeMedia) Fullscreen() error { return f.do("fullscreen", nil) }
func (f *fakeMedia) Stop() error { return f.do("stop", nil) }
func (f *fakeMedia) Events() <-chan player.Event { return nil }
func (f *fakeMedia) Close() error { return nil }

func (f *fakeMedia) last() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

type recorded struct {
	id      string
	episode int
}

type fakeHistory struct {
	entries []recorded
}

func (h *fakeHistory) Record(id string, episode int) error {
	h.entries = append(h.entries, recorded{id, episode})
	return nil
}

func series(n int) catalog.Project {
	p := catalog.Project{ID: "s1", Title: "Series"}
	p.Video.IsSeries = true
	for i := 0; i < n; i++ {
		p.Video.Episodes = append(p.Video.Episodes, catalog.Episode{
			Title: fmt.Sprintf("Ep %d", i+1),
			URL:   fmt.Sprintf("https://cdn.example/s1/%d.mp4", i+1),
		})
	}
	return p
}

func movie() catalog.Project {
	return catalog.Project{ID: "m1", Title: "Movie", Video: catalog.VideoData{URL: "https://cdn.example/m1.mp4"}}
}

func TestClock(t *testing.T) {
	Convey("Clock", t, func() {
		var c Clock
		So(c.Remaining(), ShouldEqual, 0)
		So(c.Fraction(), ShouldEqual, 0)

		c.SetDuration(100)
		c.Update(25)
		So(c.Remaining(), ShouldEqual, 75)
		So(c.Fraction(), ShouldEqual, 0.25)

		c.Update(math.NaN())
		c.Update(-1)
		So(c.Current(), ShouldEqual, 25)

		So(c.Position(0.5), ShouldEqual, 50)
		So(c.Position(1.7), ShouldEqual, 100)
		So(c.Position(-3), ShouldEqual, 0)
		So(c.Position(math.NaN()), ShouldEqual, 0)

		c.Reset()
		So(c.Duration(), ShouldEqual, 0)
	})
}

func TestController(t *testing.T) {
	Convey("Given a controller with a bound media element", t, func() {
		media := &fakeMedia{}
		hist := &fakeHistory{}
		c := New(hist, Options{ControlsTimeout: time.Millisecond, PromptSeconds: 20})
		c.Bind(media)

		So(c.Active(), ShouldBeFalse)

		Convey("Start loads the episode and records history", func() {
			So(c.Start(series(5), 2), ShouldNotBeNil)

			s := c.State()
			So(s.Active(), ShouldBeTrue)
			So(s.Episode, ShouldEqual, 2)
			So(s.IsPlaying, ShouldBeTrue)
			So(s.ControlsVisible, ShouldBeTrue)
			So(media.calls[0], ShouldResemble, call{"load", "https://cdn.example/s1/3.mp4"})
			So(hist.entries, ShouldResemble, []recorded{{"s1", 2}})
		})

		Convey("A failing fullscreen request is ignored", func() {
			media.failOn = "fullscreen"
			c.Start(movie(), 0)
			So(c.State().Active(), ShouldBeTrue)
			So(c.State().Err, ShouldBeNil)
		})

		Convey("A muted session mutes the next episode too", func() {
			c.Start(series(2), 0)
			c.ToggleMute()
			So(c.State().Muted, ShouldBeTrue)

			c.Start(series(2), 1)
			So(media.last(), ShouldResemble, call{"mute", true})

			Convey("and a failing mute request does not stop playback", func() {
				media.failOn = "mute"
				c.Start(series(2), 0)
				So(c.State().Active(), ShouldBeTrue)
				So(c.State().Err, ShouldBeNil)
				So(c.State().Muted, ShouldBeTrue)
			})
		})

		Convey("An out of range episode starts at the first one", func() {
			c.Start(series(2), 9)
			So(c.State().Episode, ShouldEqual, 0)
		})

		Convey("The next episode prompt", func() {
			c.Start(series(3), 0)
			c.OnLoadedMetadata(1200)

			c.OnTimeUpdate(600)
			So(c.State().ShowNextPrompt, ShouldBeFalse)

			c.OnTimeUpdate(1180)
			So(c.State().ShowNextPrompt, ShouldBeTrue)

			Convey("stays up on later updates", func() {
				for _, tm := range []float64{1185, 1190, 1199.5, 1200} {
					c.OnTimeUpdate(tm)
					So(c.State().ShowNextPrompt, ShouldBeTrue)
				}
				// a seek back does not clear it either
				c.OnTimeUpdate(10)
				So(c.State().ShowNextPrompt, ShouldBeTrue)
			})

			Convey("clears on next", func() {
				So(c.Next(), ShouldNotBeNil)
				So(c.State().ShowNextPrompt, ShouldBeFalse)
				So(c.State().Episode, ShouldEqual, 1)
				So(hist.entries[len(hist.entries)-1], ShouldResemble, recorded{"s1", 1})
			})

			Convey("clears on stop", func() {
				c.Stop()
				So(c.State().ShowNextPrompt, ShouldBeFalse)
			})
		})

		Convey("No prompt on the last episode", func() {
			c.Start(series(2), 1)
			c.OnLoadedMetadata(100)
			c.OnTimeUpdate(95)
			So(c.State().ShowNextPrompt, ShouldBeFalse)
		})

		Convey("No prompt before the duration is known", func() {
			c.Start(series(2), 0)
			c.OnTimeUpdate(5)
			So(c.State().ShowNextPrompt, ShouldBeFalse)
		})

		Convey("Next and prev respect the episode bounds", func() {
			c.Start(series(2), 0)
			So(c.Prev(), ShouldBeNil)
			So(c.State().Episode, ShouldEqual, 0)

			c.Next()
			So(c.State().Episode, ShouldEqual, 1)
			So(c.Next(), ShouldBeNil)
			So(c.State().Episode, ShouldEqual, 1)

			c.Prev()
			So(c.State().Episode, ShouldEqual, 0)
			So(len(hist.entries), ShouldEqual, 3)
		})

		Convey("Play and pause reach the media element", func() {
			c.Start(movie(), 0)
			c.TogglePlayPause()
			So(c.State().IsPlaying, ShouldBeFalse)
			So(media.last(), ShouldResemble, call{"pause", true})

			c.TogglePlayPause()
			So(c.State().IsPlaying, ShouldBeTrue)
			So(media.last(), ShouldResemble, call{"pause", false})
		})

		Convey("Mute changes state and element together", func() {
			c.Start(movie(), 0)
			c.ToggleMute()
			So(c.State().Muted, ShouldBeTrue)
			So(media.last(), ShouldResemble, call{"mute", true})

			media.failOn = "mute"
			c.ToggleMute()
			So(c.State().Muted, ShouldBeTrue)
		})

		Convey("Seek clamps the fraction", func() {
			c.Start(movie(), 0)
			c.OnLoadedMetadata(200)

			c.Seek(0.5)
			So(media.last(), ShouldResemble, call{"seek", 100.0})
			So(c.State().CurrentTime, ShouldEqual, 100)

			c.Seek(1.5)
			So(media.last(), ShouldResemble, call{"seek", 200.0})

			c.Seek(-0.2)
			So(media.last(), ShouldResemble, call{"seek", 0.0})

			c.Seek(math.NaN())
			So(media.last(), ShouldResemble, call{"seek", 0.0})

			c.OnTimeUpdate(50)
			c.SeekBy(50)
			So(media.last(), ShouldResemble, call{"seek", 100.0})

			c.SeekAt(30, 40)
			So(media.last(), ShouldResemble, call{"seek", 150.0})
		})

		Convey("Stop resets for the next session", func() {
			c.Start(movie(), 0)
			c.TogglePlayPause()
			c.Stop()

			s := c.State()
			So(s.Active(), ShouldBeFalse)
			So(s.IsPlaying, ShouldBeTrue)
			So(s.Episode, ShouldEqual, 0)
			So(media.last(), ShouldResemble, call{"stop", nil})
			So(c.Interact(), ShouldBeNil)
		})

		Convey("Ended shows the controls and pauses", func() {
			c.Start(series(2), 0)
			So(c.OnEnded(), ShouldBeNil)
			So(c.State().IsPlaying, ShouldBeFalse)
			So(c.State().ControlsVisible, ShouldBeTrue)
			So(c.State().Episode, ShouldEqual, 0)
		})

		Convey("Ended moves on with autoplay", func() {
			c.opts.AutoplayNext = true
			c.Start(series(2), 0)
			So(c.OnEnded(), ShouldNotBeNil)
			So(c.State().Episode, ShouldEqual, 1)
		})

		Convey("Media events are dispatched", func() {
			c.Start(series(2), 0)
			c.OnEvent(player.Event{Kind: player.LoadedMetadata, Duration: 60})
			c.OnEvent(player.Event{Kind: player.TimeUpdate, Time: 45})
			So(c.State().ShowNextPrompt, ShouldBeTrue)

			c.OnEvent(player.Event{Kind: player.PauseChanged, Paused: true})
			So(c.State().IsPlaying, ShouldBeFalse)

			c.OnEvent(player.Event{Kind: player.Error, Err: errors.New("404")})
			So(c.State().Err, ShouldNotBeNil)

			c.OnEvent(player.Event{Kind: player.Closed})
			So(c.State().Active(), ShouldBeFalse)
		})

		Convey("Events outside playback are ignored", func() {
			c.OnTimeUpdate(10)
			c.OnLoadedMetadata(20)
			So(c.OnEnded(), ShouldBeNil)
			So(c.State().Duration, ShouldEqual, 0)
		})
	})

	Convey("Given no media element", t, func() {
		hist := &fakeHistory{}
		c := New(hist, DefaultOptions())
		c.Start(movie(), 0)

		Convey("Media operations are no-ops", func() {
			c.OnLoadedMetadata(100)
			c.TogglePlayPause()
			c.ToggleMute()
			c.Seek(0.5)

			s := c.State()
			So(s.IsPlaying, ShouldBeTrue)
			So(s.Muted, ShouldBeFalse)
			So(s.CurrentTime, ShouldEqual, 0)
			So(len(hist.entries), ShouldEqual, 1)
		})

		Convey("Stop still leaves playback", func() {
			c.Stop()
			So(c.Active(), ShouldBeFalse)
		})
	})

	Convey("Given a media element that gets unbound", t, func() {
		media := &fakeMedia{}
		c := New(nil, DefaultOptions())
		c.Bind(media)
		c.Start(movie(), 0)
		before := len(media.calls)

		c.Unbind()
		c.ToggleMute()
		c.TogglePlayPause()

		So(len(media.calls), ShouldEqual, before)
		So(c.State().Muted, ShouldBeFalse)
	})
}

func expire(cmd tea.Cmd) ControlsExpiredMsg {
	return cmd().(ControlsExpiredMsg)
}

func TestControlsTimer(t *testing.T) {
	Convey("Given playback with a short controls timeout", t, func() {
		c := New(nil, Options{ControlsTimeout: time.Millisecond})
		c.Bind(&fakeMedia{})
		first := c.Start(movie(), 0)

		Convey("The countdown hides the controls", func() {
			c.ControlsExpired(expire(first))
			So(c.State().ControlsVisible, ShouldBeFalse)

			Convey("and an interaction brings them back", func() {
				cmd := c.Interact()
				So(c.State().ControlsVisible, ShouldBeTrue)
				c.ControlsExpired(expire(cmd))
				So(c.State().ControlsVisible, ShouldBeFalse)
			})
		})

		Convey("A superseded countdown is ignored", func() {
			second := c.Interact()
			c.ControlsExpired(expire(first))
			So(c.State().ControlsVisible, ShouldBeTrue)

			c.ControlsExpired(expire(second))
			So(c.State().ControlsVisible, ShouldBeFalse)
		})

		Convey("A countdown from a stopped session is ignored", func() {
			c.Stop()
			c.Start(movie(), 0)
			c.ControlsExpired(expire(first))
			So(c.State().ControlsVisible, ShouldBeTrue)
		})

		Convey("Paused playback keeps the controls", func() {
			c.TogglePlayPause()
			c.ControlsExpired(expire(first))
			So(c.State().ControlsVisible, ShouldBeTrue)
		})

		Convey("The same expiry delivered twice hides once", func() {
			msg := expire(first)
			c.ControlsExpired(msg)
			c.Interact()
			c.ControlsExpired(msg)
			So(c.State().ControlsVisible, ShouldBeTrue)
		})
	})
}
