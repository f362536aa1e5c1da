package playback

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/player"
)

// Recorder stores what was watched.
type Recorder interface {
	Record(projectID string, episode int) error
}

type Options struct {
	// ControlsTimeout hides the controls after this much inactivity.
	ControlsTimeout time.Duration
	// PromptSeconds is the remaining time at which the next episode prompt appears.
	PromptSeconds float64
	// AutoplayNext starts the next episode when one ends.
	AutoplayNext bool
	// Fullscreen asks the media element to go fullscreen on start.
	Fullscreen bool
}

func DefaultOptions() Options {
	return Options{
		ControlsTimeout: 3 * time.Second,
		PromptSeconds:   20,
		Fullscreen:      true,
	}
}

// ControlsExpiredMsg is delivered when a controls countdown elapses.
type ControlsExpiredMsg struct {
	seq uint64
}

// Controller owns playback state. It is not safe for concurrent use: every
// call is expected from the Bubble Tea update loop.
type Controller struct {
	opts    Options
	media   player.Media
	history Recorder
	clock   Clock

	project        *catalog.Project
	episode        int
	isPlaying      bool
	muted          bool
	showNextPrompt bool
	controls       bool
	err            error

	// controls countdown; a tick is current only while its seq matches
	seq     uint64
	pending bool
}

func New(history Recorder, opts Options) *Controller {
	if opts.ControlsTimeout <= 0 {
		opts.ControlsTimeout = DefaultOptions().ControlsTimeout
	}
	if opts.PromptSeconds <= 0 {
		opts.PromptSeconds = DefaultOptions().PromptSeconds
	}

	return &Controller{
		opts:      opts,
		history:   history,
		isPlaying: true,
		controls:  true,
	}
}

// Bind attaches the media element. A nil media unbinds it.
func (c *Controller) Bind(media player.Media) {
	c.media = media
}

// Unbind detaches the media element. Media calls become no-ops.
func (c *Controller) Unbind() {
	c.media = nil
}

func (c *Controller) State() State {
	return State{
		Project:         c.project,
		Episode:         c.episode,
		IsPlaying:       c.isPlaying,
		Muted:           c.muted,
		CurrentTime:     c.clock.Current(),
		Duration:        c.clock.Duration(),
		ShowNextPrompt:  c.showNextPrompt,
		ControlsVisible: c.controls,
		Err:             c.err,
	}
}

func (c *Controller) Active() bool {
	return c.project != nil
}

// Start enters playback of project at episode and returns the controls countdown.
func (c *Controller) Start(project catalog.Project, episode int) tea.Cmd {
	if episode < 0 || episode >= project.EpisodeCount() {
		episode = 0
	}

	c.project = &project
	c.episode = episode
	c.showNextPrompt = false
	c.isPlaying = true
	c.err = nil
	c.clock.Reset()

	if c.history != nil {
		if err := c.history.Record(project.ID, episode); err != nil {
			log.Warnf("playback: record history: %s", err)
		}
	}

	if c.media != nil {
		url, _ := project.EpisodeURL(episode)
		if err := c.media.Load(url, mediaTitle(&project, episode)); err != nil {
			log.Errorf("playback: load %s: %s", url, err)
			c.err = err
		}
		if c.opts.Fullscreen {
			if err := c.media.Fullscreen(); err != nil {
				log.Debugf("playback: fullscreen: %s", err)
			}
		}
		// a freshly spawned mpv starts unmuted
		if c.muted {
			if err := c.media.SetMute(true); err != nil {
				log.Debugf("playback: mute: %s", err)
			}
		}
	}

	log.WithField("project", project.ID).Infof("playback: start episode %d", episode)
	return c.Interact()
}

func mediaTitle(p *catalog.Project, episode int) string {
	if !p.Video.IsSeries {
		return p.Title
	}
	return p.Title + " - " + p.EpisodeTitle(episode)
}

// TogglePlayPause flips pause on the media element.
func (c *Controller) TogglePlayPause() {
	if c.project == nil || c.media == nil {
		return
	}

	if err := c.media.SetPause(c.isPlaying); err != nil {
		log.Warnf("playback: pause: %s", err)
		return
	}
	c.isPlaying = !c.isPlaying
}

// Seek moves to fraction of the duration. The fraction is clamped to [0, 1].
func (c *Controller) Seek(fraction float64) {
	if c.project == nil || c.media == nil || c.clock.Duration() <= 0 {
		return
	}

	pos := c.clock.Position(fraction)
	if err := c.media.Seek(pos); err != nil {
		log.Warnf("playback: seek: %s", err)
		return
	}
	c.clock.Update(pos)
}

// SeekBy moves by delta seconds, expressed as a track fraction.
func (c *Controller) SeekBy(delta float64) {
	d := c.clock.Duration()
	if d <= 0 {
		return
	}
	c.Seek((c.clock.Current() + delta) / d)
}

// ToggleMute changes state and element together, or not at all.
func (c *Controller) ToggleMute() {
	if c.project == nil || c.media == nil {
		return
	}

	if err := c.media.SetMute(!c.muted); err != nil {
		log.Warnf("playback: mute: %s", err)
		return
	}
	c.muted = !c.muted
}

// Next starts the following episode, if any.
func (c *Controller) Next() tea.Cmd {
	if !c.State().HasNext() {
		return nil
	}
	return c.Start(*c.project, c.episode+1)
}

// Prev starts the previous episode, if any.
func (c *Controller) Prev() tea.Cmd {
	if !c.State().HasPrev() {
		return nil
	}
	return c.Start(*c.project, c.episode-1)
}

// Stop leaves playback.
func (c *Controller) Stop() {
	if c.project == nil {
		return
	}

	if c.media != nil {
		if err := c.media.Stop(); err != nil {
			log.Debugf("playback: stop: %s", err)
		}
	}

	log.WithField("project", c.project.ID).Info("playback: stop")

	c.project = nil
	c.episode = 0
	c.isPlaying = true
	c.showNextPrompt = false
	c.controls = true
	c.err = nil
	c.clock.Reset()
	c.cancelControls()
}

// Interact shows the controls and restarts the hide countdown.
func (c *Controller) Interact() tea.Cmd {
	if c.project == nil {
		return nil
	}

	c.controls = true
	c.cancelControls()
	c.pending = true

	seq := c.seq
	return tea.Tick(c.opts.ControlsTimeout, func(time.Time) tea.Msg {
		return ControlsExpiredMsg{seq: seq}
	})
}

func (c *Controller) cancelControls() {
	c.seq++
	c.pending = false
}

// ControlsExpired hides the controls if msg belongs to the live countdown.
// Paused playback keeps them on screen.
func (c *Controller) ControlsExpired(msg ControlsExpiredMsg) {
	if !c.pending || msg.seq != c.seq {
		return
	}
	c.pending = false

	if c.project != nil && c.isPlaying {
		c.controls = false
	}
}

// OnTimeUpdate raises the next episode prompt near the end. Once raised it
// stays up until the episode changes or playback stops.
func (c *Controller) OnTimeUpdate(current float64) {
	if c.project == nil {
		return
	}

	c.clock.Update(current)

	left := c.clock.Remaining()
	if left > 0 && left <= c.opts.PromptSeconds && c.State().HasNext() {
		c.showNextPrompt = true
	}
}

func (c *Controller) OnLoadedMetadata(duration float64) {
	if c.project == nil {
		return
	}
	c.clock.SetDuration(duration)
}

// OnEnded pauses on the last frame with controls up, or moves on when
// autoplay is enabled.
func (c *Controller) OnEnded() tea.Cmd {
	if c.project == nil {
		return nil
	}

	if c.opts.AutoplayNext && c.State().HasNext() {
		return c.Next()
	}

	c.isPlaying = false
	c.controls = true
	c.cancelControls()
	return nil
}

func (c *Controller) OnError(err error) {
	if c.project == nil {
		return
	}

	log.WithField("project", c.project.ID).Errorf("playback: media error: %s", err)
	c.err = err
	c.isPlaying = false
	c.controls = true
	c.cancelControls()
}

// OnEvent dispatches a media element event.
func (c *Controller) OnEvent(ev player.Event) tea.Cmd {
	switch ev.Kind {
	case player.TimeUpdate:
		c.OnTimeUpdate(ev.Time)
	case player.LoadedMetadata:
		c.OnLoadedMetadata(ev.Duration)
	case player.Ended:
		return c.OnEnded()
	case player.Error:
		c.OnError(ev.Err)
	case player.PauseChanged:
		if c.project != nil {
			c.isPlaying = !ev.Paused
		}
	case player.Closed:
		c.Stop()
	}
	return nil
}

func fractionOf(x, width float64) float64 {
	if width <= 0 || math.IsNaN(x) {
		return 0
	}
	return x / width
}

// SeekAt seeks to column x of a track that is width cells wide.
func (c *Controller) SeekAt(x, width int) {
	c.Seek(fractionOf(float64(x), float64(width)))
}
