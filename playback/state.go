package playback

import "github.com/mydrama-tv/mydrama/catalog"

// State is a snapshot for rendering. Project is nil outside playback.
type State struct {
	Project         *catalog.Project
	Episode         int
	IsPlaying       bool
	Muted           bool
	CurrentTime     float64
	Duration        float64
	ShowNextPrompt  bool
	ControlsVisible bool
	// Err is the last error reported by the media element.
	Err error
}

// Active reports whether playback mode is on.
func (s State) Active() bool {
	return s.Project != nil
}

func (s State) HasNext() bool {
	return s.Project != nil && s.Episode < s.Project.EpisodeCount()-1
}

func (s State) HasPrev() bool {
	return s.Project != nil && s.Episode > 0
}

// Fraction is the played share in [0, 1].
func (s State) Fraction() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return min(max(s.CurrentTime/s.Duration, 0), 1)
}
