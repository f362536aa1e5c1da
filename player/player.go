// Package player drives the external media element. The main implementation
// is mpv controlled over its JSON IPC socket.
package player

import "errors"

// ErrClosed is returned by calls made after Close.
var ErrClosed = errors.New("player closed")

// Media is a playable surface. Calls never block on the player: they are
// queued and applied in order.
type Media interface {
	// Load replaces the current file, starting the player if needed.
	Load(url, title string) error
	SetPause(paused bool) error
	SetMute(muted bool) error
	// Seek moves to an absolute position in seconds.
	Seek(seconds float64) error
	// Fullscreen is a best-effort request.
	Fullscreen() error
	// Stop unloads the current file.
	Stop() error
	// Events delivers what the element reports, in order.
	Events() <-chan Event
	Close() error
}

// EventKind tells what happened on the media element.
type EventKind int

const (
	// TimeUpdate carries the new position in Time.
	TimeUpdate EventKind = iota
	// LoadedMetadata carries the duration of the new file.
	LoadedMetadata
	// Ended fires when a file plays to the end.
	Ended
	// Error fires when a file could not be played.
	Error
	// PauseChanged reports a pause toggled from the player window.
	PauseChanged
	// Closed fires when the player process goes away.
	Closed
)

func (k EventKind) String() string {
	switch k {
	case TimeUpdate:
		return "time-update"
	case LoadedMetadata:
		return "loaded-metadata"
	case Ended:
		return "ended"
	case Error:
		return "error"
	case PauseChanged:
		return "pause-changed"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind     EventKind
	Time     float64
	Duration float64
	Paused   bool
	Err      error
}
