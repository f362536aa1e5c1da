// Package nav routes key input to browsing or playback.
package nav

import (
	"time"
	"unicode/utf8"
)

// Kind tells a key press from a release.
type Kind int

const (
	Down Kind = iota
	Up
)

func (k Kind) String() string {
	if k == Up {
		return "up"
	}
	return "down"
}

// Key names, as bubbletea spells them.
const (
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyEnter     = "enter"
	KeyEscape    = "esc"
	KeyBackspace = "backspace"
	KeySpace     = " "
)

// KeyEvent is a key going down or up at an instant.
type KeyEvent struct {
	Key  string
	Kind Kind
	At   time.Time
}

var aliases = map[string]string{
	"ArrowUp":    KeyUp,
	"ArrowDown":  KeyDown,
	"ArrowLeft":  KeyLeft,
	"ArrowRight": KeyRight,
	"Enter":      KeyEnter,
	"Escape":     KeyEscape,
	"Backspace":  KeyBackspace,
	"escape":     KeyEscape,
	"space":      KeySpace,
}

// Canonical maps browser style key names onto the names used here.
func Canonical(key string) string {
	if k, ok := aliases[key]; ok {
		return k
	}
	return key
}

func printable(key string) bool {
	r, size := utf8.DecodeRuneInString(key)
	return size == len(key) && r != utf8.RuneError && r >= ' ' && r != 0x7f
}
