package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/mydrama-tv/mydrama/log"
)

// observed properties, by observe_property id
var observed = []string{"time-pos", "duration", "pause"}

type ipcEvent struct {
	Event     string          `json:"event"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	Reason    string          `json:"reason"`
	FileError string          `json:"file_error"`
}

// EventListener holds a persistent IPC connection on which mpv pushes
// property changes and playback events.
type EventListener struct {
	socketPath string
	emit       func(Event)

	mu        sync.Mutex
	conn      net.Conn
	stopCh    chan struct{}
	listening bool
}

func NewEventListener(socketPath string, emit func(Event)) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		emit:       emit,
		stopCh:     make(chan struct{}),
	}
}

// Start subscribes to the observed properties and starts the read loop.
// Subscriptions are per connection, so they go over the listening one.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	for i, name := range observed {
		payload, _ := json.Marshal(ipcCommand{Command: []any{"observe_property", i + 1, name}})
		if _, err := conn.Write(append(payload, '\n')); err != nil {
			_ = conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	el.listening = true
	go el.readLoop(conn)

	log.Infof("mpv: listening for events on %s", el.socketPath)
	return nil
}

func (el *EventListener) Stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.listening {
		return
	}

	close(el.stopCh)
	_ = el.conn.Close()
	el.listening = false
}

func (el *EventListener) readLoop(conn net.Conn) {
	defer func() {
		el.mu.Lock()
		el.listening = false
		el.mu.Unlock()
	}()

	reader := bufio.NewReader(conn)
	for {
		select {
		case <-el.stopCh:
			return
		default:
		}

		if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
			return
		}

		line, err := reader.ReadBytes('\n')
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			log.Debugf("mpv: event stream ended: %s", err)
			return
		}

		if ev, ok := translate(line); ok {
			el.emit(ev)
		}
	}
}

// translate maps one line of mpv output to a media event.
func translate(line []byte) (Event, bool) {
	var raw ipcEvent
	if err := json.Unmarshal(line, &raw); err != nil || raw.Event == "" {
		return Event{}, false
	}

	switch raw.Event {
	case "property-change":
		switch raw.Name {
		case "time-pos":
			var t float64
			if json.Unmarshal(raw.Data, &t) != nil {
				return Event{}, false
			}
			return Event{Kind: TimeUpdate, Time: t}, true
		case "duration":
			var d float64
			if json.Unmarshal(raw.Data, &d) != nil || d <= 0 {
				return Event{}, false
			}
			return Event{Kind: LoadedMetadata, Duration: d}, true
		case "pause":
			var p bool
			if json.Unmarshal(raw.Data, &p) != nil {
				return Event{}, false
			}
			return Event{Kind: PauseChanged, Paused: p}, true
		}
	case "end-file":
		switch raw.Reason {
		case "eof":
			return Event{Kind: Ended}, true
		case "error":
			msg := raw.FileError
			if msg == "" {
				msg = "unknown error"
			}
			return Event{Kind: Error, Err: errors.New(msg)}, true
		}
	}

	return Event{}, false
}
