package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/where"
)

const (
	socketWaitRetries = 20
	socketWaitDelay   = 150 * time.Millisecond
	queueSize         = 64
	eventsSize        = 256
)

// MPV is a Media backed by an mpv process.
type MPV struct {
	binary     string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	listener   *EventListener

	mu sync.Mutex // serializes IPC commands

	qmu    sync.Mutex
	queue  chan func() error
	closed bool

	events chan Event
	done   chan struct{}
}

// NewMPV returns an idle player; the process starts on the first Load.
func NewMPV(binary string) *MPV {
	if binary == "" {
		binary = "mpv"
	}

	m := &MPV{
		binary: binary,
		queue:  make(chan func() error, queueSize),
		events: make(chan Event, eventsSize),
		done:   make(chan struct{}),
	}
	go m.work()
	return m
}

func (m *MPV) work() {
	defer close(m.done)
	for job := range m.queue {
		if err := job(); err != nil {
			log.Warnf("mpv: %s", err)
		}
	}
}

// enqueue never blocks. A full queue drops the command.
func (m *MPV) enqueue(job func() error) error {
	m.qmu.Lock()
	defer m.qmu.Unlock()

	if m.closed {
		return ErrClosed
	}

	select {
	case m.queue <- job:
		return nil
	default:
		return fmt.Errorf("mpv: command queue full")
	}
}

func (m *MPV) emit(ev Event) {
	select {
	case m.events <- ev:
	default:
		log.Debugf("mpv: dropping %s event", ev.Kind)
	}
}

func (m *MPV) Events() <-chan Event {
	return m.events
}

func (m *MPV) running() bool {
	if m.cmd == nil || m.exited == nil {
		return false
	}
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

func (m *MPV) Load(rawURL, title string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}
	title = sanitizeTitle(title)

	return m.enqueue(func() error {
		if !m.running() {
			return m.start(target, title)
		}
		if _, err := m.sendCommand("set_property", "force-media-title", title); err != nil {
			return err
		}
		_, err := m.sendCommand("loadfile", target, "replace")
		return err
	})
}

func (m *MPV) start(target, title string) error {
	if m.socketPath == "" {
		random := make([]byte, 4)
		if _, err := rand.Read(random); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("mpv-%x.sock", random))
	}

	// user mpv.conf is respected: no --vo, --hwdec or profiles here
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + m.socketPath,
		"--force-media-title=" + title,
		"--force-window=yes",
		"--idle=yes",
		"--keep-open=no",
		target,
	}

	m.cmd = exec.Command(m.binary, args...)
	m.cmd.SysProcAttr = sysProcAttr()

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	cmd := m.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
		m.emit(Event{Kind: Closed})
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-exited:
		default:
			log.Warnf("mpv: killing process, socket never became ready")
			_ = killProcess(cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	if m.listener != nil {
		m.listener.Stop()
	}
	m.listener = NewEventListener(m.socketPath, m.emit)
	return m.listener.Start()
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			_ = conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// set queues a property change; it is dropped while no process runs.
func (m *MPV) set(property string, value any) error {
	return m.enqueue(func() error {
		if !m.running() {
			return nil
		}
		_, err := m.sendCommand("set_property", property, value)
		return err
	})
}

func (m *MPV) SetPause(paused bool) error {
	return m.set("pause", paused)
}

func (m *MPV) SetMute(muted bool) error {
	return m.set("mute", muted)
}

func (m *MPV) Fullscreen() error {
	return m.set("fullscreen", true)
}

func (m *MPV) Seek(seconds float64) error {
	return m.enqueue(func() error {
		if !m.running() {
			return nil
		}
		_, err := m.sendCommand("seek", seconds, "absolute")
		return err
	})
}

// Stop unloads the current file but keeps the window for the next Load.
func (m *MPV) Stop() error {
	return m.enqueue(func() error {
		if !m.running() {
			return nil
		}
		_, err := m.sendCommand("stop")
		return err
	})
}

// Close quits mpv and waits for queued commands to drain.
func (m *MPV) Close() error {
	m.qmu.Lock()
	if m.closed {
		m.qmu.Unlock()
		return nil
	}
	m.closed = true
	close(m.queue)
	m.qmu.Unlock()

	<-m.done

	if m.listener != nil {
		m.listener.Stop()
	}

	if !m.running() {
		return nil
	}

	_, _ = m.sendCommand("quit")

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

// sanitizeMediaTarget keeps catalog URLs from being read as mpv flags.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-'")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
