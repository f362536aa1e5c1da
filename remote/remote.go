// Package remote accepts key presses over HTTP, so that a phone or a
// LIRC bridge can drive the interface like a TV remote.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	nethttp "net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/nav"
	"github.com/tidwall/gjson"
)

// KeyMsg carries a remote key event into the update loop.
type KeyMsg struct {
	Event nav.KeyEvent
}

const maxBody = 4 << 10

var (
	ErrMissingKey = errors.New("missing key")
	ErrBadType    = errors.New(`type must be "down", "up" or "press"`)
)

// Decode reads {"key": ..., "type": ...}. A missing type is a full press.
func Decode(body []byte, at time.Time) ([]nav.KeyEvent, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid json")
	}

	fields := gjson.GetManyBytes(body, "key", "type")
	key := nav.Canonical(fields[0].String())
	if key == "" {
		return nil, ErrMissingKey
	}

	switch fields[1].String() {
	case "down":
		return []nav.KeyEvent{{Key: key, Kind: nav.Down, At: at}}, nil
	case "up":
		return []nav.KeyEvent{{Key: key, Kind: nav.Up, At: at}}, nil
	case "", "press":
		return []nav.KeyEvent{{Key: key, Kind: nav.Down, At: at}, {Key: key, Kind: nav.Up, At: at}}, nil
	default:
		return nil, ErrBadType
	}
}

// Handler serves POST /key and GET /health. Accepted keys go to send.
func Handler(send func(tea.Msg)) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/key", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodPost {
			w.Header().Set("Allow", nethttp.MethodPost)
			reply(w, nethttp.StatusMethodNotAllowed, `{"error":"method not allowed"}`)
			return
		}

		body, err := io.ReadAll(nethttp.MaxBytesReader(w, r.Body, maxBody))
		if err != nil {
			reply(w, nethttp.StatusRequestEntityTooLarge, `{"error":"body too large"}`)
			return
		}

		events, err := Decode(body, time.Now())
		if err != nil {
			log.WithField("remote", r.RemoteAddr).Debugf("remote: rejected key: %s", err)
			reply(w, nethttp.StatusBadRequest, fmt.Sprintf(`{"error":%q}`, err.Error()))
			return
		}

		for _, ev := range events {
			send(KeyMsg{Event: ev})
		}
		reply(w, nethttp.StatusAccepted, `{"status":"queued"}`)
	})
	mux.HandleFunc("/health", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		reply(w, nethttp.StatusOK, fmt.Sprintf(`{"status":"ok","version":%q}`, constant.Version))
	})
	return mux
}

func reply(w nethttp.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = io.WriteString(w, body)
}

// Server is a running remote endpoint.
type Server struct {
	srv      *nethttp.Server
	listener net.Listener
}

// Listen starts serving on addr in the background.
func Listen(addr string, send func(tea.Msg)) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		srv: &nethttp.Server{
			Handler:           Handler(send),
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: listener,
	}

	go func() {
		if err := s.srv.Serve(listener); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Errorf("remote: %s", err)
		}
	}()

	log.Infof("remote: listening on %s", listener.Addr())
	return s, nil
}

func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
