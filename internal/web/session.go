package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"gamegrid/internal/eventbus"
	"gamegrid/internal/ui/coordinator"
	"gamegrid/internal/ui/state"
)

const (
	maxMessageSize = 4096
	writeWait      = 10 * time.Second
)

// ErrUnknownMessage is returned for client messages with an unrecognized type
var ErrUnknownMessage = errors.New("unknown message type")

// clientMessage is one interaction sent by the browser
type clientMessage struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// serverMessage is pushed to the browser after every interaction
type serverMessage struct {
	Type  string       `json:"type"`
	Frame *state.Frame `json:"frame,omitempty"`
	Error string       `json:"error,omitempty"`
}

// session binds one websocket connection to its own coordinator
type session struct {
	conn   *websocket.Conn
	coord  *coordinator.Coordinator
	remote string
	mu     sync.Mutex
	events int
}

// Render implements coordinator.Renderer by pushing the frame to the client
func (s *session) Render(frame state.Frame) {
	if err := s.write(serverMessage{Type: "frame", Frame: &frame}); err != nil {
		slog.Debug("session write failed", "remote", s.remote, "error", err)
	}
}

func (s *session) write(msg serverMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(msg)
}

// ServeSession upgrades the request and serves interactions until the client disconnects.
// The query string seeds the session the same way it seeds the HTML page.
func (h *Handler) ServeSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	coord := coordinator.New(h.store, h.opts, h.bus)
	if err := seed(coord, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s := &session{conn: conn, coord: coord, remote: r.RemoteAddr}
	coord.SetRenderer(s)

	h.bus.Publish(eventbus.SessionOpenedEvent{RemoteAddr: s.remote})
	defer func() {
		h.bus.Publish(eventbus.SessionClosedEvent{RemoteAddr: s.remote, Events: s.events})
	}()

	conn.SetReadLimit(maxMessageSize)
	coord.Render()

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read error", "remote", s.remote, "error", err)
			}
			return
		}

		s.events++
		if err := s.handle(msg); err != nil {
			slog.Debug("session message rejected", "remote", s.remote, "type", msg.Type, "error", err)
			if werr := s.write(serverMessage{Type: "error", Error: err.Error()}); werr != nil {
				return
			}
		}
	}
}

// handle decodes msg into an interaction event and dispatches it
func (s *session) handle(msg clientMessage) error {
	event, err := decodeEvent(msg)
	if err != nil {
		return err
	}
	_, err = s.coord.Dispatch(event)
	return err
}

func decodeEvent(msg clientMessage) (coordinator.Event, error) {
	switch msg.Type {
	case "query":
		var text string
		if err := decodeValue(msg, &text); err != nil {
			return nil, err
		}
		return coordinator.QueryChanged{Text: text}, nil
	case "genre":
		var label string
		if err := decodeValue(msg, &label); err != nil {
			return nil, err
		}
		return coordinator.GenreSelected{Label: label}, nil
	case "page_size":
		var size int
		if err := decodeValue(msg, &size); err != nil {
			return nil, err
		}
		return coordinator.PageSizeChanged{Size: size}, nil
	case "page":
		var page int
		if err := decodeValue(msg, &page); err != nil {
			return nil, err
		}
		return coordinator.PageSelected{Page: page}, nil
	case "prev":
		return coordinator.PrevPage{}, nil
	case "next":
		return coordinator.NextPage{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
}

func decodeValue(msg clientMessage, v any) error {
	if len(msg.Value) == 0 {
		return fmt.Errorf("%s: missing value", msg.Type)
	}
	if err := json.Unmarshal(msg.Value, v); err != nil {
		return fmt.Errorf("%s: %w", msg.Type, err)
	}
	return nil
}

// seed applies URL parameters to a fresh coordinator
func seed(coord *coordinator.Coordinator, values url.Values) error {
	events, err := eventsFromQuery(values)
	if err != nil {
		return err
	}
	for _, e := range events {
		if _, err := coord.Dispatch(e); err != nil {
			return err
		}
	}
	return nil
}

// checkOrigin allows same-host and localhost origins
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}
