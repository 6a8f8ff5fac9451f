// Package web renders the catalog over HTTP: an HTML page, a JSON API and a
// live WebSocket session per browser tab.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"gamegrid/internal/catalog"
	"gamegrid/internal/domain"
	"gamegrid/internal/eventbus"
	"gamegrid/internal/logic"
	"gamegrid/internal/ui/coordinator"
	"gamegrid/internal/ui/state"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// ErrBadParam is returned for query parameters that are not integers
var ErrBadParam = errors.New("bad query parameter")

type Handler struct {
	store    logic.CatalogStore
	opts     state.Options
	bus      eventbus.EventBus
	page     *template.Template
	upgrader websocket.Upgrader
}

func NewHandler(store logic.CatalogStore, opts state.Options, bus eventbus.EventBus) (*Handler, error) {
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	page, err := template.New("index.html.tmpl").Funcs(template.FuncMap{
		"join": strings.Join,
		"prev": func(p int) int { return p - 1 },
		"next": func(p int) int { return p + 1 },
	}).ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	return &Handler{
		store: store,
		opts:  opts,
		bus:   bus,
		page:  page,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}, nil
}

// eventsFromQuery turns q, genre, size and page parameters into interaction events, in that order
func eventsFromQuery(values url.Values) ([]coordinator.Event, error) {
	var events []coordinator.Event
	if q := values.Get("q"); q != "" {
		events = append(events, coordinator.QueryChanged{Text: q})
	}
	if g := values.Get("genre"); g != "" {
		events = append(events, coordinator.GenreSelected{Label: g})
	}
	if s := values.Get("size"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: size=%q", ErrBadParam, s)
		}
		events = append(events, coordinator.PageSizeChanged{Size: size})
	}
	if p := values.Get("page"); p != "" {
		page, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: page=%q", ErrBadParam, p)
		}
		events = append(events, coordinator.PageSelected{Page: page})
	}
	return events, nil
}

// frameFromQuery builds a fresh session from the URL parameters
func (h *Handler) frameFromQuery(values url.Values) (state.Frame, error) {
	c := coordinator.New(h.store, h.opts, h.bus)
	if err := seed(c, values); err != nil {
		return state.Frame{}, err
	}
	return c.Frame(), nil
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	values := r.URL.Query()
	frame, err := h.frameFromQuery(values)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := pageData{
		Frame:     frame,
		Genres:    h.genres(),
		PageSizes: state.New(nil, h.opts).PageSizes(),
		RawQuery:  values.Get("q"),
		values:    values,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(w, data); err != nil {
		slog.Error("render page", "error", err)
	}
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	frame, err := h.frameFromQuery(r.URL.Query())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, h.genres())
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	game, ok := h.store.Get(id)
	if !ok {
		writeJSONError(w, http.StatusNotFound, fmt.Errorf("game %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *Handler) genres() []string {
	return domain.GenreLabels(h.store.Genres())
}

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.GET("/", h.Index)
	router.GET("/api/games", h.ListGames)
	router.GET("/api/games/:id", h.GetGame)
	router.GET("/api/genres", h.ListGenres)
	router.GET("/ws", h.ServeSession)

	return logRequests(router)
}

// pageData feeds the HTML template
type pageData struct {
	Frame     state.Frame
	Genres    []string
	PageSizes []int
	RawQuery  string
	values    url.Values
}

// FallbackImage is used when a card image fails to load
func (d pageData) FallbackImage() string {
	return catalog.FallbackImage
}

// With returns the current URL with key set to value
func (d pageData) With(key string, value any) string {
	v := url.Values{}
	for k, vals := range d.values {
		v[k] = append([]string(nil), vals...)
	}
	v.Set(key, fmt.Sprint(value))
	// Query, genre and size changes restart at page 1
	if key != "page" {
		v.Del("page")
	}
	return "/?" + v.Encode()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
