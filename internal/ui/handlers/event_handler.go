package handlers

import (
	"fmt"
	"log/slog"

	"gamegrid/internal/eventbus"
	"gamegrid/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes a domain event and reports whether the status line changed
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) bool {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		h.state.StatusMessage = fmt.Sprintf("Loaded %d games in %d genres from %s", e.Games, e.Genres, e.Source)
		h.state.StatusIsError = false

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
		h.state.StatusIsError = true

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = fmt.Sprintf("Config saved to %s", e.Path)
		h.state.StatusIsError = false

	default:
		slog.Debug("ui: ignoring event", "type", event.Type())
		return false
	}

	return true
}
