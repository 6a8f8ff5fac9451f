package coordinator

import (
	"errors"
	"fmt"
	"log/slog"

	"gamegrid/internal/domain"
	"gamegrid/internal/eventbus"
	"gamegrid/internal/logic"
	"gamegrid/internal/ui/state"
)

// ErrUnknownEvent is returned by Dispatch for events it has no transition for
var ErrUnknownEvent = errors.New("unknown event")

// Renderer draws a frame. The terminal model, the HTML page and the websocket session implement it.
type Renderer interface {
	Render(frame state.Frame)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(frame state.Frame)

func (f RendererFunc) Render(frame state.Frame) { f(frame) }

// Coordinator owns the ViewState of one session and applies interaction events to it
type Coordinator struct {
	store    logic.CatalogStore
	bus      eventbus.EventBus
	view     state.ViewState
	renderer Renderer
}

// New creates a coordinator in the initial view state
func New(store logic.CatalogStore, opts state.Options, bus eventbus.EventBus) *Coordinator {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Coordinator{
		store: store,
		bus:   bus,
		view:  state.New(store.All(), opts),
	}
}

// SetRenderer registers the render adapter called after every transition
func (c *Coordinator) SetRenderer(r Renderer) {
	c.renderer = r
}

// State returns the current view state
func (c *Coordinator) State() state.ViewState {
	return c.view
}

// Frame returns the render frame for the current state
func (c *Coordinator) Frame() state.Frame {
	return c.view.Frame()
}

// Genres returns the known genre labels, sentinel first
func (c *Coordinator) Genres() []string {
	return domain.GenreLabels(c.store.Genres())
}

// Render hands the current frame to the renderer without changing state
func (c *Coordinator) Render() state.Frame {
	frame := c.view.Frame()
	if c.renderer != nil {
		c.renderer.Render(frame)
	}
	return frame
}

// Dispatch applies e, renders the resulting frame and publishes a ViewChangedEvent.
// A rejected page size leaves the state untouched, renders nothing and returns the error.
func (c *Coordinator) Dispatch(e Event) (state.Frame, error) {
	next, err := c.apply(e)
	if err != nil {
		if errors.Is(err, state.ErrInvalidPageSize) {
			c.bus.Publish(eventbus.PageSizeRejectedEvent{
				Requested: e.(PageSizeChanged).Size,
				Current:   c.view.PageSize(),
			})
		}
		slog.Debug("coordinator: event rejected", "error", err)
		return c.view.Frame(), err
	}

	c.view = next
	frame := c.Render()

	c.bus.Publish(eventbus.ViewChangedEvent{
		Trigger:       e.Name(),
		Query:         frame.Query,
		Genre:         frame.Genre,
		Page:          frame.CurrentPage,
		PageSize:      frame.PageSize,
		TotalPages:    frame.TotalPages,
		FilteredCount: frame.FilteredCount,
	})

	return frame, nil
}

func (c *Coordinator) apply(e Event) (state.ViewState, error) {
	switch ev := e.(type) {
	case QueryChanged:
		return c.view.SetQuery(ev.Text), nil
	case GenreSelected:
		return c.view.SetGenre(ev.Label), nil
	case PageSizeChanged:
		return c.view.SetPageSize(ev.Size)
	case PrevPage:
		return c.view.PrevPage(), nil
	case NextPage:
		return c.view.NextPage(), nil
	case PageSelected:
		return c.view.GoToPage(ev.Page), nil
	case nil:
		return c.view, fmt.Errorf("%w: nil", ErrUnknownEvent)
	default:
		return c.view, fmt.Errorf("%w: %s", ErrUnknownEvent, e.Name())
	}
}
