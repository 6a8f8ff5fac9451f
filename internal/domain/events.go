package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded    EventType = "CatalogLoaded"
	EventViewChanged      EventType = "ViewChanged"
	EventPageSizeRejected EventType = "PageSizeRejected"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventSessionOpened    EventType = "SessionOpened"
	EventSessionClosed    EventType = "SessionClosed"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the dataset provider has loaded the catalog
type CatalogLoadedEvent struct {
	Source string // file path, or "embedded"
	Games  int
	Genres int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// ViewChangedEvent is emitted after every interaction has been applied and recomputed
type ViewChangedEvent struct {
	Trigger       string // interaction that caused the change
	Query         string
	Genre         string
	Page          int
	PageSize      int
	TotalPages    int
	FilteredCount int
}

func (e ViewChangedEvent) Type() EventType { return EventViewChanged }

// PageSizeRejectedEvent is emitted when a page size outside the allowed set is requested
type PageSizeRejectedEvent struct {
	Requested int
	Current   int
}

func (e PageSizeRejectedEvent) Type() EventType { return EventPageSizeRejected }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// SessionOpenedEvent is emitted when a web client opens a live session
type SessionOpenedEvent struct {
	RemoteAddr string
}

func (e SessionOpenedEvent) Type() EventType { return EventSessionOpened }

// SessionClosedEvent is emitted when a live session ends
type SessionClosedEvent struct {
	RemoteAddr string
	Events     int // interactions handled during the session
}

func (e SessionClosedEvent) Type() EventType { return EventSessionClosed }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	Mode string // "tui" or "serve"
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
