package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested  EventType = "SearchRequested"
	EventSelectionChanged EventType = "SelectionChanged"
	EventOptionsReceived  EventType = "OptionsReceived"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent carries the widget's outward search text
type SearchRequestedEvent struct {
	Text string
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SelectionChangedEvent is emitted whenever the selection is committed or
// confirmed empty
type SelectionChangedEvent struct {
	Selection Selection
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// OptionsReceivedEvent is emitted when a source produced a new option batch
type OptionsReceivedEvent struct {
	Source string
	Count  int
}

func (e OptionsReceivedEvent) Type() EventType { return EventOptionsReceived }

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
