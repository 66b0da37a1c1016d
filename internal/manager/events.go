package manager

// Event names published by the manager.
const (
	EventModelLoaded      = "model_loaded"
	EventModelLoadFailed  = "model_load_failed"
	EventModelUnloaded    = "model_unloaded"
	EventGenerationFailed = "generation_failed"
)

// Event represents a manager lifecycle event.
// Minimal and stable: name plus optional fields.
type Event struct {
	Name   string
	Fields map[string]any
}

// EventPublisher receives events from the manager. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
