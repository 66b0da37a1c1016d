package manager

import "github.com/rs/zerolog"

// LogPublisher writes events to a zerolog logger. Failures log at warn.
type LogPublisher struct {
	Logger zerolog.Logger
}

func (p LogPublisher) Publish(e Event) {
	ev := p.Logger.Info()
	if e.Name == EventModelLoadFailed || e.Name == EventGenerationFailed {
		ev = p.Logger.Warn()
	}
	ev.Str("event", e.Name).Fields(e.Fields).Msg("manager event")
}
