package manager

import (
	"context"
	"time"

	"ruralai/internal/llm"
)

// Init performs the startup load. A failure is logged and leaves the manager
// in StateError; the process keeps serving in degraded mode.
func (m *Manager) Init(ctx context.Context) error {
	return m.Ensure(ctx)
}

// Ensure makes sure a model handle exists, loading it if needed.
// Concurrent callers wait on the same guard: one load runs at a time and a
// caller that waited behind a successful load reuses its handle. A failed
// load is not cached; the next call tries again.
func (m *Manager) Ensure(ctx context.Context) error {
	if m.ModelLoaded() {
		return nil
	}
	m.loadMu.Lock()
	defer m.loadMu.Unlock()
	if m.ModelLoaded() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return ErrModelUnavailable(err)
	}
	return m.load()
}

// load runs with loadMu held.
func (m *Manager) load() error {
	m.mu.Lock()
	m.state = StateLoading
	m.err = ""
	m.attempts++
	m.mu.Unlock()

	start := time.Now()
	a, err := llm.New(llm.Options{
		ModelPath:   m.cfg.ModelPath,
		ContextSize: m.cfg.ContextSize,
		Threads:     m.cfg.Threads,
		Loader:      m.cfg.Loader,
	})
	dur := time.Since(start)
	if err != nil {
		m.mu.Lock()
		m.state = StateError
		m.err = err.Error()
		m.mu.Unlock()
		modelLoadsTotal.WithLabelValues(loadResultLabel(err)).Inc()
		m.log.Error().Err(err).Str("path", m.cfg.ModelPath).Dur("dur", dur).Msg("model load failed")
		m.pub.Publish(Event{Name: EventModelLoadFailed, Fields: map[string]any{"path": m.cfg.ModelPath, "error": err.Error()}})
		return ErrModelUnavailable(err)
	}

	m.mu.Lock()
	m.adapter = a
	m.state = StateReady
	m.mu.Unlock()
	modelLoadsTotal.WithLabelValues("ok").Inc()
	modelLoaded.Set(1)
	m.log.Info().Str("path", a.Path()).Dur("dur", dur).Msg("model loaded")
	m.pub.Publish(Event{Name: EventModelLoaded, Fields: map[string]any{"path": a.Path(), "dur_ms": dur.Milliseconds()}})
	return nil
}

func loadResultLabel(err error) string {
	switch {
	case llm.IsModelMissing(err):
		return "missing"
	case llm.IsDependencyUnavailable(err):
		return "unavailable"
	default:
		return "error"
	}
}
