package manager

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ruralai/internal/llm"
)

type Manager struct {
	// mu guards the fields below; loadMu serializes load attempts so at most
	// one handle is ever constructed.
	mu       sync.RWMutex
	loadMu   sync.Mutex
	state    State
	adapter  *llm.Adapter
	err      string
	attempts int

	cfg       Config
	log       zerolog.Logger
	pub       EventPublisher
	startTime time.Time
}

// New constructs a Manager without loading anything. Call Init to load at
// startup or let the first Ensure load lazily.
func New(cfg Config) *Manager {
	cfg = cfg.withDefaults()
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("component", "manager").Logger()
	}
	return &Manager{
		state:     StateUninitialized,
		cfg:       cfg,
		log:       log,
		pub:       cfg.Publisher,
		startTime: time.Now(),
	}
}

// ModelLoaded reports whether a model handle is present.
func (m *Manager) ModelLoaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.adapter.IsModelLoaded()
}

// Ready is an alias of ModelLoaded used by the readiness probe.
func (m *Manager) Ready() bool { return m.ModelLoaded() }

// Params returns the generation parameters applied to every request.
func (m *Manager) Params() llm.Params { return m.cfg.Params }

// Close releases the model handle.
func (m *Manager) Close() error {
	m.loadMu.Lock()
	defer m.loadMu.Unlock()
	m.mu.Lock()
	a := m.adapter
	m.adapter = nil
	m.state = StateUninitialized
	m.mu.Unlock()
	if a == nil {
		return nil
	}
	modelLoaded.Set(0)
	m.pub.Publish(Event{Name: EventModelUnloaded, Fields: map[string]any{"path": a.Path()}})
	return a.Close()
}
