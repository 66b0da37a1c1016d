package manager

import (
	"time"

	"ruralai/internal/llm"
	"ruralai/pkg/types"
)

// Snapshot returns a read-only view of the manager state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := Snapshot{State: m.state, ModelPath: m.cfg.ModelPath, Err: m.err, Attempts: m.attempts}
	if m.adapter != nil {
		s.ModelPath = m.adapter.Path()
		s.Loaded = m.adapter.IsModelLoaded()
	}
	return s
}

// Health builds the liveness payload for /health.
func (m *Manager) Health() types.HealthResponse {
	return types.HealthResponse{Status: "healthy", ModelLoaded: m.ModelLoaded()}
}

// Status builds a detailed status response for /status.
func (m *Manager) Status() types.StatusResponse {
	s := m.Snapshot()
	p := m.Params()
	return types.StatusResponse{
		State:         string(s.State),
		ModelPath:     s.ModelPath,
		ModelLoaded:   s.Loaded,
		Error:         s.Err,
		LoadAttempts:  s.Attempts,
		LlamaBuilt:    llm.LlamaBuilt(),
		MaxTokens:     p.MaxTokens,
		Temperature:   p.Temperature,
		UptimeSeconds: int64(time.Since(m.startTime).Seconds()),
	}
}
