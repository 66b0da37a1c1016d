package manager

import (
	"context"
	"time"

	"ruralai/internal/llm"
)

// Ask answers prompt with the configured parameters, loading the model first
// if no handle exists. It reports ModelUnavailable without touching the
// engine when the load fails.
func (m *Manager) Ask(ctx context.Context, prompt string) llm.Result {
	if err := m.Ensure(ctx); err != nil {
		generationsTotal.WithLabelValues(llm.OutcomeModelUnavailable.String()).Inc()
		return llm.Unavailable()
	}
	m.mu.RLock()
	a := m.adapter
	m.mu.RUnlock()

	if m.cfg.InferTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.InferTimeout)
		defer cancel()
	}
	start := time.Now()
	res := a.Generate(ctx, prompt, m.Params())
	dur := time.Since(start)

	generationsTotal.WithLabelValues(res.Outcome.String()).Inc()
	generationDuration.WithLabelValues(res.Outcome.String()).Observe(dur.Seconds())
	switch res.Outcome {
	case llm.OutcomeOK:
		m.log.Debug().Int("prompt_len", len(prompt)).Int("answer_len", len(res.Text)).Dur("dur", dur).Msg("generation done")
	case llm.OutcomeGenerationFailed:
		m.log.Warn().Str("reason", res.Reason).Dur("dur", dur).Msg("generation failed")
		m.pub.Publish(Event{Name: EventGenerationFailed, Fields: map[string]any{"reason": res.Reason}})
	}
	return res
}
