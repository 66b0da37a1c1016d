//go:build llama

package llm

import (
	"context"
	"errors"
	"strings"
	"sync"

	llama "github.com/go-skynet/go-llama.cpp"
)

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = true

// llamaEngine owns the loaded model. go-llama.cpp keeps per-model state, so
// predictions are serialized.
type llamaEngine struct {
	mu      sync.Mutex
	model   *llama.LLama
	threads int
}

func loadLlama(path string, contextSize, threads int) (Engine, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("model path is empty")
	}
	m, err := llama.New(path, llama.SetContext(contextSize))
	if err != nil {
		return nil, err
	}
	return &llamaEngine{model: m, threads: threads}, nil
}

func (e *llamaEngine) Complete(ctx context.Context, req CompletionRequest) (Completion, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.model == nil {
		return Completion{}, errors.New("llama model not initialized")
	}

	// Stop between tokens once the request is gone.
	e.model.SetTokenCallback(func(string) bool {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	})
	defer e.model.SetTokenCallback(nil)

	text, err := e.model.Predict(req.Prompt, predictOptions(req, e.threads)...)
	if err != nil {
		if ctx.Err() != nil {
			return Completion{}, ctx.Err()
		}
		return Completion{}, err
	}
	if ctx.Err() != nil {
		return Completion{}, ctx.Err()
	}
	text = trimStopSuffix(text, req.Stop)
	if req.Echo {
		text = req.Prompt + text
	}
	return Completion{Choices: []Choice{{Text: text}}}, nil
}

func (e *llamaEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.model != nil {
		e.model.Free()
		e.model = nil
	}
	return nil
}

// predictOptions converts a CompletionRequest into go-llama.cpp options.
func predictOptions(req CompletionRequest, threads int) []llama.PredictOption {
	po := []llama.PredictOption{
		llama.SetTokens(max(1, req.MaxTokens)),
		llama.SetThreads(max(1, threads)),
		llama.SetTemperature(req.Temperature),
	}
	if len(req.Stop) > 0 {
		po = append(po, llama.SetStopWords(req.Stop...))
	}
	return po
}
