package llm

import (
	"context"
	"strings"
)

// Loader initializes an inference engine from a model file.
// contextSize and threads are passed through to the runtime untouched.
type Loader func(path string, contextSize, threads int) (Engine, error)

// Engine is the narrow contract over the external inference runtime.
// Tokenization, sampling and the model architecture stay on the other side.
type Engine interface {
	// Complete runs a single blocking completion for req.
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
	// Close releases the runtime resources.
	Close() error
}

// CompletionRequest carries the per-call generation options.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float32
	Stop        []string
	Echo        bool
}

// Completion is the runtime output. Only the first choice is consumed.
type Completion struct {
	Choices []Choice
}

// Choice is one generated candidate.
type Choice struct {
	Text string
}

// DefaultLoader loads models with the runtime compiled into this binary.
// Without the 'llama' build tag it always fails with a dependency error.
var DefaultLoader Loader = loadLlama

// LlamaBuilt reports whether this binary was compiled with llama.cpp support.
func LlamaBuilt() bool { return llamaBuilt }

// trimStopSuffix drops a stop sequence the runtime left at the end of text.
func trimStopSuffix(text string, stop []string) string {
	trimmed := strings.TrimRight(text, " \t\r\n")
	for _, s := range stop {
		if s == "" {
			continue
		}
		if strings.HasSuffix(trimmed, s) {
			return strings.TrimSuffix(trimmed, s)
		}
	}
	return text
}
