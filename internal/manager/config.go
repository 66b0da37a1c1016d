package manager

import (
	"time"

	"github.com/rs/zerolog"

	"ruralai/internal/llm"
)

// Config encapsulates all tunables for Manager construction.
// Zero values take the llm package defaults.
type Config struct {
	ModelPath   string
	ContextSize int
	Threads     int
	Params      llm.Params
	// InferTimeout bounds a single generation. Zero disables it.
	InferTimeout time.Duration
	// Loader overrides the inference runtime (tests use fakes).
	Loader    llm.Loader
	Logger    *zerolog.Logger
	Publisher EventPublisher
}

func (c Config) withDefaults() Config {
	if c.ModelPath == "" {
		c.ModelPath = llm.DefaultModelPath
	}
	if c.ContextSize <= 0 {
		c.ContextSize = llm.DefaultContextSize
	}
	if c.Threads <= 0 {
		c.Threads = llm.DefaultThreads
	}
	if c.Params == (llm.Params{}) {
		c.Params = llm.DefaultParams()
	}
	if c.Params.MaxTokens <= 0 {
		c.Params.MaxTokens = llm.DefaultMaxTokens
	}
	if c.InferTimeout < 0 {
		c.InferTimeout = 0
	}
	if c.Publisher == nil {
		c.Publisher = noopPublisher{}
	}
	return c
}
