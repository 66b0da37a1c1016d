// Package llm wraps a single loaded inference engine and turns a user
// question into a domain-conditioned completion.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"ruralai/internal/common/fsutil"
)

// Defaults for model loading and generation.
const (
	DefaultModelPath   = "model/tinyllama/tinyllama-1.1b-chat-v1.0.q4_k_m.gguf"
	DefaultContextSize = 1024
	DefaultThreads     = 4
	DefaultMaxTokens   = 200
	DefaultTemperature = float32(0.7)
)

// Options configures adapter construction. Zero values take the defaults above.
type Options struct {
	ModelPath   string
	ContextSize int
	Threads     int
	// Loader overrides the runtime. Nil uses DefaultLoader.
	Loader Loader
}

// Params are the generation parameters applied to one call.
type Params struct {
	MaxTokens   int
	Temperature float32
}

// DefaultParams returns (200, 0.7).
func DefaultParams() Params {
	return Params{MaxTokens: DefaultMaxTokens, Temperature: DefaultTemperature}
}

// Adapter owns one loaded engine.
type Adapter struct {
	path string

	mu     sync.RWMutex
	engine Engine
}

// New resolves the model path and loads the engine synchronously.
// It fails with a model-missing error when no file exists at the path and
// with a load error wrapping the runtime failure otherwise. No retry is made.
func New(opts Options) (*Adapter, error) {
	path := opts.ModelPath
	if strings.TrimSpace(path) == "" {
		path = DefaultModelPath
	}
	abs, err := fsutil.Resolve(path)
	if err != nil {
		return nil, modelMissingError{path: path}
	}
	if !fsutil.FileExists(abs) {
		return nil, modelMissingError{path: abs}
	}
	ctxSize := opts.ContextSize
	if ctxSize <= 0 {
		ctxSize = DefaultContextSize
	}
	threads := opts.Threads
	if threads <= 0 {
		threads = DefaultThreads
	}
	load := opts.Loader
	if load == nil {
		load = DefaultLoader
	}
	eng, err := safeLoad(load, abs, ctxSize, threads)
	if err != nil {
		return nil, loadError{path: abs, err: err}
	}
	if eng == nil {
		return nil, loadError{path: abs, err: errors.New("runtime returned no engine")}
	}
	return &Adapter{path: abs, engine: eng}, nil
}

// safeLoad turns a runtime panic during initialization into an error.
func safeLoad(load Loader, path string, ctxSize, threads int) (eng Engine, err error) {
	defer func() {
		if r := recover(); r != nil {
			eng, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return load(path, ctxSize, threads)
}

// Path returns the absolute model file path.
func (a *Adapter) Path() string { return a.path }

// IsModelLoaded reports whether the engine handle is present.
func (a *Adapter) IsModelLoaded() bool {
	if a == nil {
		return false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.engine != nil
}

// Generate asks the engine to answer prompt and returns a tagged result.
// It never panics and never returns an error value.
func (a *Adapter) Generate(ctx context.Context, prompt string, p Params) (res Result) {
	if a == nil {
		return Unavailable()
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.engine == nil {
		return Unavailable()
	}
	defer func() {
		if r := recover(); r != nil {
			res = Failed(fmt.Sprintf("%v", r))
		}
	}()
	if p.MaxTokens <= 0 {
		p.MaxTokens = DefaultMaxTokens
	}
	out, err := a.engine.Complete(ctx, CompletionRequest{
		Prompt:      BuildPrompt(prompt),
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
		Stop:        StopSequences(),
		Echo:        false,
	})
	if err != nil {
		return Failed(err.Error())
	}
	if len(out.Choices) == 0 {
		return Failed("no choices returned")
	}
	return Ok(strings.TrimSpace(out.Choices[0].Text))
}

// GenerateResponse is the string form of Generate: the answer on success,
// "Error: Model not loaded" without an engine, and
// "Error generating response: ..." when the completion fails.
func (a *Adapter) GenerateResponse(ctx context.Context, prompt string, maxTokens int, temperature float32) string {
	return a.Generate(ctx, prompt, Params{MaxTokens: maxTokens, Temperature: temperature}).String()
}

// Close frees the engine. Later calls to Generate report ModelUnavailable.
func (a *Adapter) Close() error {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.engine == nil {
		return nil
	}
	err := a.engine.Close()
	a.engine = nil
	return err
}

// Ask loads a model with opts, answers prompt with p and frees the model.
// Load failures are returned as the error; generation failures come back
// in the Result.
func Ask(ctx context.Context, opts Options, p Params, prompt string) (Result, error) {
	a, err := New(opts)
	if err != nil {
		return Unavailable(), err
	}
	defer a.Close()
	return a.Generate(ctx, prompt, p), nil
}
