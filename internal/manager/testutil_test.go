package manager

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"ruralai/internal/llm"
)

// createModelFile writes a small placeholder model file and returns its path.
func createModelFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tiny.gguf")
	if err := os.WriteFile(p, []byte("gguf"), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	return p
}

// fakeEngine answers with a fixed text or blocks until the context ends.
type fakeEngine struct {
	text  string
	err   error
	block bool
	calls atomic.Int32
}

func (f *fakeEngine) Complete(ctx context.Context, req llm.CompletionRequest) (llm.Completion, error) {
	f.calls.Add(1)
	if f.block {
		<-ctx.Done()
		return llm.Completion{}, ctx.Err()
	}
	if f.err != nil {
		return llm.Completion{}, f.err
	}
	return llm.Completion{Choices: []llm.Choice{{Text: f.text}}}, nil
}

func (f *fakeEngine) Close() error { return nil }

// countingLoader returns eng after an optional delay and counts invocations.
// The first failFirst calls fail.
type countingLoader struct {
	eng       llm.Engine
	delay     time.Duration
	failFirst int32
	calls     atomic.Int32
}

func (l *countingLoader) load(path string, contextSize, threads int) (llm.Engine, error) {
	n := l.calls.Add(1)
	if l.delay > 0 {
		time.Sleep(l.delay)
	}
	if n <= l.failFirst {
		return nil, errors.New("llama_init_from_file: failed")
	}
	return l.eng, nil
}
