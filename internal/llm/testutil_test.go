package llm

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeModelFile creates an empty model file and returns its path.
func writeModelFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "test.gguf")
	if err := os.WriteFile(p, []byte("gguf"), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	return p
}

// fakeEngine records requests and returns canned output.
type fakeEngine struct {
	mu       sync.Mutex
	out      Completion
	err      error
	panicVal any
	calls    []CompletionRequest
	closed   bool
}

func (f *fakeEngine) Complete(ctx context.Context, req CompletionRequest) (Completion, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	if f.panicVal != nil {
		panic(f.panicVal)
	}
	if f.err != nil {
		return Completion{}, f.err
	}
	return f.out, nil
}

func (f *fakeEngine) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeEngine) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// loaderFor returns a Loader handing out eng and recording its arguments.
func loaderFor(eng Engine, gotPath *string, gotCtx, gotThreads *int) Loader {
	return func(path string, contextSize, threads int) (Engine, error) {
		if gotPath != nil {
			*gotPath = path
		}
		if gotCtx != nil {
			*gotCtx = contextSize
		}
		if gotThreads != nil {
			*gotThreads = threads
		}
		return eng, nil
	}
}

func textCompletion(text string) Completion {
	return Completion{Choices: []Choice{{Text: text}}}
}
