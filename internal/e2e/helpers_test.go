package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"ruralai/internal/httpapi"
	"ruralai/internal/llm"
	"ruralai/internal/manager"
)

// createModelFile writes a placeholder weights file and returns its path.
func createModelFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tinyllama.gguf")
	if err := os.WriteFile(p, []byte("gguf"), 0o644); err != nil {
		t.Fatalf("write temp model %s: %v", p, err)
	}
	return p
}

// scriptedEngine answers every completion with the same text and records prompts.
type scriptedEngine struct {
	text string
	err  error

	mu      sync.Mutex
	prompts []string
}

func (e *scriptedEngine) Complete(ctx context.Context, req llm.CompletionRequest) (llm.Completion, error) {
	e.mu.Lock()
	e.prompts = append(e.prompts, req.Prompt)
	e.mu.Unlock()
	if e.err != nil {
		return llm.Completion{}, e.err
	}
	return llm.Completion{Choices: []llm.Choice{{Text: e.text}}}, nil
}

func (e *scriptedEngine) Close() error { return nil }

func (e *scriptedEngine) calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.prompts)
}

// newServer wires a real manager and router around eng and returns the test server.
func newServer(t *testing.T, modelPath string, eng llm.Engine) (*httptest.Server, *manager.Manager, *atomic.Int32) {
	t.Helper()
	var loads atomic.Int32
	mgr := manager.New(manager.Config{
		ModelPath: modelPath,
		Loader: func(string, int, int) (llm.Engine, error) {
			loads.Add(1)
			return eng, nil
		},
	})
	t.Cleanup(func() { _ = mgr.Close() })
	srv := httptest.NewServer(httpapi.NewMux(mgr))
	t.Cleanup(srv.Close)
	return srv, mgr, &loads
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	return do(t, req)
}

func httpPostForm(t *testing.T, u, prompt string) (*http.Response, []byte) {
	t.Helper()
	form := url.Values{"prompt": {prompt}}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, req)
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return do(t, req)
}

func do(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}
