package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"ruralai/internal/config"
	"ruralai/internal/llm"
)

func TestSplitCSV(t *testing.T) {
	cases := map[string][]string{
		"":                 nil,
		"a":                {"a"},
		" a , b ,, c ":     {"a", "b", "c"},
		"GET,POST,OPTIONS": {"GET", "POST", "OPTIONS"},
		" , ":              nil,
	}
	for in, want := range cases {
		if got := splitCSV(in); !reflect.DeepEqual(got, want) {
			t.Errorf("splitCSV(%q) = %#v, want %#v", in, got, want)
		}
	}
}

func noEnv(string) (string, bool) { return "", false }

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(cmd, noEnv)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Addr != "0.0.0.0:5000" || cfg.MaxTokens != 200 || cfg.Temperature != 0.7 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.LoadOnStart {
		t.Fatal("load_on_start should default to true")
	}
	if want := []string{"GET", "POST", "OPTIONS"}; !reflect.DeepEqual(cfg.CORSMethods, want) {
		t.Fatalf("cors methods = %v", cfg.CORSMethods)
	}
}

func TestResolveConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruralai.yaml")
	body := "addr: 127.0.0.1:7000\nmax_tokens: 64\nlog_level: debug\nmodel_path: from-file.gguf\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "--max-tokens", "32", "--cors-origins", "http://a, http://b"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(cmd, envOf(map[string]string{
		config.EnvAddr:      "127.0.0.1:8000",
		config.EnvModelPath: "from-env.gguf",
	}))
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8000" {
		t.Errorf("env should override file addr, got %s", cfg.Addr)
	}
	if cfg.ModelPath != "from-env.gguf" {
		t.Errorf("model path = %s", cfg.ModelPath)
	}
	if cfg.MaxTokens != 32 {
		t.Errorf("flag should override file max_tokens, got %d", cfg.MaxTokens)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("file log level lost: %s", cfg.LogLevel)
	}
	if want := []string{"http://a", "http://b"}; !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestResolveConfigFlagBeatsEnv(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--addr", "127.0.0.1:9000"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(cmd, envOf(map[string]string{config.EnvAddr: "127.0.0.1:8000"}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("addr = %s", cfg.Addr)
	}
}

func TestResolveConfigErrors(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--temperature", "1.5"}); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd, noEnv); err == nil || !strings.Contains(err.Error(), "temperature") {
		t.Fatalf("expected temperature error, got %v", err)
	}

	cmd = newRootCmd()
	if err := cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd, noEnv); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"
	log := newLogger(cfg, &buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"message":"shown"`) {
		t.Fatalf("unexpected json output: %q", out)
	}

	buf.Reset()
	cfg.LogFormat = "console"
	cfg.LogLevel = "bogus"
	log = newLogger(cfg, &buf)
	if log.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("level = %v, want info fallback", log.GetLevel())
	}
	log.Info().Msg("console line")
	if strings.Contains(buf.String(), `"message"`) || !strings.Contains(buf.String(), "console line") {
		t.Fatalf("unexpected console output: %q", buf.String())
	}
}

type echoEngine struct{ text string }

func (e echoEngine) Complete(ctx context.Context, req llm.CompletionRequest) (llm.Completion, error) {
	return llm.Completion{Choices: []llm.Choice{{Text: e.text}}}, nil
}

func (echoEngine) Close() error { return nil }

func TestAskOnce(t *testing.T) {
	model := filepath.Join(t.TempDir(), "m.gguf")
	if err := os.WriteFile(model, []byte("gguf"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.ModelPath = model
	load := func(string, int, int) (llm.Engine, error) {
		return echoEngine{text: "  Rotate corn with beans.\n"}, nil
	}

	var out bytes.Buffer
	if err := askOnce(context.Background(), cfg, load, "How do I keep soil healthy?", &out); err != nil {
		t.Fatalf("askOnce: %v", err)
	}
	if out.String() != "Rotate corn with beans.\n" {
		t.Fatalf("output = %q", out.String())
	}

	cfg.ModelPath = filepath.Join(t.TempDir(), "absent.gguf")
	err := askOnce(context.Background(), cfg, load, "q", &out)
	if err == nil || !llm.IsModelMissing(err) {
		t.Fatalf("expected model missing error, got %v", err)
	}
}
