package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"ruralai/internal/common/fsutil"
	"ruralai/internal/llm"
)

// Config holds runtime parameters for the service.
type Config struct {
	Addr                string   `json:"addr" yaml:"addr" toml:"addr"`
	ModelPath           string   `json:"model_path" yaml:"model_path" toml:"model_path"`
	ContextSize         int      `json:"context_size" yaml:"context_size" toml:"context_size"`
	Threads             int      `json:"threads" yaml:"threads" toml:"threads"`
	MaxTokens           int      `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`
	Temperature         float32  `json:"temperature" yaml:"temperature" toml:"temperature"`
	LoadOnStart         bool     `json:"load_on_start" yaml:"load_on_start" toml:"load_on_start"`
	InferTimeoutSeconds int      `json:"infer_timeout_seconds" yaml:"infer_timeout_seconds" toml:"infer_timeout_seconds"`
	MaxBodyBytes        int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	LogLevel            string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat           string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	CORSEnabled         bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins         []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	CORSMethods         []string `json:"cors_methods" yaml:"cors_methods" toml:"cors_methods"`
	CORSHeaders         []string `json:"cors_headers" yaml:"cors_headers" toml:"cors_headers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:         "0.0.0.0:5000",
		ModelPath:    llm.DefaultModelPath,
		ContextSize:  llm.DefaultContextSize,
		Threads:      llm.DefaultThreads,
		MaxTokens:    llm.DefaultMaxTokens,
		Temperature:  llm.DefaultTemperature,
		LoadOnStart:  true,
		MaxBodyBytes: 1 << 20,
		LogLevel:     "info",
		LogFormat:    "console",
	}
}

// Load reads a configuration file over the defaults, based on its extension.
// Keys missing from the file keep their default values.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Environment variables recognized by ApplyEnv.
const (
	EnvAddr      = "RURALAI_ADDR"
	EnvModelPath = "RURALAI_MODEL_PATH"
	EnvLogLevel  = "RURALAI_LOG_LEVEL"
)

// ApplyEnv overrides fields from the environment. lookup is os.LookupEnv in
// production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup(EnvModelPath); ok && v != "" {
		c.ModelPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Validate checks ranges and expands '~' in the model path.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature must be within [0,1], got %v", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.ContextSize <= 0 {
		return fmt.Errorf("context_size must be positive, got %d", c.ContextSize)
	}
	if c.Threads <= 0 {
		return fmt.Errorf("threads must be positive, got %d", c.Threads)
	}
	if c.InferTimeoutSeconds < 0 {
		return fmt.Errorf("infer_timeout_seconds must not be negative")
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("unsupported log_format: %s", c.LogFormat)
	}
	p, err := fsutil.ExpandHome(c.ModelPath)
	if err != nil {
		return err
	}
	c.ModelPath = p
	return nil
}
