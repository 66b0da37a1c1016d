package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ruralai/internal/config"
	"ruralai/internal/httpapi"
	"ruralai/internal/llm"
	"ruralai/internal/manager"
)

// newRootCmd wires flags over config file and environment into the serve command.
func newRootCmd() *cobra.Command {
	def := config.Default()

	root := &cobra.Command{
		Use:           "ruralai",
		Short:         "Offline farming assistant backed by a local llama.cpp model",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, os.LookupEnv)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, cmd.ErrOrStderr())
		},
	}

	f := root.PersistentFlags()
	f.String("config", "", "Config file (.yaml, .yml, .json, .toml)")
	f.String("addr", def.Addr, "HTTP listen address (env RURALAI_ADDR)")
	f.String("model-path", def.ModelPath, "Path to the .gguf model file (env RURALAI_MODEL_PATH)")
	f.Int("ctx-size", def.ContextSize, "Model context window in tokens")
	f.Int("threads", def.Threads, "CPU threads used for generation")
	f.Int("max-tokens", def.MaxTokens, "Upper bound on generated tokens per answer")
	f.Float32("temperature", def.Temperature, "Sampling temperature in [0,1]")
	f.Bool("load-on-start", def.LoadOnStart, "Load the model before serving instead of on the first question")
	f.Int("infer-timeout", def.InferTimeoutSeconds, "Per-answer timeout in seconds (0 disables)")
	f.Int64("max-body-bytes", def.MaxBodyBytes, "Maximum request body size")
	f.String("log-level", def.LogLevel, "Log level: debug|info|warn|error (env RURALAI_LOG_LEVEL)")
	f.String("log-format", def.LogFormat, "Log format: console|json")
	f.Bool("cors-enabled", def.CORSEnabled, "Enable CORS")
	f.String("cors-origins", "", "Comma-separated allowed origins")
	f.String("cors-methods", "GET,POST,OPTIONS", "Comma-separated allowed methods")
	f.String("cors-headers", "Content-Type", "Comma-separated allowed headers")

	root.AddCommand(newAskCmd())
	return root
}

// newAskCmd answers a single question from the command line, without HTTP.
func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ask <question>",
		Short:   "Answer one question and exit",
		Example: "  ruralai ask \"When should I plant garlic?\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, os.LookupEnv)
			if err != nil {
				return err
			}
			return askOnce(cmd.Context(), cfg, nil, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
}

// askOnce loads the model, prints one answer and frees the model.
func askOnce(ctx context.Context, cfg config.Config, load llm.Loader, question string, out io.Writer) error {
	res, err := llm.Ask(ctx, llm.Options{
		ModelPath:   cfg.ModelPath,
		ContextSize: cfg.ContextSize,
		Threads:     cfg.Threads,
		Loader:      load,
	}, llm.Params{MaxTokens: cfg.MaxTokens, Temperature: cfg.Temperature}, question)
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, res.Text)
	return err
}

// resolveConfig applies, in increasing precedence: defaults, the config file,
// the environment, then flags the user actually set.
func resolveConfig(cmd *cobra.Command, lookup func(string) (string, bool)) (config.Config, error) {
	flags := cmd.Flags()
	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv(lookup)

	changed := flags.Changed
	if changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if changed("model-path") {
		cfg.ModelPath, _ = flags.GetString("model-path")
	}
	if changed("ctx-size") {
		cfg.ContextSize, _ = flags.GetInt("ctx-size")
	}
	if changed("threads") {
		cfg.Threads, _ = flags.GetInt("threads")
	}
	if changed("max-tokens") {
		cfg.MaxTokens, _ = flags.GetInt("max-tokens")
	}
	if changed("temperature") {
		cfg.Temperature, _ = flags.GetFloat32("temperature")
	}
	if changed("load-on-start") {
		cfg.LoadOnStart, _ = flags.GetBool("load-on-start")
	}
	if changed("infer-timeout") {
		cfg.InferTimeoutSeconds, _ = flags.GetInt("infer-timeout")
	}
	if changed("max-body-bytes") {
		cfg.MaxBodyBytes, _ = flags.GetInt64("max-body-bytes")
	}
	if changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if changed("cors-enabled") {
		cfg.CORSEnabled, _ = flags.GetBool("cors-enabled")
	}
	for name, dst := range map[string]*[]string{
		"cors-origins": &cfg.CORSOrigins,
		"cors-methods": &cfg.CORSMethods,
		"cors-headers": &cfg.CORSHeaders,
	} {
		if changed(name) || len(*dst) == 0 {
			v, _ := flags.GetString(name)
			*dst = splitCSV(v)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger from the configured level and format.
func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	out := w
	if cfg.LogFormat != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// serve loads the model (unless deferred), then serves HTTP until SIGINT/SIGTERM.
func serve(ctx context.Context, cfg config.Config, logOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := newLogger(cfg, logOut)
	httpapi.SetLogger(log)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, cfg.CORSMethods, cfg.CORSHeaders)

	mgr := manager.New(manager.Config{
		ModelPath:    cfg.ModelPath,
		ContextSize:  cfg.ContextSize,
		Threads:      cfg.Threads,
		Params:       llm.Params{MaxTokens: cfg.MaxTokens, Temperature: cfg.Temperature},
		InferTimeout: time.Duration(cfg.InferTimeoutSeconds) * time.Second,
		Logger:       &log,
		Publisher:    manager.LogPublisher{Logger: log},
	})
	defer mgr.Close()

	if !llm.LlamaBuilt() {
		log.Warn().Msg("built without llama support (missing 'llama' build tag); answers are unavailable")
	}
	if cfg.LoadOnStart {
		if err := mgr.Init(ctx); err != nil {
			log.Warn().Str("model_path", cfg.ModelPath).Msg("starting without a model; it will be retried on the first question")
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	httpapi.SetBaseContext(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(mgr),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("model_path", cfg.ModelPath).Msg("ruralai listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// splitCSV splits a comma-separated list, trimming blanks.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
