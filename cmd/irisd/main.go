package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"irisd/internal/config"
	"irisd/internal/httpapi"
	"irisd/internal/registry"
	"irisd/internal/service"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	// Flags with environment variable defaults
	addr := flag.String("addr", envOr("IRISD_ADDR", ":8080"), "HTTP listen address, e.g. :8080")
	modelsDir := flag.String("models-dir", envOr("IRISD_MODELS_DIR", "/var/lib/irisd/models"), "Directory to scan for *.json model artifacts")
	defaultModel := flag.String("default-model", os.Getenv("IRISD_DEFAULT_MODEL"), "Default model id when request omits model")
	configPath := flag.String("config", os.Getenv("IRISD_CONFIG"), "Optional config file (.yaml/.json/.toml)")
	logLevel := flag.String("log-level", envOr("IRISD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		cfg = loaded
	}
	// Explicit flags win over file values; file values win over defaults.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["addr"] || cfg.Addr == "" {
		cfg.Addr = *addr
	}
	if set["models-dir"] || cfg.ModelsDir == "" {
		cfg.ModelsDir = *modelsDir
	}
	if set["default-model"] || cfg.DefaultModel == "" {
		cfg.DefaultModel = *defaultModel
	}
	if set["log-level"] || cfg.LogLevel == "" {
		cfg.LogLevel = *logLevel
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}

	// Load registry by scanning the models dir for *.json artifacts
	reg, err := registry.LoadDir(cfg.ModelsDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.ModelsDir).Msg("failed to load models")
	}
	if cfg.DefaultModel == "" && len(reg) == 1 {
		cfg.DefaultModel = reg[0].ID
	}

	svc := service.NewWithConfig(service.ServiceConfig{
		Registry:      reg,
		DefaultModel:  cfg.DefaultModel,
		MaxQueueDepth: cfg.MaxQueueDepth,
		MaxInflight:   cfg.MaxInflight,
		MaxWait:       time.Duration(cfg.MaxWaitMS) * time.Millisecond,
	})

	// Base context canceled on shutdown so inflight handlers stop too.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	httpapi.SetLogger(logger)
	httpapi.SetBaseContext(baseCtx)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetPredictTimeoutSeconds(cfg.PredictTimeoutSec)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders)
	httpapi.SetRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Load the default artifact before accepting traffic, matching the
	// readiness contract: /readyz flips once this returns.
	if err := svc.Warmup(baseCtx); err != nil {
		logger.Fatal().Err(err).Str("model", cfg.DefaultModel).Msg("failed to load default model")
	}
	logger.Info().Str("model", cfg.DefaultModel).Int("registry", len(reg)).Msg("model loaded")

	mux := httpapi.NewMux(svc)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("models_dir", cfg.ModelsDir).Msg("irisd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	_ = svc.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	cancelBase()
}
