// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/gios-blog/runcoach/internal/banner"
	"github.com/gios-blog/runcoach/internal/coach"
	"github.com/gios-blog/runcoach/internal/config"
	"github.com/gios-blog/runcoach/internal/gemini"
	"github.com/gios-blog/runcoach/internal/http/routes"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config error")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Upstream model
	gen, notConfigured := newGenerator(ctx, cfg, logger)
	svc := coach.NewService(coach.Options{
		Generator:     gen,
		NotConfigured: notConfigured,
		HistoryLimit:  cfg.HistoryLimit,
		Timeout:       cfg.UpstreamTimeout,
	})

	// Router / server
	s := routes.New(routes.ServerOptions{
		Logger:       logger,
		Coach:        svc,
		Banners:      banner.NewPicker(banner.Pool, nil),
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("backend", string(cfg.Backend)).Msg("starting app")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newGenerator builds the configured backend. When it cannot, it returns
// the error coaching requests should report instead. The page still serves.
func newGenerator(ctx context.Context, cfg config.Config, logger zerolog.Logger) (coach.Generator, error) {
	notConfigured := coach.ErrNotConfigured
	if cfg.Backend == config.BackendVertex {
		notConfigured = coach.ErrVertexNotConfigured
	}

	if !cfg.HasCredential() {
		logger.Warn().Str("backend", string(cfg.Backend)).Msg("no upstream credential configured")
		return nil, notConfigured
	}

	switch cfg.Backend {
	case config.BackendVertex:
		vc, err := gemini.NewVertexClient(ctx, cfg.Vertex.Project, cfg.Vertex.Location, cfg.Gemini.Model)
		if err != nil {
			logger.Error().Err(err).Msg("vertex client unavailable")
			return nil, notConfigured
		}
		return vc, nil
	default:
		gc, err := gemini.New(cfg.Gemini.APIKey,
			gemini.WithBaseURL(cfg.Gemini.BaseURL),
			gemini.WithModel(cfg.Gemini.Model),
			gemini.WithHTTPClient(&http.Client{Timeout: cfg.UpstreamTimeout}),
		)
		if err != nil {
			logger.Error().Err(err).Msg("gemini client unavailable")
			return nil, notConfigured
		}
		return gc, nil
	}
}
