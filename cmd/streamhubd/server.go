package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/streamhub/streamhub/internal/api"
	"github.com/streamhub/streamhub/internal/config"
	"github.com/streamhub/streamhub/internal/fallback"
	"github.com/streamhub/streamhub/internal/fetch"
	"github.com/streamhub/streamhub/internal/gateway"
	"github.com/streamhub/streamhub/internal/metrics"
	"github.com/streamhub/streamhub/internal/providers/consumet"
	"github.com/streamhub/streamhub/internal/providers/mangadex"
)

const probeTimeout = 5 * time.Second

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(configPath string) error {
	cfg, err := config.Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("config: %s", strings.Join(errs, "; "))
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	m := metrics.New()

	// Two fetch clients: the API client retries with backoff, the cover
	// client makes a single short-deadline attempt per image.
	apiFetch := fetch.New(fetch.Options{
		Attempts: cfg.Fetch.Attempts,
		Backoff:  cfg.Fetch.Backoff.Duration,
		Timeout:  cfg.Fetch.Timeout.Duration,
	}, logger.With("component", "fetch"), m)
	coverFetch := fetch.New(fetch.Options{
		Attempts: 1,
		Timeout:  cfg.Fetch.CoverTimeout.Duration,
	}, logger.With("component", "covers"), m)

	// === Providers ===
	mangaDex := mangadex.NewClient(apiFetch,
		mangadex.WithBaseURL(cfg.Providers.MangaDex.URL),
		mangadex.WithUploadsURL(cfg.Providers.MangaDex.UploadsURL),
	)
	gogoanime := consumet.NewAnimeClient(consumet.ProviderGogoanime, cfg.Providers.Consumet.URL, apiFetch)
	zoro := consumet.NewAnimeClient(consumet.ProviderZoro, cfg.Providers.Consumet.URL, apiFetch)
	flixhq := consumet.NewMovieClient(cfg.Providers.Consumet.URL, apiFetch)

	// === Gateways ===
	runner := fallback.NewRunner(logger.With("component", "fallback"), m)
	deps := api.Deps{
		Manga:  gateway.NewManga(mangaDex),
		Anime:  gateway.NewAnime(runner, gogoanime, zoro),
		Movies: gateway.NewMovies(runner, flixhq),
		Covers: coverFetch,
		Prober: api.ProbeFunc(func(ctx context.Context) []fallback.ProbeResult {
			return fallback.Probe(ctx, []fallback.Target{
				{Name: "consumet", URL: cfg.Providers.Consumet.URL},
				{Name: "mangadex", URL: cfg.Providers.MangaDex.URL + "/ping"},
			}, probeTimeout)
		}),
	}

	// === HTTP Setup ===
	srv, err := api.New(deps, version, logger.With("component", "api"))
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	mux.Handle("GET /metrics", m.Handler())

	handler := api.CORS(cfg.CORS.Origins, api.Instrument(mux, logger.With("component", "http"), m))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"consumet", cfg.Providers.Consumet.URL,
		"mangadex", cfg.Providers.MangaDex.URL,
		"log_level", cfg.Server.LogLevel,
		"version", version,
	)

	httpSrv := &http.Server{Addr: addr, Handler: handler}

	go func() {
		if err := httpSrv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
