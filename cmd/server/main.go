// Command server starts the MentorLaunch suggestion HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unite-hq/mentorlaunch/internal/adapter/ai/openrouter"
	"github.com/unite-hq/mentorlaunch/internal/adapter/ai/stub"
	"github.com/unite-hq/mentorlaunch/internal/adapter/cache/rediscache"
	"github.com/unite-hq/mentorlaunch/internal/adapter/httpserver"
	"github.com/unite-hq/mentorlaunch/internal/adapter/observability"
	"github.com/unite-hq/mentorlaunch/internal/adapter/repo/postgres"
	"github.com/unite-hq/mentorlaunch/internal/app"
	"github.com/unite-hq/mentorlaunch/internal/config"
	"github.com/unite-hq/mentorlaunch/internal/domain"
	"github.com/unite-hq/mentorlaunch/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	ctx := context.Background()

	// Persistence is a best-effort collaborator; the pipeline runs without it.
	var repo domain.SuggestionRepository
	var dbCheck, redisCheck func(context.Context) error
	if cfg.PersistenceEnabled() {
		pool, err := postgres.NewPool(ctx, cfg.DBURL)
		if err != nil {
			slog.Error("db connect failed", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		repo = postgres.NewSuggestionRepo(pool)
		dbCheck, _ = app.BuildReadinessChecks(pool, nil)
	} else {
		slog.Info("DB_URL not set; persistence disabled")
	}

	var cache domain.ResultCache
	if cfg.CacheEnabled() {
		rc := rediscache.New(cfg.RedisAddr, cfg.RedisDB)
		cache = rc
		_, redisCheck = app.BuildReadinessChecks(nil, rc)
	} else {
		slog.Info("REDIS_ADDR not set; result cache disabled")
	}

	var aicl domain.AIClient
	if cfg.OpenRouterAPIKey != "" {
		aicl = openrouter.New(cfg)
	} else {
		slog.Warn("OPENROUTER_API_KEY not set; using deterministic stub client")
		aicl = stub.New()
	}

	suggestSvc := usecase.NewSuggestService(aicl, repo, cache, cfg.CacheTTL)

	srv := httpserver.NewServer(cfg, suggestSvc, repo, dbCheck, redisCheck)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
