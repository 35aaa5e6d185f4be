package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/swapi-mock/internal/config"
	"github.com/maxviazov/swapi-mock/internal/handler"
	"github.com/maxviazov/swapi-mock/internal/logger"
	"github.com/maxviazov/swapi-mock/internal/repository/memory"
	"github.com/maxviazov/swapi-mock/internal/service"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "path to config file (empty for defaults + env)")
	flag.Parse()

	// Load application config
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	appLogger.Info().Msg("✅ Logger initialized successfully")

	// Tables must exist before the listener accepts anything.
	store := memory.New(cfg.Data.Base(time.Now()), appLogger)

	baseURL := cfg.Server.PublicURL()
	people := service.NewResourceService(store.People(), memory.PeopleEndpoint, baseURL, appLogger)
	planets := service.NewResourceService(store.Planets(), memory.PlanetsEndpoint, baseURL, appLogger)

	if cfg.Server.Env == "prod" || cfg.Server.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(store, people, planets, handler.Options{
		Logger:  appLogger,
		Metrics: handler.NewMetrics("swapi_mock"),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	appLogger.Info().
		Str("addr", srv.Addr).
		Str("base_url", baseURL).
		Msg("🚀 Service started")

	select {
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown requested")
	case err := <-serveErr:
		if err != nil {
			appLogger.Error().Err(err).Msg("http server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn().Err(err).Msg("http shutdown incomplete")
		return
	}
	appLogger.Info().Msg("service stopped")
}
