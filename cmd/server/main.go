package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"vosul/internal/app"
	"vosul/internal/config"
	"vosul/internal/handler"
	"vosul/internal/logger"
	"vosul/internal/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Log, cfg.Server.Environment)
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := app.Build(cfg, log)
	if err != nil {
		return err
	}

	// A failed initial load leaves /readyz failing until a reload succeeds
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Data.ReloadTimeout)
	if _, err := a.Store.Load(loadCtx); err != nil {
		log.Error().Err(err).Msg("initial dataset load failed")
	}
	cancelLoad()

	if a.Reloader != nil {
		a.Reloader.Start()
		defer a.Reloader.Stop()
	}

	// Initialize handlers
	calcH := handler.NewCalculateHandler(a.Registry, log)
	dashH := handler.NewDashboardHandler(a.Reports, log)
	healthH := handler.NewHealthHandler(a.Store)

	// Setup router
	r := router.Setup(cfg, log, calcH, dashH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
