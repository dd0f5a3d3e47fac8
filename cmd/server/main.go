// @title        RothkoAI Annotation API
// @version      1.0
// @description  Stores named 3D annotation points and checks username/password credentials.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rothkoai/annotation-service/internal/api"
	"github.com/rothkoai/annotation-service/internal/api/handler"
	"github.com/rothkoai/annotation-service/internal/core/ports"
	"github.com/rothkoai/annotation-service/internal/core/service"
	"github.com/rothkoai/annotation-service/internal/infrastructure/config"
	redisstore "github.com/rothkoai/annotation-service/internal/infrastructure/db/redis"
	"github.com/rothkoai/annotation-service/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet; fall back to defaults.
		logger.Init(logger.Options{})
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty || cfg.IsDevelopment(),
		Service: "annotation-service",
	})

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to close store")
		}
	}()
	log.Info().Str("backend", cfg.Store.Backend).Msg("store ready")

	checks := map[string]handler.Checker{"store": st.ping}

	var keys ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		keys = redisstore.NewIdempotencyStore(rdb)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotency keys enabled")
	}

	e := api.NewRouter(api.Dependencies{
		Credentials:  service.NewAuthService(st.users, cfg.BcryptCost, logger.Component("credentials")),
		Annotations:  service.NewAnnotationService(st.annotations, keys, logger.Component("annotations")),
		HealthChecks: checks,
		CORSOrigins:  cfg.CORSOrigins,
		Logger:       logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
