package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	checkSlotHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/check_slot"
	findSlotsHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/find_slots"
	healthHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/health"
	invalidateCacheHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/invalidate_cache"
	"github.com/m04kA/SMC-TableAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-TableAvailability/internal/infra/broker"
	checkSlotUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/check_slot"
	invalidateCacheUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/invalidate_cache"
	"github.com/m04kA/SMC-TableAvailability/migrations"
	"github.com/m04kA/SMC-TableAvailability/pkg/tracing"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the availability HTTP API and the invalidation consumer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, *configPath, migrateUp)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply database migrations on startup")
	return cmd
}

func runServe(ctx context.Context, configPath string, migrateUp bool) error {
	a, err := newApp(ctx, configPath, nil, true)
	if err != nil {
		return err
	}
	defer a.close()

	cfg, log := a.cfg, a.log
	log.Info("Starting SMC-TableAvailability %s...", Version)

	// Трассировка
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		ServiceName: cfg.Metrics.ServiceName,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("Tracing shutdown: %v", err)
		}
	}()

	// Миграции
	if migrateUp {
		applied, err := migrations.Up(ctx, a.exec, log)
		if err != nil {
			return err
		}
		log.Info("Migrations applied: %d", applied)
	}

	// Use cases
	findSlotsUseCase := a.findSlots()
	checkSlotUseCase := checkSlotUC.NewUseCase(findSlotsUseCase, log)
	invalidateUseCase := invalidateCacheUC.NewUseCase(a.cache, a.metrics, log)

	// Handlers
	findSlots := findSlotsHandler.NewHandler(findSlotsUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	invalidate := invalidateCacheHandler.NewHandler(invalidateUseCase, log)

	deps := map[string]healthHandler.Pinger{"database": a.db}
	if a.redis != nil {
		deps["redis"] = healthHandler.PingerFunc(func(ctx context.Context) error {
			return a.redis.Ping(ctx).Err()
		})
	}
	health := healthHandler.NewHandler(deps, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступность на день
	api.HandleFunc("/availability", findSlots.Handle).Methods(http.MethodGet)

	// Проверка слота перед созданием брони
	api.HandleFunc("/availability/check", checkSlot.Handle).Methods(http.MethodPost)

	// Сброс кеша по событию (вызывается сервисом бронирований)
	api.HandleFunc("/internal/availability/invalidate", invalidate.Handle).Methods(http.MethodPost)

	var handler http.Handler = r
	if cfg.Tracing.Enabled {
		handler = otelhttp.NewHandler(r, cfg.Metrics.ServiceName)
		log.Info("Tracing enabled (endpoint=%s)", cfg.Tracing.Endpoint)
	}

	var wg sync.WaitGroup

	// Потребитель событий инвалидации
	if cfg.Broker.Enabled {
		consumer := broker.NewConsumer(cfg.Broker.URL, cfg.Broker.Queue, invalidationHandler(invalidateUseCase), log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("Invalidation consumer stopped: %v", err)
			}
		}()
		log.Info("Invalidation consumer started (queue=%s)", cfg.Broker.Queue)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Ожидаем сигнал завершения или падение сервера
	select {
	case <-ctx.Done():
		log.Info("Shutting down server...")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	wg.Wait()

	log.Info("Server stopped gracefully")
	return nil
}

// invalidationHandler связывает очередь с use case; неизвестные события подтверждаются, чтобы не крутиться в очереди
func invalidationHandler(uc *invalidateCacheUC.UseCase) broker.Handler {
	return broker.HandlerFunc(func(ctx context.Context, event broker.InvalidationEvent) error {
		_, err := uc.Execute(ctx, &invalidateCacheUC.Request{
			Event:  event.Event,
			Source: invalidateCacheUC.SourceBroker,
		})
		if errors.Is(err, invalidateCacheUC.ErrUnknownEvent) {
			return nil
		}
		return err
	})
}
