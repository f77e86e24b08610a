package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/stockwatch/docs"
	"github.com/tair/stockwatch/internal/inventory"
	"github.com/tair/stockwatch/internal/inventory/cache"
	httpDelivery "github.com/tair/stockwatch/internal/inventory/delivery/http"
	"github.com/tair/stockwatch/internal/inventory/usecase/command"
	"github.com/tair/stockwatch/kafka"
	"github.com/tair/stockwatch/pkg/config"
	"github.com/tair/stockwatch/pkg/logger"
	"github.com/tair/stockwatch/pkg/tracing"
)

const serviceVersion = "1.0.0"

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Init("stockwatch", true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.Log.Level)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.Log.Level).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting stockwatch service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.ServiceName, serviceVersion, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Tracing disabled: failed to initialize tracer")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				_ = tracing.Shutdown(shutdownCtx, tp)
			}()
		}
	}

	store, err := inventory.OpenStorage(ctx, cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer store.Close()

	var (
		publisher   command.AlertPublisher
		invalidator command.CacheInvalidator
		listCache   httpDelivery.ListCache
	)

	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("List cache disabled")
		} else {
			defer client.Close()
			lc := cache.NewListCache(client, cfg.Redis.TTL)
			invalidator = lc
			listCache = lc
		}
	}

	if len(cfg.Kafka.Brokers) > 0 {
		pub, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Reorder alerts disabled")
		} else {
			defer pub.Close()
			publisher = pub
		}
	}

	// Initialize handler with Wire DI
	handler, err := inventory.InitializeHTTPHandler(store.Repo, cfg, publisher, invalidator, listCache, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	server := newHTTPServer(cfg, handler, store.Ping)

	go func() {
		logger.Logger.Info().
			Str("port", cfg.Server.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Logger.Info().Msg("Server exited")
}

func newHTTPServer(cfg *config.Config, handler *httpDelivery.ItemHandler, ping httpDelivery.HealthChecker) *http.Server {
	router := mux.NewRouter()

	mwConfig := httpDelivery.DefaultMiddlewareConfig(cfg.Server.RequestTimeout, cfg.Tracing.Enabled)
	httpDelivery.RegisterMiddlewares(router, mwConfig)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, ping)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return &http.Server{
		Addr:              ":" + cfg.Server.HTTPPort,
		Handler:           httpDelivery.SetupCORS(mwConfig)(router),
		ReadHeaderTimeout: cfg.Server.RequestTimeout,
	}
}
