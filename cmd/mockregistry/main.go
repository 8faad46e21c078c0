package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"folkv3/internal/mockregistry"
	"folkv3/internal/platform/config"
	"folkv3/internal/platform/httpserver"
	"folkv3/internal/platform/logger"
	"folkv3/internal/platform/metrics"
)

// main serves the seeded registry stub until interrupted.
func main() {
	cfg := config.MockRegistryFromEnv()
	log := logger.New(os.Getenv("FOLKV3_LOG_LEVEL"))

	handler := mockregistry.NewHandler(mockregistry.Seed(time.Now), log)

	router := newRouter(handler, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	srv := httpserver.New(cfg.Addr, router, log)

	log.Info("starting mock registry", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// newRouter serves the registry API with its served-request metrics on /metrics.
func newRouter(handler *mockregistry.Handler, reg prometheus.Registerer, gatherer prometheus.Gatherer) chi.Router {
	httpMetrics := metrics.NewHTTP(reg, "mockregistry")

	router := chi.NewRouter()
	router.Use(httpMetrics.Middleware)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.Mount("/", handler.Router())
	return router
}
