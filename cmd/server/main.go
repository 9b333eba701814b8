package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yusufkecer/bmi-calculator-backend/internal/config"
	"github.com/yusufkecer/bmi-calculator-backend/internal/logger"
	"github.com/yusufkecer/bmi-calculator-backend/internal/metrics"
	"github.com/yusufkecer/bmi-calculator-backend/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.New(cfg)

	r := router.New(router.Options{
		AllowedOrigins: cfg.Origins(),
		Logger:         lg,
		Metrics:        metrics.New(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		lg.Info("server starting", "addr", srv.Addr, "debug", cfg.Debug)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	lg.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	lg.Info("server exited gracefully")
}
