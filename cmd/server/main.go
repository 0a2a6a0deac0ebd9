package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"salon-management-api/internal/config"
	"salon-management-api/internal/handler"
	"salon-management-api/internal/middleware"
	"salon-management-api/internal/notify"
	"salon-management-api/internal/store"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg := config.Load()

	st := store.New(cfg.DataDir, logger)
	dispatcher := notify.NewDispatcher(notify.NewLogSender(logger), logger)
	h := handler.New(st, dispatcher, logger)

	chain := []middleware.Middleware{
		middleware.Logging(logger),
		middleware.CORS(cfg.ClientOrigin),
	}
	if cfg.RateLimitRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		chain = append(chain, middleware.RateLimit(rl))
		logger.Info("auth rate limit enabled", "rps", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.Chain(h.Routes(), chain...),
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "data", cfg.DataDir, "origin", cfg.ClientOrigin)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http", "err", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	dispatcher.Wait()
}
