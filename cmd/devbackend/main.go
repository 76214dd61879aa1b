package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrtrack/internal/devbackend"
	"hrtrack/internal/logging"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	seed := flag.Bool("seed", true, "load demo data")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := logging.New(os.Stderr, logging.ParseLevel(*level))

	store := devbackend.NewStore()
	if *seed {
		devbackend.Seed(store)
		logger.Info("seeded demo data", "email", devbackend.DemoEmail, "password", devbackend.DemoPassword)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           devbackend.New(store, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("devbackend listening", "addr", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
