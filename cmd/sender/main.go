package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aaryashkc/Client-domain-management/internal/app/sender"
	"github.com/Aaryashkc/Client-domain-management/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting sender", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := sender.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize sender", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("sender stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("sender stopped gracefully")
}
