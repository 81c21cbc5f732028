package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"trusthome_backend/internal/scheduler"
	"trusthome_backend/internal/telegram"
	"trusthome_backend/platform/config"
	"trusthome_backend/platform/logger"
)

// The notifier consumes scheduled viewing reminder tasks and re-notifies the
// group chat on the morning of each viewing.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting notifier worker", "env", cfg.Env, "queue", cfg.AsynqQueueName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chatClient := telegram.NewClient(cfg, log)
	if chatClient == nil {
		log.Warn("TELEGRAM_BOT_TOKEN not configured; reminders will fail until it is set")
	}

	worker, err := scheduler.NewWorker(cfg, cfg, chatClient, log)
	if err != nil {
		log.Error("failed to initialize notifier worker", "error", err)
		panic("failed to initialize notifier worker: " + err.Error())
	}

	worker.Run(ctx)
	log.Info("notifier worker stopped")
}
