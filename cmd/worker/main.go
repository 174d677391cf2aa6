package main

import (
	"context"
	"os/signal"
	"syscall"

	"hr-yayasan/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	application, err := app.BuildApp(logger, true)
	if err != nil {
		logger.Fatal("failed to build worker", zap.Error(err))
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("outbox worker starting",
		zap.String("broker", application.Config.KafkaBroker),
		zap.Duration("poll_interval", application.Config.OutboxPollInterval),
	)
	app.RunWorker(ctx, application)
}
