package main

import (
	"time"

	"hr-yayasan/internal/app"
	"hr-yayasan/internal/bootstrap"
	"hr-yayasan/internal/shared/apperror"

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

	apperror.Init()

	application, err := app.BuildApp(logger, false)
	if err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}
	defer application.Close()

	router, err := app.BuildRouter(application)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	bootstrap.StartHTTPServer(router, bootstrap.ServerConfig{
		Port:         application.Config.HTTPPort,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, bootstrap.NewStdoutAuditLogger())
}
