package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"fnf/internal/app/server"
	"fnf/internal/platform/config"
	"fnf/internal/platform/logger"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	ctx := context.Background()
	app, err := server.New(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("startup failed", zap.Error(err))
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		zapLogger.Error("server stopped", zap.Error(err))
	}
}
