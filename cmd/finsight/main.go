package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/finsight/orchestrator/internal/aggregation"
	"github.com/finsight/orchestrator/internal/config"
	"github.com/finsight/orchestrator/internal/inference"
	"github.com/finsight/orchestrator/internal/server"
	"github.com/finsight/orchestrator/internal/source"
	"github.com/finsight/orchestrator/internal/workflow"
	"github.com/finsight/orchestrator/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Create logger
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	zapLogger, err := logger.NewLogger(logLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// Load configuration
	var configPaths []string
	if p := os.Getenv("FINSIGHT_CONFIG"); p != "" {
		configPaths = append(configPaths, p)
	}
	cfg, err := config.LoadConfig(configPaths...)
	if err != nil {
		zapLogger.Fatal("Failed to load configuration", zap.Error(err))
	}

	zapLogger.Info("Starting API",
		zap.String("title", cfg.APITitle),
		zap.String("version", cfg.APIVersion),
		zap.String("engine_endpoint", cfg.Engine.BaseURL),
		zap.String("inference_endpoint", cfg.Inference.BaseURL),
		zap.String("data_path", cfg.Data.BasePath),
	)

	// Create services
	store := source.NewFileStore(cfg.Data.BasePath, zapLogger)
	aggregator := aggregation.NewService(zapLogger, store)
	engine := workflow.NewClient(zapLogger, cfg.Engine)
	prober := inference.NewClient(zapLogger, cfg.Inference)

	// Create HTTP server
	srv := server.NewServer(
		zapLogger,
		cfg.APITitle,
		cfg.APIVersion,
		cfg.Server.CORSOrigins,
		aggregator,
		engine,
		prober,
	)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      srv.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down API")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zapLogger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
