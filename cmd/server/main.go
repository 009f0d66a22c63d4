// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework-service/config"
	"homework-service/internal/handler"
	"homework-service/internal/provider/ai"
	"homework-service/internal/provider/airtel"
	"homework-service/internal/provider/mpesa"
	"homework-service/internal/provider/paypal"
	"homework-service/internal/repository"
	"homework-service/internal/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env
	_ = godotenv.Load()

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("starting homework service")

	// Load configuration; provider modes are fixed here for the process
	// lifetime.
	cfg := config.Load(logger)

	logger.Info("configuration loaded",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port))

	// Initialize repositories
	paymentLog := repository.NewFilePaymentLog(cfg.PaymentLog.Path)

	// Initialize providers by mode
	var aiProvider ai.Provider
	if cfg.AIMode() == config.ModeReal {
		aiProvider = ai.NewOpenAIClient(cfg.OpenAI.APIKey)
	} else {
		aiProvider = ai.NewMockProvider()
	}

	var mpesaProvider mpesa.Provider
	if cfg.MpesaMode() == config.ModeReal {
		mpesaProvider = mpesa.NewClient(cfg.Mpesa)
	} else {
		mpesaProvider = mpesa.NewMockProvider()
	}

	paypalSimulator := paypal.NewSimulator(paymentLog, logger)
	airtelMock := airtel.NewMock(logger)

	// Initialize handlers
	askHandler := handler.NewAskHandler(aiProvider, logger)
	paymentHandler := handler.NewPaymentHandler(mpesaProvider, paypalSimulator, airtelMock, logger)

	// Setup routes
	r := router.SetupRoutes(askHandler, paymentHandler, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	logger.Info("homework service started successfully",
		zap.String("port", cfg.Server.Port),
		zap.String("environment", cfg.Server.Env))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
