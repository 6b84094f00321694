package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/ai"
	"github.com/Supa-mustea/Visualfind-store/internal/api"
	"github.com/Supa-mustea/Visualfind-store/internal/config"
	"github.com/Supa-mustea/Visualfind-store/internal/paystack"
	"github.com/Supa-mustea/Visualfind-store/internal/repository/memory"
	"github.com/Supa-mustea/Visualfind-store/internal/service"
	"github.com/Supa-mustea/Visualfind-store/internal/sourcing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting VisualFind store server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		logger.Fatal("Failed to create uploads directory", zap.Error(err))
	}

	// Initialize the in-memory store with the demo dataset
	repos := memory.NewRepositories(logger)
	if err := memory.Seed(context.Background(), repos); err != nil {
		logger.Fatal("Failed to seed store", zap.Error(err))
	}

	// Initialize services
	sourcingSvc := sourcing.NewService(logger)
	aiSvc := ai.NewService(cfg.AI, logger)
	paystackClient := paystack.NewClient(cfg.Paystack, logger)
	replies := service.NewReplyScheduler(repos.ChatMessage, aiSvc, cfg.Chat.ReplyDelay, logger)

	// Initialize router
	router := api.NewRouter(cfg, repos, api.Services{
		Sourcing: sourcingSvc,
		AI:       aiSvc,
		Paystack: paystackClient,
		Replies:  replies,
	}, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Pending bot replies are cancelled, not waited out
	replies.Close()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
