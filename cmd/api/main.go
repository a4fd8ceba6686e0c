package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"monarch-web/config"
	_ "monarch-web/docs" // Important for Swagger
	v1 "monarch-web/internal/delivery/http/v1"
	"monarch-web/internal/usecase"
	"monarch-web/pkg/logger"
	"monarch-web/pkg/redis"
	"monarch-web/pkg/security"
	"monarch-web/pkg/webhook"

	"github.com/gin-gonic/gin"
)

// @title           Monarch AI Website API
// @version         1.0
// @description     Contact form relay and website analysis endpoints behind the Monarch AI landing site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(cfg.IsProduction())
	logger.Log.Info("Starting monarch web", "port", cfg.Port, "mode", cfg.GinMode)

	audit := security.InitSecurityLogger("monarch-web", cfg.Environment())
	defer audit.Sync()

	// 3. Setup Redis (optional, rate limits fall back to memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 4. Setup Contact Webhook
	hook := webhook.NewClient(cfg.ContactWebhookURL, cfg.WebhookTimeout())
	if !hook.IsConfigured() {
		logger.Log.Warn("Contact webhook not configured - contact form will be unavailable")
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(hook, audit, cfg.ContactSource)
	analysisUC := usecase.NewAnalysisUsecase(cfg.AnalysisDelay())
	healthUC := usecase.NewHealthUsecase(contactUC)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		AnalysisUC: analysisUC,
		HealthUC:   healthUC,
		Config:     cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
