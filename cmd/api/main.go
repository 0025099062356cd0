package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/audit"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Portfolio Contact API
// @version         1.0
// @description     Contact form submission endpoint for the portfolio site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "delivery_mode", cfg.DeliveryMode)
	gin.SetMode(cfg.GinMode)

	// 3. Setup Mailer
	mailer, err := email.NewMailer(cfg)
	if err != nil {
		logger.Log.Error("Failed to build mailer", "error", err)
		os.Exit(1)
	}
	if smtpMailer, ok := mailer.(*email.SMTPMailer); ok && !smtpMailer.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 4. Setup Audit Log (nothing may exit the process after this point)
	auditLogger, err := audit.New("portfolio-backend", cfg.Environment())
	if err != nil {
		logger.Log.Error("Failed to build audit logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = auditLogger.Sync() }()

	// 5. Setup Redis (optional, rate limiter falls back to memory)
	var redisClient *goredis.Client
	if cfg.UpstashRedisURL != "" {
		redisClient, err = redis.New(context.Background(), redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// 6. Setup UseCases
	contactUC := usecase.NewContactUsecase(mailer)
	healthUC := usecase.NewHealthUsecase(cfg.DeliveryMode, redisClient)

	// 7. Setup Metrics
	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		HealthUC:   healthUC,
		Config:     cfg,
		Redis:      redisClient,
		Audit:      auditLogger,
		Registry:   registry,
		EnableDocs: !cfg.IsProduction(),
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
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
