package v1

import (
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/audit"
	"portfolio-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  domain.HealthUsecase
	Config    *config.Config
	// Optional
	Redis      *goredis.Client
	Audit      *audit.Logger
	Registry   *prometheus.Registry // nil disables /metrics and contact metrics
	EnableDocs bool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: append([]string{cfg.FrontendURL}, cfg.AllowedOrigins...),
		PreviewPrefix:  cfg.CORSPreviewPrefix,
		AllowLocalhost: !cfg.IsProduction(),
	})) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	var contactMetrics *metrics.Contact
	if deps.Registry != nil {
		contactMetrics = metrics.NewContact(deps.Registry)
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	if deps.EnableDocs {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.Use(middleware.SecurityHeadersMiddleware())

	NewHealthHandler(api, deps.HealthUC)

	limiter := middleware.ContactRateLimitConfig(
		cfg.RateLimitContactLimit,
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
		deps.Redis,
	)
	limiter.OnLimited = func(c *gin.Context) {
		contactMetrics.Observe(metrics.OutcomeRateLimited, 0)
		deps.Audit.Log(c.Request.Context(), audit.Event{
			Event:     audit.EventRateLimitTriggered,
			IP:        c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
			RequestID: c.GetString(string(domain.KeyRequestID)),
			Details:   map[string]interface{}{"endpoint": c.FullPath()},
		})
	}

	// Public routes
	NewContactHandler(api, deps.ContactUC, contactMetrics, deps.Audit, middleware.RateLimitMiddleware(limiter))

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Not found"))
	})

	return r
}
