package v1

import (
	"net/http"

	"monarch-web/config"
	"monarch-web/internal/delivery/http/middleware"
	"monarch-web/internal/delivery/http/response"
	"monarch-web/internal/domain"
	"monarch-web/internal/usecase"
	"monarch-web/internal/web"
	"monarch-web/internal/web/components"
	"monarch-web/pkg/logger"
	"monarch-web/pkg/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC  domain.ContactUsecase
	AnalysisUC domain.AnalysisUsecase
	HealthUC   usecase.HealthUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	validation.RegisterGinValidators()

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.SiteURL, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(embedOrigins(cfg), cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(cfg.RateLimitGlobalThreshold, cfg.RateLimitWindow())))
	// /v1/analyze has no side effects beyond its own rate limit and only accepts JSON
	r.Use(middleware.CSRFMiddleware(cfg.IsProduction(), "/v1/analyze"))

	static, err := web.Static()
	if err != nil {
		logger.Log.Error("embedded static assets unavailable", "error", err)
	} else {
		r.StaticFS("/static", http.FS(static))
	}

	contactLimit := middleware.RateLimitMiddleware(middleware.FormRateLimitConfig("contact", cfg.RateLimitContactThreshold, cfg.RateLimitWindow()))
	analyzeLimit := middleware.RateLimitMiddleware(middleware.FormRateLimitConfig("analyze", cfg.RateLimitContactThreshold, cfg.RateLimitWindow()))

	// Pages
	NewPageHandler(r, deps.ContactUC, deps.AnalysisUC, pageConfig(cfg), contactLimit, analyzeLimit)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	api := v1.Group("")
	api.Use(middleware.RequireJSON())
	{
		NewContactHandler(api, deps.ContactUC, contactLimit)
		NewAnalysisHandler(api, deps.AnalysisUC, analyzeLimit)
	}

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found", nil)
	})

	return r
}

func pageConfig(cfg *config.Config) components.PageConfig {
	return components.PageConfig{
		URL:     cfg.SiteURL,
		OGImage: cfg.SiteURL + "/static/og-image.svg",
		Embeds: components.Embeds{
			CalLink:       cfg.CalLink,
			CalNamespace:  cfg.CalNamespace,
			TypeformURL:   cfg.TypeformURL,
			ChatWidgetURL: cfg.ChatWidgetURL,
		},
	}
}

func embedOrigins(cfg *config.Config) middleware.EmbedOrigins {
	typeform := middleware.OriginOf(cfg.TypeformURL)
	chat := middleware.OriginOf(cfg.ChatWidgetURL)

	return middleware.EmbedOrigins{
		Scripts: []string{"https://app.cal.com", "https://embed.typeform.com"},
		Frames:  []string{"https://app.cal.com", "https://cal.com", typeform, chat},
		Connect: []string{"https://app.cal.com", "https://api.typeform.com", typeform},
	}
}
