package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dealbridge/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, log *zap.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIPRate, cfg.RateLimit.PerIPBurst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		deals := v1.Group("/deals")
		{
			deals.POST("", handler.CreateDeal)
			deals.GET("", handler.ListDeals)
			deals.GET("/:id", handler.GetDeal)
			deals.GET("/:id/matches", handler.FindMatchingBuyers)
		}

		profiles := v1.Group("/company-profiles")
		{
			profiles.POST("", handler.CreateCompanyProfile)
			profiles.GET("/:id", handler.GetCompanyProfile)
		}

		buyers := v1.Group("/buyers")
		{
			buyers.POST("", handler.CreateBuyer)
		}
	}

	return router
}
