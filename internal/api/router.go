package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/carrier-backend-go/internal/config"
	"github.com/jengzang/carrier-backend-go/internal/handler"
	"github.com/jengzang/carrier-backend-go/internal/middleware"
	"go.uber.org/zap"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, carrier *handler.CarrierHandler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Carrier Backend API is running",
		})
	})

	writes := []gin.HandlerFunc{}
	if cfg.AuthEnabled {
		writes = append(writes, middleware.Auth(cfg.JWTSecret))
	}

	api := r.Group("/api/v1")
	{
		api.GET("/prediction", carrier.GetPrediction)
		api.GET("/days", carrier.GetDays)

		protected := api.Group("", writes...)
		{
			protected.PUT("/cell", carrier.UpdateCell)
			location := []gin.HandlerFunc{}
			if cfg.LocationRateLimit > 0 {
				limiter := middleware.NewRateLimiter(cfg.LocationRateLimit, cfg.LocationRateWindow)
				location = append(location, middleware.RateLimit(limiter))
			}
			protected.POST("/location", append(location, carrier.UpdateLocation)...)
		}
	}

	return r
}
