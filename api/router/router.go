package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/netinventorypro/netinventorypro/api/handler"
	"github.com/netinventorypro/netinventorypro/internal/service"
	"github.com/netinventorypro/netinventorypro/pkg/logger"
)

// SetupRouter 设置路由
func SetupRouter(collector *service.InventoryCollector) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())

	inventoryHandler := handler.NewInventoryHandler(collector)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "NetInventory Pro",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", inventoryHandler.Health)

		inventory := v1.Group("/inventory")
		{
			inventory.POST("/collect", inventoryHandler.Collect)
			inventory.GET("/platforms", inventoryHandler.Platforms)
		}
		v1.GET("/runs/:run_id", inventoryHandler.GetRun)
	}

	return r
}

// RequestIDMiddleware 请求ID中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// LoggingMiddleware 日志中间件
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		}).Info("HTTP Request")
	}
}
