package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bytewave/siteapi/internal/api/handlers"
	"github.com/bytewave/siteapi/internal/api/middleware"
	"github.com/bytewave/siteapi/internal/config"
	"github.com/bytewave/siteapi/internal/mailer"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, sender mailer.Sender, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.CORS())

	// Non-POST, non-OPTIONS on the mail endpoints gets 405 (OPTIONS is
	// already answered by the CORS middleware)
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "Method not allowed"})
	})

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Quote & Contact Mail Relay",
			"endpoints": []string{
				"GET /health",
				"POST /api/send-quote",
				"POST /api/send-email",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiRoutes := router.Group("/api")
	apiRoutes.Use(middleware.Auth(cfg.Relay.APIToken, logger))
	{
		apiRoutes.POST("/send-quote", handlers.HandleSendQuote(cfg, sender, logger))
		apiRoutes.POST("/send-email", handlers.HandleSendContact(cfg, sender, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
