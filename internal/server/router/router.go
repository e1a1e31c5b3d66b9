package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/server/handlers"
	"github.com/mukeshvesalapu/MediShield-DR/internal/service/auth"
)

// Handlers bundles every HTTP adapter wired into the engine.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Floors  *handlers.FloorHandler
	Backup  *handlers.BackupHandler
	Restore *handlers.RestoreHandler
	Status  *handlers.StatusHandler
	Insight *handlers.InsightHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, authSvc *auth.Service, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "operational",
			"service":   "MediShield DR",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(authMiddleware(authSvc, logger))
	protected.GET("/floors", h.Floors.List)
	protected.PUT("/floors/:floorNumber", h.Floors.Update)
	protected.POST("/backup/run", h.Backup.Run)
	protected.GET("/backup/list", h.Backup.List)
	protected.POST("/restore/run", h.Restore.Latest)
	protected.GET("/status", h.Status.Get)
	protected.GET("/ai/analyze", h.Insight.Analyze)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func authMiddleware(authSvc *auth.Service, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No valid token provided"})
			return
		}

		claims, err := authSvc.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Warn("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		c.Set(handlers.ClaimsKey, claims)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
