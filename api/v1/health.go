package v1

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/proyectos-api/repositories"
)

const (
	serviceName    = "proyectos-api"
	serviceVersion = "1.0.0"
)

// HealthController reports service liveness and storage reachability
type HealthController struct {
	store repositories.Store
}

// NewHealthController creates a new health controller
func NewHealthController(store repositories.Store) *HealthController {
	return &HealthController{store: store}
}

// RegisterRoutes registers the welcome and health routes
func (c *HealthController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.Welcome)
	router.GET("/health", c.HealthCheck)
}

// Welcome lists the API entry points
func (c *HealthController) Welcome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
		"version": serviceVersion,
		"message": "Welcome to the employee and project staffing API",
		"links": gin.H{
			"empleados": "/empleado",
			"proyectos": "/proyecto",
			"health":    "/health",
		},
	})
}

// HealthCheck pings the store
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.store.Ping(pingCtx); err != nil {
		log.Printf("⚠️ Health check failed: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "error",
			"service":  serviceName,
			"database": "unreachable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  serviceName,
		"version":  serviceVersion,
		"database": "ok",
	})
}
