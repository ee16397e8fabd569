package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/registrar/academics/internal/app/models/dto"
	"github.com/registrar/academics/internal/pkg/logger"
)

// Version is reported by the root banner
const Version = "1.0.0"

// Pinger checks that the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the service banner and the health check
type HealthController struct {
	db     Pinger
	routes []string
}

// NewHealthController creates a new HealthController; routes are listed by the banner
func NewHealthController(db Pinger, routes []string) *HealthController {
	return &HealthController{db: db, routes: routes}
}

// Root handles GET /
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfo{
		Message:         "Academic Records API",
		Status:          "running",
		Version:         Version,
		AvailableRoutes: hc.routes,
	})
}

// Health handles GET /health
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := hc.db.Ping(ctx); err != nil {
		logger.Warn().Err(err).Msg("Health check failed")
		c.JSON(http.StatusServiceUnavailable, dto.HealthStatus{Status: "unavailable", Database: "unreachable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthStatus{Status: "ok", Database: "ok"})
}
