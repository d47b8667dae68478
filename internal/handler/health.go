package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/account-opening/internal/config"
	"github.com/deppfellow/account-opening/internal/middleware"
	"github.com/deppfellow/account-opening/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
}

// HealthHandler reports liveness for load balancers and uptime monitors.
// The service has no downstream dependency, so it is healthy while it serves.
type HealthHandler struct {
	Handler
	started time.Time
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		started: time.Now(),
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	middleware.GetLogger(c).Debug().
		Str("operation", "health_check").
		Msg("health check passed")

	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Service:     config.ServiceName,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Uptime:      time.Since(h.started).Round(time.Second).String(),
	})
}
