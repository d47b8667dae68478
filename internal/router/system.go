package router

import (
	"github.com/deppfellow/account-opening/internal/handler"
	"github.com/deppfellow/account-opening/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not account opening:
// health, the docs UI and the static docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
