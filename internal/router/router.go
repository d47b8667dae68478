// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and the route groups, mapping paths to their
// handlers.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/deppfellow/account-opening/internal/handler"
	"github.com/deppfellow/account-opening/internal/lib/view"
	"github.com/deppfellow/account-opening/internal/middleware"
	"github.com/deppfellow/account-opening/internal/server"
)

// NewRouter builds the echo instance with every middleware and route.
func NewRouter(s *server.Server, h *handler.Handlers) (*echo.Echo, error) {
	middlewares := middleware.NewMiddlewares(s)

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load page templates")
	}

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Renderer = renderer
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)
	registerPageRoutes(router, h, middlewares)
	registerAccountRoutes(router, h, middlewares)

	return router, nil
}
