package router

import (
	"net/http"

	"github.com/deppfellow/account-opening/internal/handler"
	"github.com/deppfellow/account-opening/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerAccountRoutes registers the JSON API.
func registerAccountRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := r.Group("/api")

	api.POST(
		"/create-account",
		handler.Handle(h.Account.Handler, h.Account.CreateAccount, http.StatusCreated, handler.NewCreateAccountRequest),
		m.RateLimit.Limit("create_account"),
	)
}

// registerPageRoutes registers the HTML pages.
func registerPageRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	r.GET("/", h.Pages.Home)
	r.GET("/create-account", h.Pages.ShowForm)
	r.POST("/create-account", h.Pages.SubmitForm, m.RateLimit.Limit("create_account_form"))
}
