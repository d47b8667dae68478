package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/account-opening/internal/account"
	"github.com/deppfellow/account-opening/internal/errs"
	"github.com/deppfellow/account-opening/internal/form"
	"github.com/deppfellow/account-opening/internal/lib/view"
	"github.com/deppfellow/account-opening/internal/middleware"
	"github.com/deppfellow/account-opening/internal/server"
	"github.com/deppfellow/account-opening/internal/service"
)

// SuccessRedirect is where a successful form submission lands.
const SuccessRedirect = "/?success=true"

// PageHandler serves the HTML home page and create-account form.
type PageHandler struct {
	Handler
	accounts *service.AccountService
}

func NewPageHandler(s *server.Server, accounts *service.AccountService) *PageHandler {
	return &PageHandler{
		Handler:  NewHandler(s),
		accounts: accounts,
	}
}

// Home renders the landing page, with the success banner on ?success=true.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, string(view.TemplateHome), view.NewHomePage(c.QueryParam("success") == "true"))
}

// ShowForm renders an empty create-account form.
func (h *PageHandler) ShowForm(c echo.Context) error {
	return c.Render(http.StatusOK, string(view.TemplateCreateAccount), view.NewCreateAccountPage(form.Initial()))
}

// SubmitForm validates the posted form. Invalid input re-renders the form
// with inline errors (422) and never reaches the service; valid input creates
// the account and redirects home (303). A service failure re-renders the form
// with a page-level error (500).
func (h *PageHandler) SubmitForm(c echo.Context) error {
	logger := middleware.GetLogger(c)

	var values account.FormData
	if err := c.Bind(&values); err != nil {
		return errs.NewInvalidRequestError(account.MsgInvalidRequestData)
	}

	state, result := form.FromValues(values).Submit()
	if !result.IsValid {
		logger.Info().
			Interface("errors", result.Errors).
			Msg("form submission rejected")

		return c.Render(http.StatusUnprocessableEntity, string(view.TemplateCreateAccount), view.NewCreateAccountPage(state))
	}

	created, err := h.accounts.CreateForm(c.Request().Context(), state.Values)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("form account creation failed")

		state = state.WithFormError(account.MsgAccountCreateFailed)
		return c.Render(http.StatusInternalServerError, string(view.TemplateCreateAccount), view.NewCreateAccountPage(state))
	}

	logger.Info().
		Str("account_id", created.ID).
		Msg("account created from form")

	return c.Redirect(http.StatusSeeOther, SuccessRedirect)
}
