package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/account-opening/internal/account"
	"github.com/deppfellow/account-opening/internal/config"
	"github.com/deppfellow/account-opening/internal/handler"
	"github.com/deppfellow/account-opening/internal/lib/view"
	"github.com/deppfellow/account-opening/internal/server"
	"github.com/deppfellow/account-opening/internal/service"
)

func TestSubmitForm_ServiceFailureRendersForm(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	s, err := server.New(config.Default(), &logger, nil)
	require.NoError(t, err)

	pages := handler.NewPageHandler(s, service.NewAccountService(s, service.WithCreationDelay(time.Minute)))

	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	e := echo.New()
	e.Renderer = renderer

	values := url.Values{"nickname": {"My Account"}, "accountType": {"everyday"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/create-account", strings.NewReader(values.Encode())).WithContext(ctx)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	require.NoError(t, pages.SubmitForm(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))

	page := rec.Body.String()
	assert.Contains(t, page, account.MsgAccountCreateFailed)
	assert.Contains(t, page, `value="My Account"`)
	assert.Contains(t, page, "Create Account")
	assert.NotContains(t, page, `{"error"`)
}
