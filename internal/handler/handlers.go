package handler

import (
	"github.com/deppfellow/account-opening/internal/server"
	"github.com/deppfellow/account-opening/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Account *AccountHandler
	Pages   *PageHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Account: NewAccountHandler(s, services.Account),
		Pages:   NewPageHandler(s, services.Account),
	}
}
