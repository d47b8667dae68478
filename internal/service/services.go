package service

import (
	"github.com/deppfellow/account-opening/internal/server"
)

// Services groups every business service.
type Services struct {
	Account *AccountService
}

// NewService builds the service container.
func NewService(s *server.Server) (*Services, error) {
	return &Services{
		Account: NewAccountService(s, WithCreationDelay(s.Config.Account.CreationDelay)),
	}, nil
}
