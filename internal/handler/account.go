package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/account-opening/internal/account"
	"github.com/deppfellow/account-opening/internal/server"
	"github.com/deppfellow/account-opening/internal/service"
	"github.com/deppfellow/account-opening/internal/validation"
)

// CreateAccountRequest is the body of POST /api/create-account.
//
// It keeps the untyped object so the sanitizer sees exactly what the client
// sent. Decoding runs the shape guard.
type CreateAccountRequest struct {
	input   account.RawInput
	decoded bool
}

func NewCreateAccountRequest() *CreateAccountRequest {
	return &CreateAccountRequest{}
}

func (r *CreateAccountRequest) UnmarshalJSON(data []byte) error {
	input, err := account.ParseRequest(data)
	if err != nil {
		return err
	}

	r.input = input
	r.decoded = true
	return nil
}

// Validate fails with a *account.ShapeError when no body was decoded and
// with the rule failures otherwise.
func (r *CreateAccountRequest) Validate() error {
	if !r.decoded {
		return &account.ShapeError{Reason: "empty body"}
	}

	return validation.ResultError(account.Validate(r.input))
}

// Input returns the decoded body.
func (r *CreateAccountRequest) Input() account.RawInput {
	return r.input
}

// CreateAccountResponse is the 201 body.
type CreateAccountResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Account *account.Account `json:"account"`
}

type AccountHandler struct {
	Handler
	accounts *service.AccountService
}

func NewAccountHandler(s *server.Server, accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{
		Handler:  NewHandler(s),
		accounts: accounts,
	}
}

// CreateAccount creates the account from an already validated body.
func (h *AccountHandler) CreateAccount(c echo.Context, req *CreateAccountRequest) (*CreateAccountResponse, error) {
	created, err := h.accounts.Create(c.Request().Context(), req.Input())
	if err != nil {
		return nil, err
	}

	return &CreateAccountResponse{
		Success: true,
		Message: account.MsgAccountCreated,
		Account: created,
	}, nil
}
