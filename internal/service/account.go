package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deppfellow/account-opening/internal/account"
	"github.com/deppfellow/account-opening/internal/errs"
	"github.com/deppfellow/account-opening/internal/server"
	"github.com/deppfellow/account-opening/internal/validation"
)

// AccountService creates (mocked) bank accounts. Nothing is stored.
type AccountService struct {
	server *server.Server

	delay time.Duration
	now   func() time.Time
	newID func() string
}

// AccountOption customizes an AccountService.
type AccountOption func(*AccountService)

// WithCreationDelay sets the simulated latency of a creation.
func WithCreationDelay(d time.Duration) AccountOption {
	return func(a *AccountService) {
		a.delay = d
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) AccountOption {
	return func(a *AccountService) {
		a.now = now
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) AccountOption {
	return func(a *AccountService) {
		a.newID = newID
	}
}

// NewAccountService constructs an AccountService.
func NewAccountService(s *server.Server, opts ...AccountOption) *AccountService {
	a := &AccountService{
		server: s,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Create validates raw input and creates the account.
func (a *AccountService) Create(ctx context.Context, in account.RawInput) (*account.Account, error) {
	return a.create(ctx, account.Validate(in))
}

// CreateForm validates typed form values and creates the account.
func (a *AccountService) CreateForm(ctx context.Context, f account.FormData) (*account.Account, error) {
	return a.create(ctx, account.ValidateForm(f))
}

func (a *AccountService) create(ctx context.Context, result account.Result) (*account.Account, error) {
	logger := a.logger(ctx).With().
		Str("function", "AccountService.Create").
		Str("account_type", string(result.Sanitized.AccountType)).
		Logger()

	if !result.IsValid {
		fieldErrors := validation.FromResult(result).FieldErrors()

		logger.Warn().
			Interface("errors", fieldErrors).
			Msg("account data rejected")

		return nil, errs.ValidationError(fieldErrors)
	}

	if err := a.wait(ctx); err != nil {
		return nil, fmt.Errorf("account creation interrupted: %w", err)
	}

	data := result.Sanitized
	created := &account.Account{
		ID:          a.newID(),
		Nickname:    data.Nickname,
		AccountType: data.AccountType,
		CreatedAt:   a.now().UTC(),
	}

	if data.AccountType == account.AccountTypeSavings {
		amount, err := account.ParseSavingsGoal(data.Goal())
		if err != nil {
			// Check already accepted the goal; reaching this is a bug.
			return nil, fmt.Errorf("savings goal changed after validation: %w", err)
		}
		goal := amount.InexactFloat64()
		created.SavingsGoal = &goal
	}

	logger.Info().
		Str("account_id", created.ID).
		Msg("account created")

	return created, nil
}

// wait simulates the latency of a real account backend.
func (a *AccountService) wait(ctx context.Context) error {
	if a.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// logger prefers the request-scoped logger attached to ctx.
func (a *AccountService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return a.server.Logger
}
