package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/account-opening/internal/account"
	"github.com/deppfellow/account-opening/internal/config"
	"github.com/deppfellow/account-opening/internal/errs"
	"github.com/deppfellow/account-opening/internal/server"
	"github.com/deppfellow/account-opening/internal/service"
)

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

func newServer(t *testing.T) *server.Server {
	t.Helper()

	logger := zerolog.Nop()
	s, err := server.New(config.Default(), &logger, nil)
	require.NoError(t, err)
	return s
}

func newAccountService(t *testing.T, opts ...service.AccountOption) *service.AccountService {
	t.Helper()

	opts = append([]service.AccountOption{
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithIDGenerator(func() string { return "acc-1" }),
	}, opts...)

	return service.NewAccountService(newServer(t), opts...)
}

func TestAccountService_CreateEveryday(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)

	created, err := svc.Create(context.Background(), account.RawInput{
		"nickname":    "My Account",
		"accountType": "everyday",
		"savingsGoal": "garbage",
	})
	require.NoError(t, err)

	assert.Equal(t, "acc-1", created.ID)
	assert.Equal(t, "My Account", created.Nickname)
	assert.Equal(t, account.AccountTypeEveryday, created.AccountType)
	assert.Equal(t, fixedNow.UTC(), created.CreatedAt)
	assert.Nil(t, created.SavingsGoal)
}

func TestAccountService_CreateSavings(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)

	created, err := svc.Create(context.Background(), account.RawInput{
		"nickname":    "   My Savings Account   ",
		"accountType": "savings",
		"savingsGoal": "50000",
	})
	require.NoError(t, err)

	assert.Equal(t, "My Savings Account", created.Nickname)
	require.NotNil(t, created.SavingsGoal)
	assert.Equal(t, 50000.0, *created.SavingsGoal)
}

func TestAccountService_RejectsInvalidData(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)

	created, err := svc.Create(context.Background(), account.RawInput{
		"nickname":    "abc",
		"accountType": "savings",
		"savingsGoal": "1000001",
	})
	assert.Nil(t, created)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, account.MsgNicknameLength, httpErr.Message)
	assert.Equal(t, account.MsgSavingsGoalMax, httpErr.Field(account.FieldSavingsGoal))
}

func TestAccountService_CreateForm(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)

	created, err := svc.CreateForm(context.Background(), account.FormData{
		Nickname:    "Rainy Day Fund",
		AccountType: "savings",
		SavingsGoal: " 2500.50 ",
	})
	require.NoError(t, err)
	require.NotNil(t, created.SavingsGoal)
	assert.Equal(t, 2500.5, *created.SavingsGoal)

	_, err = svc.CreateForm(context.Background(), account.FormData{
		Nickname:    "Rainy Day Fund",
		AccountType: "savings",
	})
	assert.EqualError(t, err, account.MsgSavingsGoalRequired)
}

func TestAccountService_DelayHonorsCancellation(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t, service.WithCreationDelay(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := svc.Create(ctx, account.RawInput{"nickname": "My Account"})

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestAccountService_DelayElapses(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t, service.WithCreationDelay(10*time.Millisecond))

	start := time.Now()
	_, err := svc.Create(context.Background(), account.RawInput{"nickname": "My Account"})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestAccountService_GeneratesUniqueIDs(t *testing.T) {
	t.Parallel()

	svc := service.NewAccountService(newServer(t))

	first, err := svc.Create(context.Background(), account.RawInput{"nickname": "My Account"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), account.RawInput{"nickname": "My Account"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, first.ID, 36)
}
