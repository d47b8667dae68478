package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/account-opening/internal/account"
	"github.com/deppfellow/account-opening/internal/client"
)

func TestNew_RejectsBadURLs(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "localhost:8080", "ftp://example.com", "http://"} {
		_, err := client.New(raw)
		assert.Error(t, err, raw)
	}

	_, err := client.New("http://localhost:8080/")
	assert.NoError(t, err)
}

func TestCreateAccount_LocalValidation(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	require.NoError(t, err)

	_, err = c.CreateAccount(context.Background(), account.RawInput{
		"nickname":    "abc",
		"accountType": "savings",
	})

	var validationErr *client.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, account.MsgNicknameLength, err.Error())
	assert.Equal(t, account.MsgSavingsGoalRequired, validationErr.Result.Errors.SavingsGoal)
	assert.Zero(t, calls.Load())
}

func TestCreateAccount_SendsSanitizedInput(t *testing.T) {
	t.Parallel()

	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/create-account", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"Account created successfully","account":{"id":"acc-1","nickname":"My Savings","accountType":"savings","createdAt":"2026-10-16T10:00:00Z","savingsGoal":2500}}`))
	}))
	defer srv.Close()

	c, err := client.New(srv.URL + "/")
	require.NoError(t, err)

	resp, err := c.CreateAccount(context.Background(), account.RawInput{
		"nickname":    "  My Savings  ",
		"accountType": "savings",
		"savingsGoal": 2500,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"nickname":    "My Savings",
		"accountType": "savings",
		"savingsGoal": "2500",
	}, received)

	assert.True(t, resp.Success)
	assert.Equal(t, account.MsgAccountCreated, resp.Message)
	assert.Equal(t, "acc-1", resp.Account.ID)
	assert.Equal(t, account.AccountTypeSavings, resp.Account.AccountType)
	assert.Equal(t, time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC), resp.Account.CreatedAt)
	require.NotNil(t, resp.Account.SavingsGoal)
	assert.Equal(t, 2500.0, *resp.Account.SavingsGoal)
}

func TestCreateAccount_APIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"json error body", http.StatusBadRequest, `{"error":"Invalid request data"}`, "Invalid request data"},
		{"internal error", http.StatusInternalServerError, `{"error":"Internal server error"}`, "Internal server error"},
		{"non json body", http.StatusBadGateway, `<html>bad gateway</html>`, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := client.New(srv.URL)
			require.NoError(t, err)

			_, err = c.CreateAccount(context.Background(), account.RawInput{"nickname": "My Account"})

			var apiErr *client.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestCreateAccount_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := client.New(srv.URL, client.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.CreateAccount(ctx, account.RawInput{"nickname": "My Account"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
