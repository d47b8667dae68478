// Package client is a Go client for the account opening JSON API.
//
// Input is validated locally with the same rules the server applies, so an
// invalid account never costs a round trip.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/deppfellow/account-opening/internal/account"
)

const (
	createAccountPath = "/api/create-account"

	defaultTimeout = 10 * time.Second

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 1 << 20
)

// ValidationError is returned when the input fails local validation.
// No request was sent.
type ValidationError struct {
	Result account.Result
}

func (e *ValidationError) Error() string {
	if first := e.Result.FirstError(); first != nil {
		return first.Message
	}
	return "validation failed"
}

// APIError is a non-201 answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("account API returned %d: %s", e.StatusCode, e.Message)
}

// CreateAccountResponse is the 201 body.
type CreateAccountResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Account account.Account `json:"account"`
}

// Client talks to one account opening server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client for baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid base URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, errors.Errorf("invalid base URL %q: missing host", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateAccount validates in locally and, when valid, sends the sanitized
// values to the server.
func (c *Client) CreateAccount(ctx context.Context, in account.RawInput) (*CreateAccountResponse, error) {
	result := account.Validate(in)
	if !result.IsValid {
		return nil, &ValidationError{Result: result}
	}

	body, err := json.Marshal(result.Sanitized.Raw())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request")
	}

	endpoint := c.baseURL.JoinPath(createAccountPath).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, newAPIError(resp.StatusCode, data)
	}

	var created CreateAccountResponse
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}

	return &created, nil
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		return &APIError{StatusCode: status, Message: http.StatusText(status)}
	}
	return &APIError{StatusCode: status, Message: payload.Error}
}
