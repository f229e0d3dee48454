package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pctowa/pctowa-backend/internal/model"
)

// Client errors.
var (
	ErrUnauthorized = errors.New("credentials rejected by auth server")
	ErrUnavailable  = errors.New("auth server unreachable")
)

// Client forwards authentication requests to the auth server. The
// resource API never reads password hashes itself; login always goes
// through this client.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given auth server base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type loginEnvelope struct {
	Data  *model.LoginResponse `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Login forwards credentials to the auth server and returns the issued
// token and user profile.
func (c *Client) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	body, err := json.Marshal(model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusTooManyRequests:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var env loginEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: empty response body", ErrUnavailable)
	}
	return env.Data, nil
}
