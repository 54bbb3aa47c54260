// Package auth exchanges the wallet's identity for short-lived bearer tokens
// accepted by the notification backends.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openwallet/notification-services/internal/adapter"
)

// tokenExpiryMargin forces a refresh slightly before the token actually
// expires so in-flight requests do not race the deadline.
const tokenExpiryMargin = 30 * time.Second

// Client authenticates against the auth service and caches the bearer token
// until shortly before its JWT expiry.
type Client struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	clock      adapter.Clock
	baseURL    string
	identifier string
	apiKey     string

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	APIKey     string `json:"api_key"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// NewClient creates an auth client for the given wallet identity
func NewClient(httpClient adapter.HTTPClient, json adapter.JSON, clock adapter.Clock, baseURL, identifier, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		json:       json,
		clock:      clock,
		baseURL:    baseURL,
		identifier: identifier,
		apiKey:     apiKey,
	}
}

// IsSignedIn reports whether the wallet has credentials to authenticate with
func (c *Client) IsSignedIn() bool {
	return c.identifier != "" && c.apiKey != ""
}

// GetBearerToken returns a valid access token, logging in again when the
// cached one is absent or about to expire.
func (c *Client) GetBearerToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.clock.Now().Before(c.expiresAt.Add(-tokenExpiryMargin)) {
		return c.token, nil
	}

	if !c.IsSignedIn() {
		return "", nil
	}

	body, err := c.json.Marshal(loginRequest{Identifier: c.identifier, APIKey: c.apiKey})
	if err != nil {
		return "", fmt.Errorf("failed to marshal login request: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx, c.baseURL+"/api/v1/login", nil, body)
	if err != nil {
		return "", fmt.Errorf("failed to call auth service: %w", err)
	}

	var resp loginResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal login response: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("auth service returned an empty token")
	}

	c.token = resp.AccessToken
	c.expiresAt = c.tokenExpiry(resp.AccessToken)

	return c.token, nil
}

// tokenExpiry reads the exp claim without verifying the signature; the token
// is opaque to us, verification happens server-side.
func (c *Client) tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return c.clock.Now().Add(tokenExpiryMargin)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return c.clock.Now().Add(tokenExpiryMargin)
	}
	return exp.Time
}
