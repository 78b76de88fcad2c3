package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Client talks to an auther server.
type Client struct {
	baseURL    string
	identifier string
	base       *http.Client
	httpClient *http.Client
}

// HTTPClient returns the bearer-authorized client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Check reports whether the server accepts the client's token.
func (c *Client) Check(ctx context.Context) (bool, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth", nil)
	if err != nil {
		return false, err
	}
	response, err := c.httpClient.Do(request)
	if err != nil {
		return false, err
	}
	defer response.Body.Close()
	_, _ = io.Copy(io.Discard, response.Body)
	switch response.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return true, nil
	case http.StatusUnauthorized:
		return false, nil
	}
	return false, fmt.Errorf("unexpected status: %v", response.Status)
}

// Mint asks the server for a new token valid for lifetime; zero uses the server default.
func (c *Client) Mint(ctx context.Context, lifetime time.Duration) (*oauth2.Token, error) {
	payload := map[string]string{}
	if lifetime > 0 {
		payload["lifetime"] = lifetime.String()
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tokens", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("failed to mint token: %v: %s", response.Status, strings.TrimSpace(string(body)))
	}
	ret := &oauth2.Token{}
	if err = json.Unmarshal(body, ret); err != nil {
		return nil, fmt.Errorf("invalid token response: %w", err)
	}
	return ret, nil
}

// New creates a client for baseURL presenting identifier as a bearer token.
func New(baseURL, identifier string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		identifier: identifier,
	}
	for _, opt := range options {
		opt(c)
	}
	ctx := context.Background()
	if c.base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.base)
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: identifier, TokenType: "Bearer"})
	c.httpClient = oauth2.NewClient(ctx, source)
	return c
}
