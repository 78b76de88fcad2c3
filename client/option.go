package client

import "net/http"

// Option represents option
type Option func(c *Client)

// WithHTTPClient sets the base client whose transport carries the bearer token.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.base = httpClient
	}
}
