package server

import (
	"context"
	"net/http"
	"time"

	"github.com/viant/auther/config"
)

// Handler returns the HTTP routes: GET /auth and POST /tokens, both behind Middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /auth", s.Middleware(http.HandlerFunc(s.authHandler)))
	mux.Handle("POST /tokens", s.Middleware(http.HandlerFunc(s.mintHandler)))
	return ChainMiddlewareHandlers(mux, s.requestLog)
}

// HTTP creates an HTTP server for addr, defaulting to config.DefaultListen.
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = config.DefaultListen
	}
	return &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
