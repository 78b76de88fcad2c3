package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// MintRequest is the optional body of POST /tokens.
type MintRequest struct {
	Lifetime string `json:"lifetime,omitempty"`
}

// authHandler answers 204 for requests that passed Middleware.
func (s *Server) authHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// mintHandler issues a token and responds with an OAuth2 token body.
func (s *Server) mintHandler(w http.ResponseWriter, r *http.Request) {
	lifetime, err := s.requestedLifetime(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	minted, err := s.store.Issue(r.Context(), lifetime)
	if err != nil {
		s.logger.Error("failed to mint token", zap.String("request_id", w.Header().Get(RequestIDHeader)), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	body := &oauth2.Token{
		AccessToken: minted.Identifier(),
		TokenType:   "Bearer",
		Expiry:      minted.ExpiresAt(),
		ExpiresIn:   int64(lifetime / time.Second),
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) requestedLifetime(r *http.Request) (time.Duration, error) {
	lifetime := s.defaultLifetime
	if r.Body != nil {
		var request MintRequest
		err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&request)
		switch {
		case errors.Is(err, io.EOF):
		case err != nil:
			return 0, fmt.Errorf("invalid request body: %w", err)
		case request.Lifetime != "":
			if lifetime, err = time.ParseDuration(request.Lifetime); err != nil {
				return 0, fmt.Errorf("invalid lifetime: %w", err)
			}
		}
	}
	if lifetime <= 0 {
		return 0, fmt.Errorf("lifetime must be positive: %v", lifetime)
	}
	if s.maxLifetime > 0 && lifetime > s.maxLifetime {
		return 0, fmt.Errorf("lifetime %v exceeds maximum %v", lifetime, s.maxLifetime)
	}
	return lifetime, nil
}
