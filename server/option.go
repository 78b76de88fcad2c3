package server

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithLogger sets the server logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// WithDefaultLifetime sets the lifetime used when a mint request omits one.
func WithDefaultLifetime(lifetime time.Duration) Option {
	return func(s *Server) error {
		if lifetime <= 0 {
			return fmt.Errorf("invalid default lifetime: %v", lifetime)
		}
		s.defaultLifetime = lifetime
		return nil
	}
}

// WithMaxLifetime caps requested lifetimes; zero disables the cap.
func WithMaxLifetime(lifetime time.Duration) Option {
	return func(s *Server) error {
		if lifetime < 0 {
			return fmt.Errorf("invalid max lifetime: %v", lifetime)
		}
		s.maxLifetime = lifetime
		return nil
	}
}

// WithRealm sets the realm advertised in WWW-Authenticate challenges.
func WithRealm(realm string) Option {
	return func(s *Server) error {
		s.realm = realm
		return nil
	}
}
