package server

import (
	"context"
	"errors"
	"time"

	"github.com/viant/auther/config"
	"github.com/viant/auther/token"
	"go.uber.org/zap"
)

// Authenticator validates and mints bearer tokens.
type Authenticator interface {
	IsAuthed(ctx context.Context, identifier string) (bool, error)
	Issue(ctx context.Context, lifetime time.Duration) (*token.Token, error)
}

// Server exposes a token store over HTTP.
type Server struct {
	store           Authenticator
	logger          *zap.Logger
	realm           string
	defaultLifetime time.Duration
	maxLifetime     time.Duration
}

// New creates a new Server instance
func New(store Authenticator, options ...Option) (*Server, error) {
	if store == nil {
		return nil, errors.New("no token store specified")
	}
	s := &Server{
		store:           store,
		realm:           "auther",
		defaultLifetime: config.DefaultLifetime,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.logger == nil {
		s.logger = zap.L()
	}
	if s.maxLifetime > 0 && s.defaultLifetime > s.maxLifetime {
		return nil, errors.New("default lifetime exceeds max lifetime")
	}
	return s, nil
}
