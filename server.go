package auther

import (
	"context"
	"fmt"

	"github.com/viant/auther/config"
	"github.com/viant/auther/server"
	"github.com/viant/auther/store"
	"go.uber.org/zap"
)

// NewStore opens the tokens file configured in cfg.
func NewStore(ctx context.Context, cfg *config.Config, options ...store.Option) (*store.Store, error) {
	if cfg == nil {
		cfg = config.New()
	}
	options = append([]store.Option{store.WithTokenLength(cfg.TokenLength)}, options...)
	return store.New(ctx, cfg.TokensPath, options...)
}

// NewServer creates an HTTP server for tokens using cfg lifetimes.
func NewServer(tokens server.Authenticator, cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	if tokens == nil {
		return nil, fmt.Errorf("tokens store was nil")
	}
	if cfg == nil {
		cfg = config.New()
	}
	var serverOptions []server.Option
	if logger != nil {
		serverOptions = append(serverOptions, server.WithLogger(logger))
	}
	serverOptions = append(serverOptions,
		server.WithDefaultLifetime(cfg.Lifetime),
		server.WithMaxLifetime(cfg.MaxLifetime))
	return server.New(tokens, serverOptions...)
}
