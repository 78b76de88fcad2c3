package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
	"github.com/viant/auther"
	"github.com/viant/auther/config"
	"github.com/viant/auther/logger"
	"github.com/viant/auther/store"
	"go.uber.org/zap"
)

// ErrInvalidToken is returned by the check command for unknown or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Run parses args and executes the selected command, writing results to stdout.
func Run(ctx context.Context, args []string, stdout io.Writer) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	if parser.Active == nil {
		return errors.New("no command specified")
	}
	cfg, err := options.config(ctx)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	undo := zap.ReplaceGlobals(log)
	defer undo()

	tokens, err := auther.NewStore(ctx, cfg, store.WithLogger(log))
	if err != nil {
		return err
	}

	switch parser.Active.Name {
	case "mint":
		return runMint(ctx, tokens, cfg, &options.Mint, stdout)
	case "check":
		return runCheck(ctx, tokens, options.Check.Args.Token, stdout)
	case "list":
		return runList(ctx, tokens, stdout)
	case "serve":
		return runServe(ctx, tokens, cfg, &options.Serve, log)
	}
	return fmt.Errorf("unsupported command: %v", parser.Active.Name)
}

// config loads the optional config file and applies flag overrides.
func (o *Options) config(ctx context.Context) (*config.Config, error) {
	cfg := config.New()
	if o.Config != "" {
		var err error
		if cfg, err = config.Load(ctx, afs.New(), o.Config); err != nil {
			return nil, err
		}
	}
	if o.TokensPath != "" {
		cfg.TokensPath = o.TokensPath
	}
	if o.TokenLength > 0 {
		cfg.TokenLength = o.TokenLength
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
	if o.Serve.Addr != "" {
		cfg.Listen = o.Serve.Addr
	}
	return cfg, cfg.Validate()
}

func runMint(ctx context.Context, tokens *store.Store, cfg *config.Config, cmd *MintCommand, stdout io.Writer) error {
	lifetime := cmd.Lifetime
	if lifetime < 0 {
		return fmt.Errorf("lifetime must be positive: %v", lifetime)
	}
	if lifetime == 0 {
		lifetime = cfg.Lifetime
	}
	minted, err := tokens.Issue(ctx, lifetime)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\nexpires: %s\n", minted.Identifier(), minted.ExpiresAt().UTC().Format(time.RFC3339))
	return err
}

func runCheck(ctx context.Context, tokens *store.Store, identifier string, stdout io.Writer) error {
	authed, err := tokens.IsAuthed(ctx, identifier)
	if err != nil {
		return err
	}
	if !authed {
		_, _ = fmt.Fprintln(stdout, "invalid")
		return ErrInvalidToken
	}
	_, err = fmt.Fprintln(stdout, "valid")
	return err
}

func runList(ctx context.Context, tokens *store.Store, stdout io.Writer) error {
	list, err := tokens.Tokens(ctx)
	if err != nil {
		return err
	}
	for _, t := range list {
		if t.Expired() {
			continue
		}
		if _, err = fmt.Fprintln(stdout, t.ExpiresAt().UTC().Format(time.RFC3339), redact(t.Identifier())); err != nil {
			return err
		}
	}
	return nil
}

func runServe(ctx context.Context, tokens *store.Store, cfg *config.Config, cmd *ServeCommand, log *zap.Logger) error {
	srv, err := auther.NewServer(tokens, cfg, log)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := srv.HTTP(ctx, cfg.Listen)
	errs := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", httpServer.Addr), zap.String("tokens", tokens.Path()))
		errs <- httpServer.ListenAndServe()
	}()
	select {
	case err = <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info("shutting down")
	return httpServer.Shutdown(shutdownCtx)
}

// redact keeps the first 8 characters of an identifier.
func redact(identifier string) string {
	if len(identifier) > 8 {
		identifier = identifier[:8]
	}
	return identifier + "..."
}
