package store

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/viant/afs"
	"github.com/viant/auther/internal/location"
	"github.com/viant/auther/token"
	"go.uber.org/zap"
)

const (
	// DefaultPath is used when no tokens path is given.
	DefaultPath = "./tokens"
	// DefaultTokenLength is the random byte length used by Issue.
	DefaultTokenLength = token.DefaultLength
)

// Store owns an ordered token collection backed by one file.
type Store struct {
	mu          sync.Mutex
	fs          afs.Service
	path        string
	url         string
	tokenLength int
	clock       func() time.Time
	logger      *zap.Logger
	locker      locker
	tokens      []*token.Token
}

// New creates a store for tokensPath and loads it, creating an empty file if none exists.
func New(ctx context.Context, tokensPath string, options ...Option) (*Store, error) {
	if tokensPath == "" {
		tokensPath = DefaultPath
	}
	URL, err := location.Normalize(tokensPath)
	if err != nil {
		return nil, &StorageError{URL: tokensPath, Op: "resolve", Err: err}
	}
	s := &Store{
		path:        tokensPath,
		url:         URL,
		tokenLength: DefaultTokenLength,
		clock:       time.Now,
		tokens:      []*token.Token{},
	}
	for _, opt := range options {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = zap.L()
	}
	s.logger = s.logger.With(zap.String("tokens", s.url))
	s.locker = newLocker(s.url)
	err = s.withLock(ctx, func() error {
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the configured tokens path.
func (s *Store) Path() string {
	return s.path
}

// TokenLength returns the random byte length used by Issue.
func (s *Store) TokenLength() int {
	return s.tokenLength
}

// Mint registers t, persists the collection and returns t. Duplicates and
// already expired tokens are not rejected; an expired token is pruned by the save.
func (s *Store) Mint(ctx context.Context, t *token.Token) (*token.Token, error) {
	err := s.withLock(ctx, func() error {
		if err := s.load(ctx); err != nil {
			return err
		}
		s.tokens = append(s.tokens, t)
		return s.save(ctx)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("token minted", zap.Time("expires", t.ExpiresAt()))
	return t, nil
}

// Issue mints a fresh token of the store's token length valid for lifetime.
func (s *Store) Issue(ctx context.Context, lifetime time.Duration) (*token.Token, error) {
	t, err := token.New(token.WithLifetime(lifetime), token.WithLength(s.tokenLength), token.WithClock(s.clock))
	if err != nil {
		return nil, err
	}
	return s.Mint(ctx, t)
}

// Tokens reloads the file and returns a copy of the collection in mint order.
func (s *Store) Tokens(ctx context.Context) ([]*token.Token, error) {
	var ret []*token.Token
	err := s.withLock(ctx, func() error {
		if err := s.load(ctx); err != nil {
			return err
		}
		ret = make([]*token.Token, len(s.tokens))
		copy(ret, s.tokens)
		return nil
	})
	return ret, err
}

// IsAuthed reloads the file and reports whether any token with identifier is unexpired.
func (s *Store) IsAuthed(ctx context.Context, identifier string) (bool, error) {
	authed := false
	err := s.withLock(ctx, func() error {
		if err := s.load(ctx); err != nil {
			return err
		}
		now := s.clock()
		for _, t := range s.tokens {
			if t.Identifier() == identifier && !t.ExpiredAt(now) {
				authed = true
				return nil
			}
		}
		return nil
	})
	return authed, err
}

func (s *Store) withLock(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return &StorageError{URL: s.url, Op: "lock", Err: err}
	}
	defer func() {
		if err := unlock(); err != nil {
			s.logger.Warn("failed to release tokens lock", zap.Error(err))
		}
	}()
	return fn()
}

// ---- persistence ----

func (s *Store) load(ctx context.Context) error {
	exists, err := s.fs.Exists(ctx, s.url)
	if err != nil {
		return &StorageError{URL: s.url, Op: "stat", Err: err}
	}
	if !exists {
		s.logger.Info("tokens file not found, creating empty store")
		return s.save(ctx)
	}
	data, err := s.fs.DownloadWithURL(ctx, s.url)
	if err != nil {
		return &StorageError{URL: s.url, Op: "read", Err: err}
	}
	tokens, err := decode(data)
	if err != nil {
		return &StorageError{URL: s.url, Op: "parse", Err: err}
	}
	s.tokens = tokens
	return nil
}

func (s *Store) save(ctx context.Context) error {
	now := s.clock()
	live := make([]*token.Token, 0, len(s.tokens))
	for _, t := range s.tokens {
		if t.ExpiresAt().After(now) {
			live = append(live, t)
		}
	}
	if pruned := len(s.tokens) - len(live); pruned > 0 {
		s.logger.Debug("pruned expired tokens", zap.Int("count", pruned))
	}
	s.tokens = live
	data, err := encode(live)
	if err != nil {
		return &StorageError{URL: s.url, Op: "encode", Err: err}
	}
	if err = s.fs.Upload(ctx, s.url, 0o600, bytes.NewReader(data)); err != nil {
		return &StorageError{URL: s.url, Op: "write", Err: err}
	}
	return nil
}
