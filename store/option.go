package store

import (
	"time"

	"github.com/viant/afs"
	"go.uber.org/zap"
)

// Option configures a Store.
type Option func(s *Store)

// WithTokenLength sets the random byte length used by Issue.
func WithTokenLength(length int) Option {
	return func(s *Store) {
		if length > 0 {
			s.tokenLength = length
		}
	}
}

// WithClock overrides the time source used for expiry checks and pruning.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithLogger sets the store logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithFileSystem sets the storage service used to read and write the tokens file.
func WithFileSystem(fs afs.Service) Option {
	return func(s *Store) {
		s.fs = fs
	}
}
