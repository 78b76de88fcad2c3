package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/viant/afs/url"
	"github.com/viant/auther/internal/location"
)

const lockRetryDelay = 10 * time.Millisecond

// locker guards a load-modify-save sequence across processes.
type locker interface {
	Lock(ctx context.Context) (unlock func() error, err error)
}

type noopLocker struct{}

func (noopLocker) Lock(context.Context) (func() error, error) {
	return func() error { return nil }, nil
}

// fileLocker holds an advisory lock on a sibling file of the tokens file.
type fileLocker struct {
	path string
}

func (l *fileLocker) Lock(ctx context.Context) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o700); err != nil {
		return nil, err
	}
	lock := flock.New(l.path)
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", l.path, err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock %s", l.path)
	}
	return lock.Unlock, nil
}

// newLocker returns a file lock for local URLs; other schemes rely on the in-process mutex only.
func newLocker(URL string) locker {
	if !location.IsLocal(URL) {
		return noopLocker{}
	}
	return &fileLocker{path: url.Path(URL) + ".lock"}
}
