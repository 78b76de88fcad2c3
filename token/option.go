package token

import "time"

// Option configures New.
type Option func(o *options)

type options struct {
	lifetime   time.Duration
	length     int
	expires    time.Time
	identifier string
	clock      func() time.Time
}

// WithLifetime sets the expiry relative to now.
func WithLifetime(lifetime time.Duration) Option {
	return func(o *options) {
		o.lifetime = lifetime
	}
}

// WithLength sets the number of random bytes of a generated identifier.
func WithLength(length int) Option {
	return func(o *options) {
		o.length = length
	}
}

// WithExpires sets an absolute expiry, used when reading tokens back from storage.
func WithExpires(expires time.Time) Option {
	return func(o *options) {
		o.expires = expires
	}
}

// WithIdentifier supplies the identifier instead of generating one.
func WithIdentifier(identifier string) Option {
	return func(o *options) {
		o.identifier = identifier
	}
}

// WithClock overrides the time source used to resolve a lifetime.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func newOptions(opts []Option) *options {
	ret := &options{length: DefaultLength, clock: time.Now}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
