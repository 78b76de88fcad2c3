package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultLength is the number of random bytes used for a generated identifier.
const DefaultLength = 64

// Token is an immutable bearer credential.
type Token struct {
	identifier string
	expiresAt  time.Time
}

// Identifier returns the opaque string presented by clients.
func (t *Token) Identifier() string {
	return t.identifier
}

// ExpiresAt returns the moment after which the token is no longer valid.
func (t *Token) ExpiresAt() time.Time {
	return t.expiresAt
}

// Expired reports whether the token expired before now.
func (t *Token) Expired() bool {
	return t.ExpiredAt(time.Now())
}

// ExpiredAt reports whether the token expired strictly before now.
func (t *Token) ExpiredAt(now time.Time) bool {
	return t.expiresAt.Before(now)
}

// String returns a redacted form safe for logs.
func (t *Token) String() string {
	id := t.identifier
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s... (expires %s)", id, t.expiresAt.Format(time.RFC3339))
}

// MintNew creates a token with a random identifier of length bytes that
// expires lifetime from now. A non-positive length means DefaultLength.
func MintNew(lifetime time.Duration, length int) (*Token, error) {
	return mint(time.Now(), lifetime, length)
}

// Reconstruct rebuilds a persisted token. The identifier is used verbatim.
func Reconstruct(identifier string, expiresAt time.Time) *Token {
	return &Token{identifier: identifier, expiresAt: truncate(expiresAt)}
}

// New creates a token from options. Either WithLifetime or WithExpires is
// required; when both are given the lifetime wins and a warning is logged.
func New(opts ...Option) (*Token, error) {
	o := newOptions(opts)
	if o.lifetime == 0 && o.expires.IsZero() {
		return nil, &ConfigurationError{Reason: "no lifetime specified"}
	}
	var expiresAt time.Time
	if o.lifetime != 0 {
		if !o.expires.IsZero() {
			zap.L().Warn("both lifetime and expires received, expires ignored",
				zap.Duration("lifetime", o.lifetime), zap.Time("expires", o.expires))
		}
		expiresAt = o.clock().Add(o.lifetime)
	} else {
		expiresAt = o.expires
	}
	if o.identifier != "" {
		return Reconstruct(o.identifier, expiresAt), nil
	}
	identifier, err := generate(o.length)
	if err != nil {
		return nil, err
	}
	return &Token{identifier: identifier, expiresAt: truncate(expiresAt)}, nil
}

func mint(now time.Time, lifetime time.Duration, length int) (*Token, error) {
	identifier, err := generate(length)
	if err != nil {
		return nil, err
	}
	return &Token{identifier: identifier, expiresAt: truncate(now.Add(lifetime))}, nil
}

func generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	data := make([]byte, length)
	if _, err := rand.Read(data); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// truncate drops sub-millisecond precision, matching the persisted format.
func truncate(ts time.Time) time.Time {
	return time.UnixMilli(ts.UnixMilli())
}
