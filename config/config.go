// Package config loads auther settings from a YAML document.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/auther/internal/location"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Init to unset fields.
const (
	// DefaultTokensPath is the backing tokens file.
	DefaultTokensPath = "./tokens"
	// DefaultTokenLength is the random byte length of minted identifiers.
	DefaultTokenLength = 64
	// DefaultLifetime is the lifetime of tokens minted without one.
	DefaultLifetime = 24 * time.Hour
	// DefaultListen is the HTTP listen address.
	DefaultListen = ":8080"
	// DefaultLogLevel is the zap log level.
	DefaultLogLevel = "info"
	// DefaultLogFormat is the zap encoder, json or console.
	DefaultLogFormat = "console"
)

// Config holds store, server and logging settings.
type Config struct {
	// TokensPath is the backing file (local path or afs URL).
	TokensPath string `yaml:"tokensPath"`

	// TokenLength is the random byte length of minted identifiers.
	TokenLength int `yaml:"tokenLength"`

	// Lifetime is used when a mint request does not specify one.
	Lifetime time.Duration `yaml:"lifetime"`

	// MaxLifetime caps lifetimes requested over HTTP; zero means no cap.
	MaxLifetime time.Duration `yaml:"maxLifetime"`

	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	Log Log `yaml:"log"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

// New returns a config with defaults applied.
func New() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// Init fills unset fields with defaults.
func (c *Config) Init() {
	if c.TokensPath == "" {
		c.TokensPath = DefaultTokensPath
	}
	if c.TokenLength <= 0 {
		c.TokenLength = DefaultTokenLength
	}
	if c.Lifetime <= 0 {
		c.Lifetime = DefaultLifetime
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.MaxLifetime < 0 {
		return fmt.Errorf("invalid maxLifetime %v", c.MaxLifetime)
	}
	if c.MaxLifetime > 0 && c.Lifetime > c.MaxLifetime {
		return fmt.Errorf("lifetime %v exceeds maxLifetime %v", c.Lifetime, c.MaxLifetime)
	}
	return nil
}

// Load reads a YAML config from URL and applies defaults.
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	URL, err := location.Normalize(URL)
	if err != nil {
		return nil, err
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", URL, err)
	}
	ret := &Config{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	ret.Init()
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
