package cli

import "time"

// Options are the auther command line flags.
type Options struct {
	Config      string `short:"c" long:"config" env:"AUTHER_CONFIG" description:"YAML config file URL"`
	TokensPath  string `short:"p" long:"path" env:"AUTHER_TOKENS_PATH" description:"tokens file (default ./tokens)"`
	TokenLength int    `short:"n" long:"length" env:"AUTHER_TOKEN_LENGTH" description:"random bytes per minted token (default 64)"`
	LogLevel    string `long:"log-level" env:"AUTHER_LOG_LEVEL" description:"debug, info, warn or error"`
	LogFormat   string `long:"log-format" env:"AUTHER_LOG_FORMAT" description:"json or console"`

	Mint  MintCommand  `command:"mint" description:"mint a new token"`
	Check CheckCommand `command:"check" description:"check whether a token is valid"`
	List  ListCommand  `command:"list" description:"list stored tokens"`
	Serve ServeCommand `command:"serve" description:"serve the HTTP auth endpoints"`
}

// MintCommand mints a token.
type MintCommand struct {
	Lifetime time.Duration `short:"l" long:"lifetime" description:"token lifetime, e.g. 1h (default from config)"`
}

// CheckCommand validates a token.
type CheckCommand struct {
	Args struct {
		Token string `positional-arg-name:"token" description:"token identifier"`
	} `positional-args:"yes" required:"yes"`
}

// ListCommand lists live tokens.
type ListCommand struct{}

// ServeCommand runs the HTTP server.
type ServeCommand struct {
	Addr string `short:"a" long:"addr" env:"AUTHER_LISTEN" description:"listen address (default from config)"`
}
