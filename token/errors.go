package token

// ConfigurationError is returned when a token cannot be built from the supplied options.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "token: " + e.Reason
}
