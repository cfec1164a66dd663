package global

// ConfigurationError represents a fatal misconfiguration detected at startup,
// such as a missing provider credential. It is never produced per-request.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// OperationalError represents a storage or provider failure during a request.
// The cause is kept for server-side logging; callers only ever see Message.
type OperationalError struct {
	Message string
	Cause   error
}

func (e *OperationalError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *OperationalError) Unwrap() error {
	return e.Cause
}
