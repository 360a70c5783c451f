package pricing

import "fmt"

// ValidationError signals that a caller-supplied value violates a
// constraint. The surrounding handler maps it to a request rejection.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConfigError signals that the price table lacks the data needed to answer
// the request. This is an admin-side gap, not a user mistake.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func newConfigError(format string, args ...interface{}) error {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}
