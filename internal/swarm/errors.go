package swarm

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every ConfigurationError via errors.Is.
var ErrInvalidConfig = errors.New("invalid swarm configuration")

// ConfigurationError reports a configuration field that cannot start a run.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("swarm: %s=%v: %s", e.Field, e.Value, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigurationError) Is(target error) bool { return target == ErrInvalidConfig }

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErr(field string, value any, reason string) error {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}
