package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration resolution. Every resolution failure wraps
// exactly one of these in a *ConfigError.
var (
	// ErrInvalidCompilerSetting is returned when the compiler version or optimizer settings are malformed
	ErrInvalidCompilerSetting = errors.New("invalid compiler setting")

	// ErrPathCollision is returned when a project path is empty, absolute or shared with another path
	ErrPathCollision = errors.New("path collision")

	// ErrUnknownDefaultNetwork is returned when the default network is not registered
	ErrUnknownDefaultNetwork = errors.New("unknown default network")

	// ErrDuplicateNetwork is returned when two networks share a name
	ErrDuplicateNetwork = errors.New("duplicate network")

	// ErrUnboundRole is returned when a role has neither a network binding nor a default binding
	ErrUnboundRole = errors.New("unbound role")

	// ErrNegativeAccountIndex is returned when a role binds to an index below zero
	ErrNegativeAccountIndex = errors.New("negative account index")

	// ErrInvalidReportTimeout is returned when the report timeout is not positive
	ErrInvalidReportTimeout = errors.New("invalid report timeout")

	// ErrUnknownPlugin is returned when a plugin is not in the recognized set
	ErrUnknownPlugin = errors.New("unknown plugin")

	// ErrUnnamedNetwork is returned when a network entry has a blank name
	ErrUnnamedNetwork = errors.New("unnamed network")
)

// ConfigError identifies the violated rule and the offending field.
type ConfigError struct {
	Kind       error
	Field      string
	Value      any
	Reason     string
	Suggestion string
}

// NewConfigError builds a ConfigError for kind on field.
func NewConfigError(kind error, field string, value any, reason string) *ConfigError {
	return &ConfigError{
		Kind:   kind,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithSuggestion returns the error with a "did you mean" hint attached.
func (e *ConfigError) WithSuggestion(suggestion string) *ConfigError {
	e.Suggestion = suggestion
	return e
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Field)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Kind
}

// KindName returns the taxonomy name of err, or "" when err is not a configuration error.
func KindName(err error) string {
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		return ""
	}
	switch cfgErr.Kind {
	case ErrInvalidCompilerSetting:
		return "InvalidCompilerSetting"
	case ErrPathCollision:
		return "PathCollision"
	case ErrUnknownDefaultNetwork:
		return "UnknownDefaultNetwork"
	case ErrDuplicateNetwork:
		return "DuplicateNetwork"
	case ErrUnboundRole:
		return "UnboundRole"
	case ErrNegativeAccountIndex:
		return "NegativeAccountIndex"
	case ErrInvalidReportTimeout:
		return "InvalidReportTimeout"
	case ErrUnknownPlugin:
		return "UnknownPlugin"
	case ErrUnnamedNetwork:
		return "UnnamedNetwork"
	default:
		return ""
	}
}
