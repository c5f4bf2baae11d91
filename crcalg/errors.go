package crcalg

import (
	"errors"
	"fmt"
)

// ParseError indicates a malformed polynomial expression.
type ParseError struct {
	// Expr is the full expression that failed to parse
	Expr string

	// Token is the offending term, empty when the whole expression is at fault
	Token string

	// Reason describes what is wrong with the token or expression
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid polynomial %q: %s", e.Expr, e.Reason)
	}
	return fmt.Sprintf("invalid polynomial %q: term %q: %s", e.Expr, e.Token, e.Reason)
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// ConfigError indicates internally inconsistent CRC parameters.
type ConfigError struct {
	// Field names the parameter at fault
	Field string

	// Reason describes the inconsistency
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsConfigError returns true if the error is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
