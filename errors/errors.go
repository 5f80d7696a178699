// Package errors provides error handling for astgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints on failures
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownGrammar) {
//	    // handle unknown grammar
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Common sentinel errors for use across astgen.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnknownGrammar indicates the requested built-in grammar does not exist
	ErrUnknownGrammar = New("unknown grammar")

	// ErrUnknownLanguage indicates the requested target language has no generator
	ErrUnknownLanguage = New("unknown language")
)

// IsUnknownGrammarError checks if an error is or wraps ErrUnknownGrammar
func IsUnknownGrammarError(err error) bool {
	return err != nil && Is(err, ErrUnknownGrammar)
}
