// Package vmerr defines the error taxonomy used across the translator's
// front end: ParseError (with the InvalidOperation subtype) and IOFailure.
// LexicalError is reserved -- the cleaner never raises one, matching
// spec.md §7.
package vmerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is raised by internal/parser for any malformed line: unknown
// keyword, wrong arity, unknown segment, non-numeric operand, out-of-range
// operand, or too many tokens. It always carries the offending line text.
type ParseError struct {
	Line  string
	cause error
}

// NewParseError wraps reason with the offending line. The cause carries a
// github.com/pkg/errors stack trace, reachable through Unwrap; Error() and
// %+v formatting print only the line and the reason, not the trace.
func NewParseError(line, reason string) *ParseError {
	return &ParseError{Line: line, cause: errors.WithStack(errors.New(reason))}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %q: %v", e.Line, e.cause)
}

// Unwrap exposes the underlying stack-annotated cause to errors.As/Is.
func (e *ParseError) Unwrap() error { return e.cause }

// InvalidOperation is the ParseError subtype for operations that are
// syntactically well-formed but semantically illegal, such as
// "pop constant 3" -- the caller tries to assign to a read-only literal.
// It is detected at parse time per spec.md §7.
type InvalidOperation struct {
	*ParseError
}

// NewInvalidOperation builds an InvalidOperation carrying the offending
// line and a human-readable reason.
func NewInvalidOperation(line, reason string) *InvalidOperation {
	return &InvalidOperation{ParseError: NewParseError(line, reason)}
}

// Unwrap exposes the embedded ParseError, so errors.As finds an
// InvalidOperation as a *ParseError.
func (e *InvalidOperation) Unwrap() error { return e.ParseError }

// IOFailure wraps a filesystem or stdin read/write failure. The core never
// constructs one itself -- it is raised by the external CLI collaborator
// (cmd/vmtranslator) -- but lives here so the whole taxonomy is in one
// place and the CLI can treat all three kinds uniformly for exit-status
// purposes.
type IOFailure struct {
	Path  string
	cause error
}

// NewIOFailure wraps an I/O error with the path that caused it.
func NewIOFailure(path string, cause error) *IOFailure {
	return &IOFailure{Path: path, cause: errors.WithStack(cause)}
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("io failure on %q: %v", e.Path, e.cause)
}

func (e *IOFailure) Unwrap() error { return e.cause }
