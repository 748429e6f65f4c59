package vmerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessageAndUnwrap(t *testing.T) {
	err := NewParseError("pop constant 3", "unknown segment \"xyz\"")
	assert.Equal(t, `parse error on line "pop constant 3": unknown segment "xyz"`, err.Error())
	assert.Error(t, errors.Unwrap(err))
}

func TestInvalidOperationIsAParseError(t *testing.T) {
	err := NewInvalidOperation("pop constant 3", "constant is not a writable segment")
	var asParse *ParseError
	assert.ErrorAs(t, error(err), &asParse)
	assert.Equal(t, "pop constant 3", err.Line)
}

func TestIOFailureMessageAndUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewIOFailure("output.asm", cause)
	assert.Equal(t, `io failure on "output.asm": permission denied`, err.Error())
	assert.Error(t, errors.Unwrap(err))
}
