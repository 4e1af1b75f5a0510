package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/mmo/internal/apperr"
)

var (
	errNotFound = &apperr.Error{Message: "record not found: %s"}
	errOther    = &apperr.Error{Message: "something else"}
)

func TestFmtKeepsIdentity(t *testing.T) {
	err := errNotFound.Fmt("abc")

	assert.Equal(t, "record not found: abc", err.Error())
	assert.ErrorIs(t, err, errNotFound)
	assert.False(t, errors.Is(err, errOther))
}

func TestWrap(t *testing.T) {
	err := errOther.Wrap(io.EOF)

	assert.Equal(t, "something else: EOF", err.Error())
	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, errOther)

	formatted := errNotFound.Wrap(io.EOF).Fmt("x")
	assert.ErrorIs(t, formatted, errNotFound)
	assert.ErrorIs(t, formatted, io.EOF)
}
