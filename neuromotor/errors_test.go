package neuromotor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := newError(KindDriverStalled, "Session.Move", nil)
	assert.True(t, errors.Is(err, ErrDriverStalled))
	assert.False(t, errors.Is(err, ErrCancelled))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newError(KindDriverError, "Session.Click", cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorWrappingPreservesKind(t *testing.T) {
	inner := newError(KindInvalidGeometry, "FittsDuration", errors.New("bad distance"))
	wrapped := fmt.Errorf("context: %w", inner)
	assert.True(t, errors.Is(wrapped, ErrInvalidGeometry))
}

func TestErrorMessageIncludesOpAndKind(t *testing.T) {
	err := newError(KindInvalidConfig, "NewConfig", errors.New("alpha out of range"))
	msg := err.Error()
	assert.Contains(t, msg, "NewConfig")
	assert.Contains(t, msg, string(KindInvalidConfig))
	assert.Contains(t, msg, "alpha out of range")
}
