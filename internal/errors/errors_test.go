package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := InvalidColorf("invalid seed %q", "#12")

	assert.True(t, Is(err, ErrInvalidColor))
	assert.False(t, Is(err, ErrValidation))
	assert.Equal(t, `invalid seed "#12"`, err.Error())
}

func TestError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("generate: %w", Validation("seed is required"))

	assert.True(t, Is(err, ErrValidation))

	var domainErr *Error
	require.True(t, As(err, &domainErr))
	assert.Equal(t, CodeValidation, domainErr.Code)
}

func TestError_WithCause(t *testing.T) {
	cause := fmt.Errorf("bad digit")
	err := InvalidColor("cannot decode").WithCause(cause)

	assert.Equal(t, "cannot decode: bad digit", err.Error())
	assert.Equal(t, cause, Unwrap(err))
}

func TestError_WithDetailsKeepsCode(t *testing.T) {
	details := map[string]string{"seed": "is required"}
	err := ErrValidation.WithDetails(details)

	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, details, err.Details)
	assert.Nil(t, ErrValidation.Details, "sentinel must not be mutated")
}

func TestCode_ExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidColor, 2},
		{CodeInvalidLevel, 2},
		{CodeValidation, 2},
		{CodeInternal, 1},
		{Code("SOMETHING_ELSE"), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.ExitCode())
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(fmt.Errorf("wrapped: %w", ErrInvalidColor)))
	assert.Equal(t, 1, ExitCode(fmt.Errorf("plain")))
	assert.Equal(t, 1, ExitCode(Wrap(fmt.Errorf("boom"), CodeInternal, "render failed")))
}
