package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/swatchkit/swatch/internal/errors"
	"github.com/swatchkit/swatch/internal/validation"
)

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	for _, req := range []validation.SeedRequest{
		{Seed: "#D2691E"},
		{Seed: "#d2691e", Level: "AA"},
		{Seed: "#000000", Level: "AAA"},
	} {
		assert.NoError(t, v.Validate(req), req.Seed)
	}
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name       string
		req        validation.SeedRequest
		wantField  string
		wantDetail string
	}{
		{
			name:       "missing seed",
			req:        validation.SeedRequest{},
			wantField:  "seed",
			wantDetail: "is required",
		},
		{
			name:       "short hex",
			req:        validation.SeedRequest{Seed: "#FFF"},
			wantField:  "seed",
			wantDetail: "must be exactly 7 characters",
		},
		{
			name:       "missing hash",
			req:        validation.SeedRequest{Seed: "D2691E0"},
			wantField:  "seed",
			wantDetail: "must be a hex color like #D2691E",
		},
		{
			name:       "non hex digits",
			req:        validation.SeedRequest{Seed: "#GGGGGG"},
			wantField:  "seed",
			wantDetail: "must be a hex color like #D2691E",
		},
		{
			name:       "unknown level",
			req:        validation.SeedRequest{Seed: "#D2691E", Level: "AAAA"},
			wantField:  "level",
			wantDetail: "must be one of: AA AAA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)
			assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))

			var domainErr *domainerrors.Error
			require.True(t, errors.As(err, &domainErr))
			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Equal(t, tt.wantDetail, details[tt.wantField])
			assert.Contains(t, domainErr.Message, tt.wantField)
		})
	}
}

func TestValidator_ContrastRequest(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Validate(validation.ContrastRequest{Foreground: "#000000", Background: "#FFFFFF"}))

	err := v.Validate(validation.ContrastRequest{Foreground: "#000", Background: "white"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, errors.As(err, &domainErr))
	details := domainErr.Details.(map[string]string)
	assert.Len(t, details, 2)
	assert.Equal(t, "validation failed: background must be exactly 7 characters; foreground must be exactly 7 characters", domainErr.Message)
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.ValidateSeed("")
	require.Error(t, err)

	// Should use JSON tag name "seed", not struct field name "Seed"
	assert.Contains(t, err.Error(), "seed")
	assert.NotContains(t, err.Error(), "Seed")
}
