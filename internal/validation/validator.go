// Package validation validates palette requests at the engine boundary using
// the validator/v10 library.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/swatchkit/swatch/internal/errors"
)

// SeedRequest is a request to generate a palette.
type SeedRequest struct {
	Seed  string `json:"seed" validate:"required,len=7,hexcolor"`
	Level string `json:"level" validate:"omitempty,oneof=AA AAA"`
}

// ContrastRequest is a standalone contrast query.
type ContrastRequest struct {
	Foreground string `json:"foreground" validate:"required,len=7,hexcolor"`
	Background string `json:"background" validate:"required,len=7,hexcolor"`
	Level      string `json:"level" validate:"omitempty,oneof=AA AAA"`
}

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our domain.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		// Remove options like omitempty, -
		for i := 0; i < len(name); i++ {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns a domain error.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

// ValidateSeed checks a single seed string.
func (v *Validator) ValidateSeed(seed string) error {
	return v.Validate(SeedRequest{Seed: seed})
}

// formatError converts validator errors to domain errors.
func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Collect all field errors
	fieldErrors := make(map[string]string)
	for _, e := range validationErrs {
		fieldErrors[e.Field()] = v.friendlyMessage(e)
	}

	fields := make([]string, 0, len(fieldErrors))
	for field, msg := range fieldErrors {
		fields = append(fields, field+" "+msg)
	}
	sort.Strings(fields)

	return domainerrors.ValidationWithDetails("validation failed: "+strings.Join(fields, "; "), fieldErrors)
}

func (v *Validator) friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", e.Param())
	case "hexcolor":
		return "must be a hex color like #D2691E"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}
