package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldErrors maps a struct field's json-ish name to the failed validation tag.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, tag := range fe {
		parts = append(parts, field+":"+tag)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (fe FieldErrors) Has(field, tag string) bool {
	return fe[field] == tag
}

func (fe FieldErrors) Details() map[string]any {
	out := make(map[string]any, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

// ValidateStruct runs the validate tags on v. It returns FieldErrors for rule
// violations and a plain error when v cannot be validated at all.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := make(FieldErrors, len(verrs))
	for _, fieldErr := range verrs {
		fe[strings.ToLower(fieldErr.Field())] = fieldErr.Tag()
	}
	return fe
}
