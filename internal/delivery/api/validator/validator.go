// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError carries the rejected fields of a request body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+" ("+f.Rule+")")
	}

	return "invalid fields: " + strings.Join(names, ", ")
}

// Unwrap makes the error an AppError for the central error handler.
func (e *ValidationError) Unwrap() error {
	return domainerrors.ErrValidationFailed
}

// RequestValidator validates bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports json field names and understands decimal amounts.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()

			return f
		}

		return nil
	}, decimal.Decimal{})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}

	return out
}
