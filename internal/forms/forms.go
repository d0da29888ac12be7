// Package forms validates user input before it is sent to the backend.
// The rules mirror the backend's request constraints so that a rejected form
// never costs a round trip.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("invalid form")

// FieldError is one failed rule on one field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every failed rule of a form, in field order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is(err, ErrInvalid) match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their label tag so messages read like the web form.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			if label := f.Tag.Get("label"); label != "" {
				return label
			}
			return f.Name
		})
	})
	return validate
}

// check runs the struct tags of form and converts failures to a ValidationError.
func check(form any) *ValidationError {
	verr := &ValidationError{}

	err := getValidator().Struct(form)
	if err == nil {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.add("", err.Error())
		return verr
	}

	for _, fe := range fieldErrs {
		verr.add(fe.Field(), message(fe))
	}
	return verr
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", label, fe.Param())
	case "email":
		return fmt.Sprintf("%s should be valid", label)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Please select at least %s %s", fe.Param(), strings.ToLower(label))
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not repeat", label)
	default:
		return fmt.Sprintf("%s failed the %q check", label, fe.Tag())
	}
}
