package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator checks request structs against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	sharedValidator     *Validator
	sharedValidatorOnce sync.Once
)

// GetValidator returns the process-wide validator, building it on first use
func GetValidator() *Validator {
	sharedValidatorOnce.Do(func() {
		sharedValidator = newValidator()
	})
	return sharedValidator
}

func newValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireName)
	return &Validator{validate: v}
}

// wireName reports a field by the name clients send: form first, then json
func wireName(fld reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

// ValidateStruct validates a struct using its tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// ValidateVar validates a single value against a tag
func (v *Validator) ValidateVar(field any, tag string) error {
	return v.validate.Var(field, tag)
}

var validationMessages = map[string]func(param string) string{
	"required": func(string) string { return "This field is required" },
	"uuid":     func(string) string { return "Must be a valid UUID" },
	"max":      func(p string) string { return fmt.Sprintf("Must be at most %s", p) },
	"min":      func(p string) string { return fmt.Sprintf("Must be at least %s", p) },
}

// FormatValidationError maps each failing field to a client-facing message
// without exposing Go struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		msg := "Invalid value"
		if format, ok := validationMessages[fe.Tag()]; ok {
			msg = format(fe.Param())
		}
		out[fe.Field()] = msg
	}
	return out
}
