// Package forms is the input boundary. It decodes user-supplied records,
// coerces numeric fields and validates them before they reach the state.
package forms

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("known", validateKnown); err != nil {
		panic(fmt.Sprintf("forms: registering known validation: %v", err))
	}
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// enum is implemented by every enumerated model type.
type enum interface {
	IsValid() bool
}

// validateKnown accepts values whose type reports them as valid.
func validateKnown(fl validator.FieldLevel) bool {
	v, ok := fl.Field().Interface().(enum)
	if !ok {
		return false
	}
	return v.IsValid()
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields map[string]string
	err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input: " + e.err.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for field, rule := range e.Fields {
		parts = append(parts, field+" ("+rule+")")
	}
	slices.Sort(parts)
	return "invalid input: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return e.err }

// Validate checks v against its struct tags.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{err: err}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fe.Tag()
	}
	return &ValidationError{Fields: fields, err: err}
}

// fieldPath drops the struct name from the namespace: "ScenarioForm.name"
// becomes "name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// Decode unmarshals raw JSON into dst and validates it.
func Decode(raw []byte, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return &ValidationError{err: fmt.Errorf("decoding body: %w", err)}
	}
	return Validate(dst)
}
