package service

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/deptsite/cms-api/pkg/errors"
)

// NewValidator returns a validator that reports fields by their JSON
// names so clients can match errors back to payload keys.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validationError converts binding or validator failures into a 400
// error enumerating every offending field.
func validationError(err error, message string) *appErrors.Error {
	var fields []appErrors.FieldError

	var invalid validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &invalid):
		for _, fe := range invalid {
			fields = append(fields, appErrors.FieldError{Field: fe.Field(), Reason: reasonFor(fe)})
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		fields = append(fields, appErrors.FieldError{Field: field, Reason: "expected " + typeErr.Type.String() + ", got " + typeErr.Value})
	}

	e := appErrors.Validation(message, fields)
	e.Err = err
	return e
}

// BindError converts a request-body decode failure into a 400 that
// names the offending field when the payload carried a wrong-typed
// value. Handlers use it so type mismatches report the same errors
// array as struct validation.
func BindError(err error) *appErrors.Error {
	return validationError(err, "Invalid request body")
}

// fieldError builds a single-field 400 error for checks the struct
// validator cannot express, such as date coercion.
func fieldError(field, reason string) *appErrors.Error {
	return appErrors.Validation("Invalid input", []appErrors.FieldError{{Field: field, Reason: reason}})
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// dateLayouts covers the formats the admin UI has historically sent.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate coerces a client-supplied date string into a timestamp.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// normalizeOptional trims an optional string, collapsing blanks to nil.
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
