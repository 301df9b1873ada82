package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Schema is a rule table: constraints live in the form's `validate` tags and
// Messages maps each JSON field name to the message shown when any of its
// constraints fail.
type Schema struct {
	Name     string
	Messages map[string]string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their JSON names so messages line up with request bodies
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Check validates candidate against the schema. It returns the candidate
// unchanged on success, or FieldErrors describing every failing field.
func Check[T any](schema Schema, candidate T) (T, error) {
	err := validate.Struct(candidate)
	if err == nil {
		return candidate, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		var zero T
		return zero, &Error{Message: "cannot validate " + schema.Name, Cause: err}
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		if _, seen := fieldErrors[field]; seen {
			continue
		}
		msg, ok := schema.Messages[field]
		if !ok {
			msg = "failed " + fe.Tag() + " constraint"
		}
		fieldErrors[field] = msg
	}

	var zero T
	return zero, fieldErrors
}
