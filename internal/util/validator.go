package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// credit: https://github.com/go-playground/validator/issues/559#issuecomment-976459959

// Deterministic messages per field+rule so clients can map them to UI
// affordances without parsing free text.
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %v field is required.", field)
	case "max":
		return fmt.Sprintf("The %v may not be greater than %v characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %v must be at least %v characters.", field, fe.Param())
	case "numeric", "number":
		return fmt.Sprintf("The %v must be a number.", field)
	case "latitude":
		return "Latitude must be between -90 and 90 degrees."
	case "longitude":
		return "Longitude must be between -180 and 180 degrees."
	}

	return fe.Error() // default error
}

// GenerateFieldErrors extracts binding/validation errors into a field-error
// map. Each key is the json name of the offending field, each value the list
// of rule messages for it.
//
// Example output:
//
//	{
//	  "latitude": ["Latitude must be between -90 and 90 degrees."]
//	}
func GenerateFieldErrors(err error) map[string][]string {
	out := map[string][]string{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			field := fe.Field()
			out[field] = append(out[field], msgForTag(fe))
		}
		return out
	}

	// A type mismatch in the request body surfaces from the json decoder,
	// not the validator.
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		field := ute.Field
		out[field] = append(out[field], fmt.Sprintf("The %v must be a number.", field))
		return out
	}

	out["body"] = append(out["body"], "The request body is invalid.")
	return out
}

// RegisterTagNameFunc makes validator report fields by their json tag so
// error maps line up with the wire format.
func RegisterTagNameFunc(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
