// Package apperror defines the error taxonomy the API maps to HTTP
// responses. Controllers return these from operation closures; anything
// else is treated as an unknown (500) failure.
package apperror

import (
	"errors"
	"fmt"
)

// NotFoundError signals that a referenced resource id does not resolve.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// BusinessRuleError signals a precondition failure, e.g. deleting a region
// that still owns projects without the force flag.
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

func BusinessRule(message string) error {
	return &BusinessRuleError{Message: message}
}

// ValidationError carries the full field-error map so a client can attach
// each message to the offending input.
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	return "the given data was invalid"
}

func Validation(fieldErrors map[string][]string) error {
	return &ValidationError{Errors: fieldErrors}
}

func ValidationField(field, message string) error {
	return &ValidationError{Errors: map[string][]string{field: {message}}}
}
