package configurator

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product definition not registered")
	ErrCannotAdvance    = errors.New("current step is not complete")
	ErrInvalidJump      = errors.New("cannot jump past the furthest reached step")
	ErrNoProductType    = errors.New("no product type selected")
	ErrSessionCompleted = errors.New("session already completed")
)

// UnknownProductTypeError is returned when a discriminator does not name one
// of the supported product types.
type UnknownProductTypeError struct {
	Type string
}

func (e *UnknownProductTypeError) Error() string {
	return fmt.Sprintf("unknown product type %q", e.Type)
}

// FieldError reports an update value that does not fit the configuration,
// e.g. text for a numeric field. Field is the JSON path when known.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid field value: %v", e.Err)
	}
	return fmt.Sprintf("invalid value for %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
