package spiro

import (
	"errors"
	"fmt"
)

// Domain errors for engine construction and configuration.
var (
	// ErrInvalidParameter indicates a geometry, capacity or colour parameter
	// outside its valid range.
	ErrInvalidParameter = errors.New("spiro: invalid parameter")

	// ErrCapacityExceeded indicates a trail capacity above MaxCapacity.
	ErrCapacityExceeded = errors.New("spiro: capacity exceeds hard ceiling")
)

// ParamError wraps a domain error with the offending parameter.
type ParamError struct {
	Param string
	Value any
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s = %v", e.Err, e.Param, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func invalid(param string, value any) error {
	return &ParamError{Param: param, Value: value, Err: ErrInvalidParameter}
}
