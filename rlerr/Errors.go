// Package rlerr implements the errors returned by the Q-learning
// packages.
//
// Errors are reported as an *Error, which records the operation that
// failed together with one of the sentinel errors of this package, or
// as an *EnvironmentError, which wraps a failure reported by an
// environment without modifying it.
package rlerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is reported when a table is constructed with
	// a non-positive number of states or actions, or when a table does
	// not fit the environment it is used with
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrOutOfRange is reported when a state or action index lies
	// outside the dimensions of a table
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is reported when a hyperparameter or argument
	// lies outside its valid range
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEnvironment is matched by every *EnvironmentError
	ErrEnvironment = errors.New("environment error")
)

// Error implements errors unique to tabular learning
type Error struct {
	Op  string
	Err error
}

// New returns an *Error for operation op wrapping sentinel err, with
// additional detail formatted from format and args
func New(op string, err error, format string, args ...interface{}) *Error {
	if format == "" {
		return &Error{Op: op, Err: err}
	}
	return &Error{Op: op, Err: fmt.Errorf("%w: "+format,
		append([]interface{}{err}, args...)...)}
}

// Error satisifes the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// EnvironmentError reports a failure of the environment during some
// operation. The environment's error is kept as is.
type EnvironmentError struct {
	Op  string
	Err error
}

// Environment wraps an error returned by an environment. A nil error
// is returned as nil.
func Environment(op string, err error) error {
	if err == nil {
		return nil
	}
	return &EnvironmentError{Op: op, Err: err}
}

// Error satisifes the error interface
func (e *EnvironmentError) Error() string {
	return e.Op + ": " + ErrEnvironment.Error() + ": " + e.Err.Error()
}

// Unwrap returns the error reported by the environment
func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrEnvironment
func (e *EnvironmentError) Is(target error) bool {
	return target == ErrEnvironment
}

// IsInvalidDimension returns whether or not an error reports an invalid
// table dimension
func IsInvalidDimension(err error) bool {
	return errors.Is(err, ErrInvalidDimension)
}

// IsOutOfRange returns whether or not an error reports an out of range
// table index
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsInvalidArgument returns whether or not an error reports an invalid
// argument
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsEnvironment returns whether or not an error was reported by an
// environment
func IsEnvironment(err error) bool {
	return errors.Is(err, ErrEnvironment)
}
