package vregistry

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRegistered indicates a registration for a name that is already resolved.
	ErrAlreadyRegistered = errors.New("validator already registered")
	// ErrUnknownType indicates a type identifier missing from the catalog.
	ErrUnknownType = errors.New("unknown validator type")
	// ErrInvalidValidatorType indicates a constructed value that does not implement validators.Validator.
	ErrInvalidValidatorType = errors.New("constructed value is not a validator")
	// ErrUnknownValidator indicates a dispatch for a name with no entry and no fallback type.
	ErrUnknownValidator = errors.New("unknown validator")
	// ErrConstruction indicates a constructor that returned an error.
	ErrConstruction = errors.New("validator construction failed")
	// ErrInvalidRegistration indicates an empty name, identifier or function.
	ErrInvalidRegistration = errors.New("invalid registration")
)

// Error reports a failed registry operation. Use errors.Is against the
// sentinel errors above to tell failures apart.
type Error struct {
	kind  error
	name  string
	cause error
}

func newError(kind error, name string, cause error) *Error {
	return &Error{kind: kind, name: name, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("vregistry: %s '%s': %s", e.kind.Error(), e.name, e.cause.Error())
	}
	return fmt.Sprintf("vregistry: %s '%s'", e.kind.Error(), e.name)
}

// Kind returns the sentinel describing the failure.
func (e *Error) Kind() error {
	return e.kind
}

// Name returns the validator name or type identifier the failure refers to.
func (e *Error) Name() string {
	return e.name
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}
