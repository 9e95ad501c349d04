package view

import (
	"errors"
	"fmt"
)

var (
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrImmutable         = errors.New("immutable view")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// AttributeError signals a field name that does not resolve to any
// underlying key under the configured prefixes.
type AttributeError struct {
	Field string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("view has no attribute %q", e.Field)
}

func (e *AttributeError) Unwrap() error { return ErrAttributeNotFound }

// TypeError signals a strict-mode write whose value kind differs from the
// kind of the value currently stored under the field.
type TypeError struct {
	Field string
	Want  string
	Got   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value for %s must be a %s, not %s", e.Field, e.Want, e.Got)
}

func (e *TypeError) Unwrap() error { return ErrTypeMismatch }

// ImmutableError signals a mutation attempted through a view constructed
// with Mutable(false).
type ImmutableError struct {
	Op string
}

func (e *ImmutableError) Error() string {
	return fmt.Sprintf("%s: view is immutable", e.Op)
}

func (e *ImmutableError) Unwrap() error { return ErrImmutable }

// ArgumentError signals a helper invoked with an argument of the wrong
// kind.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return e.Message }

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }
