package overrides

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

var (
	// ErrUnknownField is a shape error: the overlay names a field the
	// defaults registry does not declare.
	ErrUnknownField = errors.New("unknown override field")
	// ErrFieldType is a type error: the overlay value does not fit the
	// declared kind of its field.
	ErrFieldType = errors.New("override type mismatch")
	// ErrMalformedModifier reports a modifier descriptor without a name, with
	// a non-positive count, or missing a sub-type its variant requires.
	ErrMalformedModifier = errors.New("malformed modifier descriptor")
	// ErrInvalidDefault reports a registry default that does not satisfy its
	// own field kind.
	ErrInvalidDefault = errors.New("invalid override default")
	// ErrOverlaySyntax reports an overlay document that cannot be read at all.
	ErrOverlaySyntax = errors.New("malformed overlay document")
	// ErrAlreadyInitialized is returned by every Init call after the first.
	ErrAlreadyInitialized = errors.New("overrides already initialized")
)

// FieldError ties one of the sentinel errors above to the field it concerns.
// Use errors.Is against the sentinels and errors.As to recover the field name.
type FieldError struct {
	Field string
	Kind  error
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Field)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// malformedError carries descriptor problems so they classify as
// ErrMalformedModifier wherever they surface.
type malformedError struct {
	msg string
}

func malformed(format string, args ...any) error {
	return &malformedError{msg: fmt.Sprintf(format, args...)}
}

func (e *malformedError) Error() string { return e.msg }

func (e *malformedError) Is(target error) bool { return target == ErrMalformedModifier }

// classify picks the sentinel for a value-level problem.
func classify(err error) error {
	if errors.Is(err, ErrMalformedModifier) {
		return ErrMalformedModifier
	}
	return ErrFieldType
}

func fieldError(field string, kind, err error) error {
	return oops.
		In("overrides").
		With("field", field).
		Wrap(&FieldError{Field: field, Kind: kind, Err: err})
}

func syntaxError(err error) error {
	return oops.
		In("overrides").
		Wrap(fmt.Errorf("%w: %w", ErrOverlaySyntax, err))
}

// fieldName returns the field err concerns, or "" when it names none.
func fieldName(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}
