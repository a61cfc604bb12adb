// ABOUTME: Typed failure values shared by all mutation paths
// ABOUTME: NotFound, Conflict, and Validation errors carry structured context

package store

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned by Insert when the id is already present.
// The generator never repeats ids, so hitting this indicates a bug.
var ErrDuplicateID = errors.New("duplicate entity id")

// NotFoundError reports that the target of an id-based operation is absent.
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ConflictError reports that a uniqueness constraint would be violated.
type ConflictError struct {
	Kind  Kind
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s taken", e.Kind, e.Field)
}

// ValidationError reports a failed foreign-key or business precondition.
type ValidationError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
