// Package guard provides a defensive construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect whether
// it was created through its designated constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error
// is passed as the validation error, so validation still fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its constructor.
// The zero value fails validation, which prevents accidental use of
// zero-value commands, queries, and domain objects.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the owning object as
// properly constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
