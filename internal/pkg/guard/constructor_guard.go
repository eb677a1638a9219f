// Package guard provides a lightweight constructor guard for commands and queries.
// Embedding a ConstructorGuard in a struct makes zero-value instances detectable,
// so handlers can reject objects that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated constructor.
// The zero value fails validation, which is the whole point.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call it inside the constructor of the object being guarded.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
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
