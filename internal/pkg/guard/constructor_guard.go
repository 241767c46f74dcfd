// Package guard lets value objects, commands and queries detect that they were
// built through their constructor instead of as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field; only NewConstructorGuard sets it.
//
//	type PackageCode struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c PackageCode) Validate() error {
//	    return c.guard.Validate(ErrPackageCodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
