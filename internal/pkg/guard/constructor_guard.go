// Package guard holds ConstructorGuard, which lets value types tell a value built by
// their constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in command, query and domain types whose constructors
// validate input. Only NewConstructorGuard produces a guard that passes Validate.
//
// Example:
//
//	type CreateInvoiceCommand struct {
//	    customerID kernel.CustomerID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c CreateInvoiceCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
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
