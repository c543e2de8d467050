// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// value objects to tell a constructed value apart from its zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its constructor.
//
// Example:
//
//	var ErrEstimateQueryIsNotConstructed = errors.New("EstimateDeliveryTimeQuery must be created via NewEstimateDeliveryTimeQuery")
//
//	type EstimateDeliveryTimeQuery struct {
//	    orderTime kernel.TimeOfDay
//	    guard     guard.ConstructorGuard
//	}
//
//	func (q EstimateDeliveryTimeQuery) Validate() error {
//	    return q.guard.Validate(ErrEstimateQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
