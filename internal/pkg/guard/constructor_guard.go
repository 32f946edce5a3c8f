package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate
// when a nil validation error is supplied. Validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes a zero-value instance distinguishable from one that went through
// its constructor, so invariants established there cannot be bypassed.
//
// Example usage:
//
//	type Line struct {
//	    productCode string
//	    quantity    int
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewLine(code string, quantity int) (Line, error) {
//	    // ...validate...
//	    return Line{productCode: code, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (l Line) Validate() error {
//	    return l.guard.Validate(ErrLineIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
// Call it in the constructor of domain objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns nil for properly constructed objects. For zero-value objects it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
