package types

import (
	"errors"
	"fmt"
)

// ErrIncompatible is matched by every coalescing failure.
var ErrIncompatible = errors.New("types cannot be coalesced")

// TypeError describes two operand types that have no common numeric type.
type TypeError struct {
	Left  Type
	Right Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("incompatible types '%s' and '%s'", nameOf(e.Left), nameOf(e.Right))
}

func (e *TypeError) Unwrap() error {
	return ErrIncompatible
}

// PromotedFloatSize is the size of the float produced when an integer meets a float.
const PromotedFloatSize int32 = 8

// Coalesce returns the promoted type of a binary numeric operation over a and b.
//
//	int   ⊕ int   → int, signed if either is, max size
//	int   ⊕ float → f64
//	float ⊕ float → float, max size
//
// Anything else fails with a *TypeError wrapping ErrIncompatible.
func Coalesce(a, b Type) (Type, error) {
	switch x := a.(type) {
	case *Integer:
		switch y := b.(type) {
		case *Integer:
			return &Integer{
				Signed: x.Signed || y.Signed,
				Size:   max(x.Size, y.Size),
			}, nil
		case *Float:
			return &Float{Size: PromotedFloatSize}, nil
		}
	case *Float:
		switch y := b.(type) {
		case *Integer:
			return &Float{Size: PromotedFloatSize}, nil
		case *Float:
			return &Float{Size: max(x.Size, y.Size)}, nil
		}
	}

	return nil, &TypeError{Left: Clone(a), Right: Clone(b)}
}
