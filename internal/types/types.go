// Package types models the value types of the language and the rules for
// comparing and promoting them.
package types

import "fmt"

// Type is a closed set of value types. Implementations are the exported
// structs in this package.
type Type interface {
	fmt.Stringer
	// Clone returns an independent deep copy.
	Clone() Type
	isType()
}

// Integer is a fixed-size integer. Size is in bytes.
type Integer struct {
	Signed bool
	Size   int32
}

// Float is a floating point number. Size is in bytes.
type Float struct {
	Size int32
}

type Boolean struct{}

// StringLiteral is the type of a quoted string in source.
type StringLiteral struct{}

type Pointer struct {
	Target Type
}

// Array is a fixed-length sequence of Target. Length does not take part in equality.
type Array struct {
	Target Type
	Length int32
}

// Named refers to a user-defined nominal type that has not been resolved
// against any declaration.
type Named struct {
	Name string
}

// Procedure is a placeholder for callable types.
type Procedure struct{}

func (*Integer) isType()       {}
func (*Float) isType()         {}
func (*Boolean) isType()       {}
func (*StringLiteral) isType() {}
func (*Pointer) isType()       {}
func (*Array) isType()         {}
func (*Named) isType()         {}
func (*Procedure) isType()     {}

func (t *Integer) Clone() Type     { return &Integer{Signed: t.Signed, Size: t.Size} }
func (t *Float) Clone() Type       { return &Float{Size: t.Size} }
func (*Boolean) Clone() Type       { return &Boolean{} }
func (*StringLiteral) Clone() Type { return &StringLiteral{} }
func (t *Pointer) Clone() Type     { return &Pointer{Target: cloneOrNil(t.Target)} }
func (t *Array) Clone() Type       { return &Array{Target: cloneOrNil(t.Target), Length: t.Length} }
func (t *Named) Clone() Type       { return &Named{Name: t.Name} }
func (*Procedure) Clone() Type     { return &Procedure{} }

func cloneOrNil(t Type) Type {
	if t == nil {
		return nil
	}
	return t.Clone()
}

// Clone deep copies t, tolerating nil.
func Clone(t Type) Type {
	return cloneOrNil(t)
}

func (t *Integer) String() string {
	switch t.Size {
	case 1, 2, 4, 8:
		prefix := "u"
		if t.Signed {
			prefix = "i"
		}
		return fmt.Sprintf("%s%d", prefix, t.Size*8)
	}
	return fmt.Sprintf("int<%t,%d>", t.Signed, t.Size)
}

func (t *Float) String() string {
	switch t.Size {
	case 4, 8:
		return fmt.Sprintf("f%d", t.Size*8)
	}
	return fmt.Sprintf("float<%d>", t.Size)
}

func (*Boolean) String() string       { return "bool" }
func (*StringLiteral) String() string { return "string" }
func (t *Pointer) String() string     { return "*" + nameOf(t.Target) }
func (t *Array) String() string       { return fmt.Sprintf("%s[%d]", nameOf(t.Target), t.Length) }
func (t *Named) String() string       { return t.Name }
func (*Procedure) String() string     { return "proc" }

func nameOf(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Equal reports structural equality. Pointers and arrays compare their
// targets; array lengths are ignored.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *Integer:
		y, ok := b.(*Integer)
		return ok && x.Signed == y.Signed && x.Size == y.Size
	case *Float:
		y, ok := b.(*Float)
		return ok && x.Size == y.Size
	case *Boolean:
		_, ok := b.(*Boolean)
		return ok
	case *StringLiteral:
		_, ok := b.(*StringLiteral)
		return ok
	case *Pointer:
		y, ok := b.(*Pointer)
		return ok && Equal(x.Target, y.Target)
	case *Array:
		y, ok := b.(*Array)
		return ok && Equal(x.Target, y.Target)
	case *Named:
		y, ok := b.(*Named)
		return ok && x.Name == y.Name
	case *Procedure:
		_, ok := b.(*Procedure)
		return ok
	}
	return false
}

// IsNumeric reports whether t is an integer or float type.
func IsNumeric(t Type) bool {
	switch t.(type) {
	case *Integer, *Float:
		return true
	}
	return false
}
