package semantic

import (
	"errors"
	"fmt"

	"cinder/internal/ast"
	"cinder/internal/types"
)

type ErrorKind int

const (
	Unresolved ErrorKind = iota
	InvalidOperator
	Incompatible
	TypeMismatch
	Unsupported
)

var (
	ErrUnresolved      = errors.New("unresolved identifier")
	ErrInvalidOperator = errors.New("invalid operator")
	ErrIncompatible    = errors.New("incompatible operands")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrUnsupported     = errors.New("unsupported node")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case Unresolved:
		return ErrUnresolved
	case InvalidOperator:
		return ErrInvalidOperator
	case Incompatible:
		return ErrIncompatible
	case Unsupported:
		return ErrUnsupported
	}
	return ErrTypeMismatch
}

func (k ErrorKind) String() string {
	return k.sentinel().Error()
}

// Error is a failed analysis of Node. For incompatible operands Expected
// holds the left operand's type and Actual the right one's.
type Error struct {
	Kind     ErrorKind
	Node     ast.Node
	Message  string
	Expected types.Type
	Actual   types.Type
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Position(), e.Message)
}

// Unwrap exposes the kind sentinel and, when present, the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind.sentinel(), e.Cause}
	}
	return []error{e.Kind.sentinel()}
}

// Position is where the failing node starts, or the zero position when the
// node is missing.
func (e *Error) Position() ast.Position {
	if e.Node == nil {
		return ast.Position{}
	}
	return e.Node.NodePos()
}
