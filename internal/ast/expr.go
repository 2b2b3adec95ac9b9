package ast

import "cinder/internal/types"

// IntegerLiteral represents an integer constant
// Example: "0", "42"
type IntegerLiteral struct {
	Pos    Position
	EndPos Position
	Value  uint64
	Type   types.Type
}

// FloatLiteral represents a float constant
// Example: "1.5", "2."
type FloatLiteral struct {
	Pos    Position
	EndPos Position
	Value  float64
	Type   types.Type
}

// BoolLiteral represents "true" or "false"
type BoolLiteral struct {
	Pos    Position
	EndPos Position
	Value  bool
	Type   types.Type
}

// IdentExpr represents a reference to a name
// Example: "x"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
	Type   types.Type
}

// BinaryExpr represents infix operations
// Example: "a + b", "2 * (x - 1)"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Left   Expr
	Op     Operator
	Right  Expr
	Type   types.Type
}

// PrefixExpr represents unary prefix operations
// Example: "-x", "!flag", "~mask"
type PrefixExpr struct {
	Pos    Position
	EndPos Position
	Op     Operator
	Value  Expr
	Type   types.Type
}

func NewIntegerLiteral(value uint64, pos, end Position) *IntegerLiteral {
	return &IntegerLiteral{Pos: pos, EndPos: end, Value: value, Type: types.IntegerLiteral()}
}

func NewFloatLiteral(value float64, pos, end Position) *FloatLiteral {
	return &FloatLiteral{Pos: pos, EndPos: end, Value: value, Type: types.FloatLiteral()}
}

func NewBoolLiteral(value bool, pos, end Position) *BoolLiteral {
	return &BoolLiteral{Pos: pos, EndPos: end, Value: value, Type: types.Bool()}
}
