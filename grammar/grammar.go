package grammar

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

type File struct {
	Pos   lexer.Position
	Decls []*Decl `@@*`
}

type Decl struct {
	Pos    lexer.Position
	Tokens []lexer.Token

	Name  *Name `"let" @@`
	Type  *Type `[ ":" @@ ]`
	Value *Expr `"=" @@ ";"`
}

type Name struct {
	Pos   lexer.Position
	Value string `@Ident`
}

// Type is a base type followed by any number of array suffixes. A pointer
// takes everything after the '*', so "*i32[4]" points at an array.
type Type struct {
	Base     *BaseType      `@@`
	Suffixes []*ArraySuffix `@@*`
}

type ArraySuffix struct {
	Length ArrayLength `"[" @Integer "]"`
}

type BaseType struct {
	Pointer *Type  `  "*" @@`
	Name    string `| @Ident`
}

// Expr is a sum of terms; Term is a product of unary expressions. The two
// levels give '*', '/' and '%' the tighter binding.
type Expr struct {
	Left *Term     `@@`
	Rest []*TermOp `@@*`
}

type TermOp struct {
	Op    string `@("+" | "-")`
	Right *Term  `@@`
}

type Term struct {
	Left *Unary      `@@`
	Rest []*FactorOp `@@*`
}

type FactorOp struct {
	Op    string `@("*" | "/" | "%")`
	Right *Unary `@@`
}

type Unary struct {
	Prefix  *Prefix  `  @@`
	Primary *Primary `| @@`
}

type Prefix struct {
	Pos     lexer.Position
	Op      string `@("!" | "-" | "~")`
	Operand *Unary `@@`
}

type Primary struct {
	Pos    lexer.Position
	Tokens []lexer.Token

	Float  *FloatLit   `  @Float`
	Int    *IntegerLit `| @Integer`
	Bool   *Boolean    `| @("true" | "false")`
	Ident  *string     `| @Ident`
	Parens *Expr       `| "(" @@ ")"`
}

// IntegerLit rejects literals that do not fit in 64 bits.
type IntegerLit uint64

func (i *IntegerLit) Capture(values []string) error {
	v, err := strconv.ParseUint(values[0], 10, 64)
	if err != nil {
		return fmt.Errorf("integer literal '%s' is out of range", values[0])
	}
	*i = IntegerLit(v)
	return nil
}

type FloatLit float64

func (f *FloatLit) Capture(values []string) error {
	v, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return fmt.Errorf("invalid float literal '%s'", values[0])
	}
	*f = FloatLit(v)
	return nil
}

type Boolean bool

func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}

// ArrayLength must fit in an i32.
type ArrayLength int32

func (l *ArrayLength) Capture(values []string) error {
	v, err := strconv.ParseUint(values[0], 10, 64)
	if err != nil || v > math.MaxInt32 {
		return fmt.Errorf("array length '%s' does not fit in i32", values[0])
	}
	*l = ArrayLength(v)
	return nil
}
