// Package ast defines the syntax tree built by the parser and annotated by
// semantic analysis.
package ast

import (
	"fmt"

	"cinder/internal/types"
)

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

// Decl is a top-level declaration.
type Decl interface {
	Node
	isDecl()
}

// Expr is an expression. ExprType is nil until the expression has been
// typed, except for literals which are typed on construction.
type Expr interface {
	Node
	ExprType() types.Type
	isExpr()
}

func (*VarDecl) isDecl() {}

func (*IntegerLiteral) isExpr() {}
func (*FloatLiteral) isExpr()   {}
func (*BoolLiteral) isExpr()    {}
func (*IdentExpr) isExpr()      {}
func (*BinaryExpr) isExpr()     {}
func (*PrefixExpr) isExpr()     {}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (v *VarDecl) NodePos() Position    { return v.Pos }
func (v *VarDecl) NodeEndPos() Position { return v.EndPos }
func (*VarDecl) NodeType() NodeType     { return VAR_DECL }

func (l *IntegerLiteral) NodePos() Position    { return l.Pos }
func (l *IntegerLiteral) NodeEndPos() Position { return l.EndPos }
func (*IntegerLiteral) NodeType() NodeType     { return INTEGER_LITERAL }
func (l *IntegerLiteral) ExprType() types.Type { return l.Type }

func (l *FloatLiteral) NodePos() Position    { return l.Pos }
func (l *FloatLiteral) NodeEndPos() Position { return l.EndPos }
func (*FloatLiteral) NodeType() NodeType     { return FLOAT_LITERAL }
func (l *FloatLiteral) ExprType() types.Type { return l.Type }

func (l *BoolLiteral) NodePos() Position    { return l.Pos }
func (l *BoolLiteral) NodeEndPos() Position { return l.EndPos }
func (*BoolLiteral) NodeType() NodeType     { return BOOL_LITERAL }
func (l *BoolLiteral) ExprType() types.Type { return l.Type }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }
func (i *IdentExpr) ExprType() types.Type { return i.Type }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }
func (b *BinaryExpr) ExprType() types.Type { return b.Type }

func (p *PrefixExpr) NodePos() Position    { return p.Pos }
func (p *PrefixExpr) NodeEndPos() Position { return p.EndPos }
func (*PrefixExpr) NodeType() NodeType     { return PREFIX_EXPR }
func (p *PrefixExpr) ExprType() types.Type { return p.Type }

// Group widens the span of a parenthesised expression to cover its
// parentheses. There is no node for the parentheses themselves.
func Group(expr Expr, pos, end Position) Expr {
	switch node := expr.(type) {
	case *IntegerLiteral:
		node.Pos, node.EndPos = pos, end
	case *FloatLiteral:
		node.Pos, node.EndPos = pos, end
	case *BoolLiteral:
		node.Pos, node.EndPos = pos, end
	case *IdentExpr:
		node.Pos, node.EndPos = pos, end
	case *BinaryExpr:
		node.Pos, node.EndPos = pos, end
	case *PrefixExpr:
		node.Pos, node.EndPos = pos, end
	}
	return expr
}
