package ast

import "cinder/internal/types"

// Program is a whole source file. Decls are kept in source order.
type Program struct {
	Pos    Position
	EndPos Position
	Decls  []Decl
}

// Ident represents a declared name
// Example: "x", "total"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// VarDecl represents a variable declaration
// Example: "let x: i32 = 5;", "let y = 1.5;"
type VarDecl struct {
	Pos          Position
	EndPos       Position
	Name         Ident
	DeclaredType types.Type // nil when the declaration has no annotation
	Value        Expr
	Type         types.Type // set by analysis
}
