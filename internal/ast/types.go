package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	PROGRAM

	// Declarations
	VAR_DECL

	// Expressions
	INTEGER_LITERAL
	FLOAT_LITERAL
	BOOL_LITERAL
	IDENT_EXPR
	BINARY_EXPR
	PREFIX_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:         "ILLEGAL",
	PROGRAM:         "PROGRAM",
	VAR_DECL:        "VAR_DECL",
	INTEGER_LITERAL: "INTEGER_LITERAL",
	FLOAT_LITERAL:   "FLOAT_LITERAL",
	BOOL_LITERAL:    "BOOL_LITERAL",
	IDENT_EXPR:      "IDENT_EXPR",
	BINARY_EXPR:     "BINARY_EXPR",
	PREFIX_EXPR:     "PREFIX_EXPR",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return nodeTypeNames[ILLEGAL]
}
