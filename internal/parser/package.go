package parser

import (
	"cinder/internal/ast"
)

func ParseSource(filename string, source string) (*ast.Program, error) {
	return NewParser(filename, source).ParseProgram()
}
