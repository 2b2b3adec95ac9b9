// Package semantic attaches types to the syntax tree and reports type errors.
package semantic

import (
	"github.com/tliron/commonlog"

	"cinder/internal/ast"
	"cinder/internal/errors"
)

var log = commonlog.GetLogger("cinder.semantic")

// Analyzer types declarations and expressions in place. A node that already
// carries a type is returned as is, so analysing twice does no extra work.
// Identifiers always fail to resolve: there is no symbol table.
type Analyzer struct {
	errors []*Error
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze types every declaration of program in source order. A failing
// declaration does not stop the ones after it.
func (a *Analyzer) Analyze(program *ast.Program) []*Error {
	a.errors = nil

	for _, decl := range program.Decls {
		if _, err := a.AnalyzeDecl(decl); err != nil {
			a.addError(decl, err)
		}
	}

	return a.errors
}

// Errors returns the errors collected by the last Analyze.
func (a *Analyzer) Errors() []*Error {
	return a.errors
}

// Diagnostics returns the errors collected by the last Analyze in reportable form.
func (a *Analyzer) Diagnostics() []errors.CompilerError {
	out := make([]errors.CompilerError, 0, len(a.errors))
	for _, err := range a.errors {
		out = append(out, err.CompilerErrors()...)
	}
	return out
}
