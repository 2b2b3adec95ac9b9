// Package compiler runs the front end over one source file.
package compiler

import (
	"time"

	"github.com/tliron/commonlog"

	"cinder/internal/ast"
	"cinder/internal/errors"
	"cinder/internal/parser"
	"cinder/internal/semantic"
)

var log = commonlog.GetLogger("cinder.compiler")

// Unit is the result of checking one source file. Program is nil when
// parsing failed, in which case no analysis was run.
type Unit struct {
	Filename       string
	Source         string
	Program        *ast.Program
	ParseError     error
	SemanticErrors []*semantic.Error
	Duration       time.Duration
}

// Check tokenizes, parses and analyses source.
func Check(filename, source string) *Unit {
	start := time.Now()
	unit := &Unit{Filename: filename, Source: source}

	program, err := parser.ParseSource(filename, source)
	if err != nil {
		unit.ParseError = err
	} else {
		unit.Program = program
		unit.SemanticErrors = semantic.NewAnalyzer().Analyze(program)
	}

	unit.Duration = time.Since(start)
	unit.logSummary()
	return unit
}

// OK reports whether the unit parsed and analysed without errors.
func (u *Unit) OK() bool {
	return u.ParseError == nil && len(u.SemanticErrors) == 0
}

// Diagnostics returns every error of the unit in source order.
func (u *Unit) Diagnostics() []errors.CompilerError {
	var diags []errors.CompilerError

	if u.ParseError != nil {
		if diag, ok := parser.Diagnostic(u.Filename, u.ParseError); ok {
			diags = append(diags, diag)
		} else {
			diags = append(diags, errors.CompilerError{
				Level:   errors.Error,
				Message: u.ParseError.Error(),
				Length:  1,
			})
		}
	}

	for _, err := range u.SemanticErrors {
		diags = append(diags, err.CompilerErrors()...)
	}

	return diags
}

// Report formats the unit's diagnostics against its source.
func (u *Unit) Report() string {
	return errors.NewErrorReporter(u.Filename, u.Source).FormatErrors(u.Diagnostics())
}

func (u *Unit) logSummary() {
	switch {
	case u.ParseError != nil:
		log.Infof("%s: parse failed after %s: %s", u.Filename, u.Duration, u.ParseError)
	default:
		log.Infof("%s: %d declarations, %d errors in %s",
			u.Filename, len(u.Program.Decls), len(u.SemanticErrors), u.Duration)
	}
}
