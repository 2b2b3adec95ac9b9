package parser

import (
	"cinder/internal/ast"
	"cinder/internal/errors"
	"cinder/internal/token"
)

func toASTPos(filename string, pos token.Position) ast.Position {
	return ast.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

// CompilerError converts e into a reportable diagnostic.
func (e *LexError) CompilerError(filename string) errors.CompilerError {
	pos := toASTPos(filename, e.Pos)
	switch e.Kind {
	case InvalidNumber:
		return errors.InvalidNumber(e.Message, pos, e.Length)
	case IntegerOutOfRange:
		return errors.IntegerOutOfRange(e.Message, pos, e.Length)
	case UnterminatedString:
		return errors.UnterminatedString(pos, e.Length)
	}
	return errors.UnexpectedCharacter(e.Message, pos, e.Length)
}

// CompilerError converts e into a reportable diagnostic.
func (e *ParseError) CompilerError(filename string) errors.CompilerError {
	pos := toASTPos(filename, e.Pos)
	if e.Kind == InvalidArrayLength {
		return errors.InvalidArrayLength(e.Message, pos, e.Length)
	}
	return errors.UnexpectedToken(e.Message, e.Found, pos)
}

// Diagnostic converts an error returned by the parser. ok is false for errors
// that did not come from the parser, such as a failed file read.
func Diagnostic(filename string, err error) (diag errors.CompilerError, ok bool) {
	switch e := err.(type) {
	case *LexError:
		return e.CompilerError(filename), true
	case *ParseError:
		return e.CompilerError(filename), true
	}
	return errors.CompilerError{}, false
}
