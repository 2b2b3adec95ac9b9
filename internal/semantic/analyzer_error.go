package semantic

import (
	"cinder/internal/ast"
	"cinder/internal/errors"
	"cinder/internal/types"
)

// addError records err against decl. A failure that is not an *Error is kept
// as the cause of an Unsupported error so that nothing is lost.
func (a *Analyzer) addError(decl ast.Decl, err error) {
	semErr, ok := err.(*Error)
	if !ok {
		semErr = &Error{
			Kind:    Unsupported,
			Node:    decl,
			Message: err.Error(),
			Cause:   err,
		}
	}
	log.Debugf("%s", semErr)
	a.errors = append(a.errors, semErr)
}

// CompilerError converts e into a reportable diagnostic.
func (e *Error) CompilerError() errors.CompilerError {
	pos := e.Position()
	if e.Node == nil {
		return errors.NewSemanticError(errors.ErrorGenericSemantic, e.Message, pos).Build()
	}

	switch e.Kind {
	case Unresolved:
		if ident, ok := e.Node.(*ast.IdentExpr); ok {
			return errors.UnresolvedIdentifier(ident.Name, pos)
		}

	case InvalidOperator:
		if prefix, ok := e.Node.(*ast.PrefixExpr); ok {
			diag := errors.InvalidPrefixOperation(prefix.Op.String(), e.Actual, pos)
			diag.Length = spanLength(prefix)
			return diag
		}

	case Incompatible:
		if binary, ok := e.Node.(*ast.BinaryExpr); ok {
			diag := errors.InvalidBinaryOperation(binary.Op.String(), e.Expected, e.Actual, pos)
			diag.Length = spanLength(binary)
			return diag
		}

	case TypeMismatch:
		diag := errors.TypeMismatch(e.Expected, e.Actual, pos)
		if decl, ok := e.Node.(*ast.VarDecl); ok {
			diag.Position = decl.Value.NodePos()
			diag.Length = spanLength(decl.Value)
		}
		return diag
	}

	return errors.NewSemanticError(errors.ErrorGenericSemantic, e.Message, pos).
		WithSpan(e.Node).
		Build()
}

// CompilerErrors returns the diagnostic for e followed by a note for the
// coalescing failure behind it, if any.
func (e *Error) CompilerErrors() []errors.CompilerError {
	diags := []errors.CompilerError{e.CompilerError()}
	if typeErr, ok := e.Cause.(*types.TypeError); ok {
		diags = append(diags, errors.CannotCoalesce(typeErr.Left, typeErr.Right, e.Node.NodePos(), spanLength(e.Node)))
	}
	return diags
}

func spanLength(node ast.Node) int {
	start, end := node.NodePos(), node.NodeEndPos()
	if start.Line != end.Line || end.Offset <= start.Offset {
		return 1
	}
	return end.Offset - start.Offset
}
