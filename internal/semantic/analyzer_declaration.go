package semantic

import (
	"fmt"

	"cinder/internal/ast"
	"cinder/internal/types"
)

// AnalyzeDecl types decl's initializer and checks it against the annotation.
func (a *Analyzer) AnalyzeDecl(decl ast.Decl) (ast.Decl, error) {
	switch node := decl.(type) {
	case *ast.VarDecl:
		return a.analyzeVarDecl(node)
	}
	return nil, fmt.Errorf("%w: declaration %T", ErrUnsupported, decl)
}

// analyzeVarDecl requires the initializer's type to equal the annotation
// exactly; no widening or narrowing happens at a declaration. Without an
// annotation the variable takes the initializer's type.
func (a *Analyzer) analyzeVarDecl(decl *ast.VarDecl) (ast.Decl, error) {
	if decl.Type != nil {
		return decl, nil
	}

	value, err := a.AnalyzeExpr(decl.Value)
	if err != nil {
		return nil, err
	}
	decl.Value = value
	actual := value.ExprType()

	if decl.DeclaredType == nil {
		decl.Type = types.Clone(actual)
		return decl, nil
	}

	if !types.Equal(decl.DeclaredType, actual) {
		return nil, &Error{
			Kind: TypeMismatch,
			Node: decl,
			Message: fmt.Sprintf("type mismatch: '%s' is declared as %s but initialized with %s",
				decl.Name.Value, decl.DeclaredType, actual),
			Expected: types.Clone(decl.DeclaredType),
			Actual:   types.Clone(actual),
		}
	}

	decl.Type = types.Clone(decl.DeclaredType)
	return decl, nil
}
