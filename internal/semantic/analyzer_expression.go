package semantic

import (
	"fmt"

	"cinder/internal/ast"
	"cinder/internal/types"
)

// AnalyzeExpr resolves the type of expr and its operands. On success the
// returned expression is expr itself with its type attached.
func (a *Analyzer) AnalyzeExpr(expr ast.Expr) (ast.Expr, error) {
	switch node := expr.(type) {
	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.BoolLiteral:
		return node, nil
	case *ast.IdentExpr:
		return a.analyzeIdentExpression(node)
	case *ast.PrefixExpr:
		return a.analyzePrefixExpression(node)
	case *ast.BinaryExpr:
		return a.analyzeBinaryExpression(node)
	}
	return nil, fmt.Errorf("%w: expression %T", ErrUnsupported, expr)
}

func (a *Analyzer) analyzeIdentExpression(ident *ast.IdentExpr) (ast.Expr, error) {
	if ident.Type != nil {
		return ident, nil
	}
	return nil, &Error{
		Kind:    Unresolved,
		Node:    ident,
		Message: fmt.Sprintf("cannot resolve the type of '%s'", ident.Name),
	}
}

// Negation keeps the operand's type. The other prefix operators parse but
// have no meaning yet.
func (a *Analyzer) analyzePrefixExpression(prefix *ast.PrefixExpr) (ast.Expr, error) {
	if prefix.Type != nil {
		return prefix, nil
	}

	value, err := a.AnalyzeExpr(prefix.Value)
	if err != nil {
		return nil, err
	}
	prefix.Value = value
	operand := value.ExprType()

	if prefix.Op != ast.OpSub || !types.IsNumeric(operand) {
		return nil, &Error{
			Kind:    InvalidOperator,
			Node:    prefix,
			Message: fmt.Sprintf("invalid operation: %s%s", prefix.Op, operand),
			Actual:  types.Clone(operand),
		}
	}

	prefix.Type = types.Clone(operand)
	return prefix, nil
}

func (a *Analyzer) analyzeBinaryExpression(binary *ast.BinaryExpr) (ast.Expr, error) {
	if binary.Type != nil {
		return binary, nil
	}

	left, err := a.AnalyzeExpr(binary.Left)
	if err != nil {
		return nil, err
	}
	binary.Left = left

	right, err := a.AnalyzeExpr(binary.Right)
	if err != nil {
		return nil, err
	}
	binary.Right = right

	if !binary.Op.IsBinary() {
		return nil, &Error{
			Kind:    InvalidOperator,
			Node:    binary,
			Message: fmt.Sprintf("'%s' is not a binary operator", binary.Op),
		}
	}

	result, err := types.Coalesce(left.ExprType(), right.ExprType())
	if err != nil {
		return nil, &Error{
			Kind: Incompatible,
			Node: binary,
			Message: fmt.Sprintf("invalid operation: %s %s %s",
				left.ExprType(), binary.Op, right.ExprType()),
			Expected: types.Clone(left.ExprType()),
			Actual:   types.Clone(right.ExprType()),
			Cause:    err,
		}
	}

	binary.Type = result
	return binary, nil
}
