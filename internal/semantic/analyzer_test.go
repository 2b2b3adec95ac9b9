package semantic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinder/internal/ast"
	"cinder/internal/parser"
	"cinder/internal/types"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := parser.ParseSource("test.cn", source)
	require.NoError(t, err, "Should have no parse errors")
	return program
}

func firstDecl(t *testing.T, source string) *ast.VarDecl {
	t.Helper()
	program := parse(t, source)
	require.NotEmpty(t, program.Decls)
	return program.Decls[0].(*ast.VarDecl)
}

func TestLiteralsAnalyzeToThemselves(t *testing.T) {
	a := NewAnalyzer()
	lit := ast.NewFloatLiteral(2.5, ast.Position{}, ast.Position{})

	got, err := a.AnalyzeExpr(lit)
	require.NoError(t, err)
	assert.Same(t, lit, got)
	assert.True(t, types.Equal(&types.Float{Size: 8}, got.ExprType()))
}

func TestIdentifierIsUnresolved(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.AnalyzeExpr(&ast.IdentExpr{Name: "x"})

	assert.ErrorIs(t, err, ErrUnresolved)
	var semErr *Error
	require.True(t, errors.As(err, &semErr))
	assert.Equal(t, Unresolved, semErr.Kind)
}

func TestVarDeclExactMatch(t *testing.T) {
	t.Run("InitializerTypeDiffersFromAnnotation", func(t *testing.T) {
		// An integer literal is u64 and is never narrowed to i32.
		decl := firstDecl(t, "let x: i32 = 5;")
		_, err := NewAnalyzer().AnalyzeDecl(decl)

		assert.ErrorIs(t, err, ErrTypeMismatch)
		var semErr *Error
		require.True(t, errors.As(err, &semErr))
		assert.True(t, types.Equal(&types.Integer{Signed: true, Size: 4}, semErr.Expected))
		assert.True(t, types.Equal(&types.Integer{Signed: false, Size: 8}, semErr.Actual))
		assert.Nil(t, decl.Type)
	})

	t.Run("ExactMatch", func(t *testing.T) {
		decl := firstDecl(t, "let x: u64 = 5;")
		got, err := NewAnalyzer().AnalyzeDecl(decl)
		require.NoError(t, err)
		assert.Same(t, decl, got)
		assert.Equal(t, "u64", decl.Type.String())
	})

	t.Run("FloatMatch", func(t *testing.T) {
		decl := firstDecl(t, "let f: f64 = 1.5 * 2;")
		_, err := NewAnalyzer().AnalyzeDecl(decl)
		require.NoError(t, err)
		assert.Equal(t, "f64", decl.Type.String())
	})

	t.Run("BoolMatch", func(t *testing.T) {
		decl := firstDecl(t, "let b: bool = true;")
		// bool is not a type keyword; it parses as a named type.
		_, err := NewAnalyzer().AnalyzeDecl(decl)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("WithoutAnnotation", func(t *testing.T) {
		decl := firstDecl(t, "let y = 1 + 2.0;")
		_, err := NewAnalyzer().AnalyzeDecl(decl)
		require.NoError(t, err)
		assert.Equal(t, "f64", decl.Type.String())
		assert.NotSame(t, decl.Type, decl.Value.ExprType(), "types must not be shared between nodes")
	})
}

func TestBinaryExpression(t *testing.T) {
	decl := firstDecl(t, "let v = 1 + 2 * 3.0;")
	_, err := NewAnalyzer().AnalyzeDecl(decl)
	require.NoError(t, err)

	sum := decl.Value.(*ast.BinaryExpr)
	product := sum.Right.(*ast.BinaryExpr)
	assert.Equal(t, "f64", product.Type.String())
	assert.Equal(t, "f64", sum.Type.String())
	assert.Equal(t, "u64", sum.Left.ExprType().String())
}

func TestBinaryIncompatible(t *testing.T) {
	decl := firstDecl(t, "let v = true + 1;")
	_, err := NewAnalyzer().AnalyzeDecl(decl)

	assert.ErrorIs(t, err, ErrIncompatible)
	assert.ErrorIs(t, err, types.ErrIncompatible, "the coalescing failure is kept as the cause")

	var typeErr *types.TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "bool", typeErr.Left.String())
	assert.Nil(t, decl.Value.ExprType())
}

func TestBinaryPropagatesOperandError(t *testing.T) {
	decl := firstDecl(t, "let v = 1 + x;")
	_, err := NewAnalyzer().AnalyzeDecl(decl)
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestPrefixExpression(t *testing.T) {
	t.Run("NegateInteger", func(t *testing.T) {
		decl := firstDecl(t, "let n = -5;")
		_, err := NewAnalyzer().AnalyzeDecl(decl)
		require.NoError(t, err)

		prefix := decl.Value.(*ast.PrefixExpr)
		assert.Equal(t, "u64", prefix.Type.String())
		assert.NotSame(t, prefix.Type, prefix.Value.ExprType())
	})

	t.Run("NegateFloat", func(t *testing.T) {
		decl := firstDecl(t, "let n: f64 = -(1.5);")
		_, err := NewAnalyzer().AnalyzeDecl(decl)
		require.NoError(t, err)
	})

	t.Run("NegateBool", func(t *testing.T) {
		decl := firstDecl(t, "let n = -true;")
		_, err := NewAnalyzer().AnalyzeDecl(decl)
		assert.ErrorIs(t, err, ErrInvalidOperator)
	})

	for _, source := range []string{"let n = !true;", "let n = ~1;"} {
		t.Run(source, func(t *testing.T) {
			_, err := NewAnalyzer().AnalyzeDecl(firstDecl(t, source))
			assert.ErrorIs(t, err, ErrInvalidOperator)
		})
	}
}

func TestAnalysisIsIdempotent(t *testing.T) {
	decl := firstDecl(t, "let v = 1 + 2;")
	a := NewAnalyzer()

	_, err := a.AnalyzeDecl(decl)
	require.NoError(t, err)
	bin := decl.Value.(*ast.BinaryExpr)
	cached := bin.Type

	got, err := a.AnalyzeExpr(bin)
	require.NoError(t, err)
	assert.Same(t, bin, got)
	assert.Same(t, cached, bin.Type, "a typed node is not recomputed")

	_, err = a.AnalyzeDecl(decl)
	require.NoError(t, err)
}

func TestAnalyzeProgramCollectsErrors(t *testing.T) {
	program := parse(t, "let a: i32 = 5;\nlet b = 2;\nlet c = x;\nlet d = 1.0 + false;")

	a := NewAnalyzer()
	errs := a.Analyze(program)
	require.Len(t, errs, 3)

	assert.Equal(t, TypeMismatch, errs[0].Kind)
	assert.Equal(t, Unresolved, errs[1].Kind)
	assert.Equal(t, Incompatible, errs[2].Kind)
	assert.Equal(t, "u64", program.Decls[1].(*ast.VarDecl).Type.String())

	diags := a.Diagnostics()
	require.Len(t, diags, 4)
	assert.Equal(t, "E0003", diags[0].Code)
	assert.Equal(t, 14, diags[0].Position.Column, "mismatch points at the initializer")
	assert.Equal(t, "E0001", diags[1].Code)
	assert.Equal(t, 3, diags[1].Position.Line)
	assert.Equal(t, "E0008", diags[2].Code)
	assert.Equal(t, 11, diags[2].Length)
	assert.Equal(t, "E0200", diags[3].Code, "the coalescing failure follows as a note")
	assert.Equal(t, diags[2].Position, diags[3].Position)
}

func TestAnalyzeProgramKeepsUnsupportedNodes(t *testing.T) {
	broken := &ast.VarDecl{Name: ast.Ident{Value: "v"}}
	program := &ast.Program{Decls: []ast.Decl{broken, nil}}

	a := NewAnalyzer()
	errs := a.Analyze(program)
	require.Len(t, errs, 2)

	assert.Equal(t, Unsupported, errs[0].Kind)
	assert.Same(t, broken, errs[0].Node)
	assert.ErrorIs(t, errs[0], ErrUnsupported)
	assert.Contains(t, errs[0].Error(), "expression <nil>")

	assert.Equal(t, Unsupported, errs[1].Kind)
	assert.Nil(t, errs[1].Node)
	assert.Equal(t, ast.Position{}, errs[1].Position())

	diags := a.Diagnostics()
	require.Len(t, diags, 2)
	for _, diag := range diags {
		assert.Equal(t, "E0016", diag.Code)
	}
}

func TestNoTypeIsShared(t *testing.T) {
	program := parse(t, "let a = -(1 + 2) * 3.5;\nlet b: u64 = 7;")
	require.Empty(t, NewAnalyzer().Analyze(program))

	seen := map[types.Type]ast.Node{}
	record := func(n ast.Node, typ types.Type) {
		if typ == nil {
			return
		}
		owner, dup := seen[typ]
		assert.False(t, dup, "%s shares its type with %s", n, owner)
		seen[typ] = n
	}

	for _, n := range ast.CollectAllNodes(program) {
		switch node := n.(type) {
		case *ast.VarDecl:
			record(node, node.Type)
			record(node, node.DeclaredType)
		case ast.Expr:
			record(node, node.ExprType())
		}
	}
	assert.NotEmpty(t, seen)
}
