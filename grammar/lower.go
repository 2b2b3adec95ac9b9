package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"

	"cinder/internal/ast"
	"cinder/internal/token"
	"cinder/internal/types"
)

var binaryOps = map[string]ast.Operator{
	"+": ast.OpAdd,
	"-": ast.OpSub,
	"*": ast.OpMul,
	"/": ast.OpDiv,
	"%": ast.OpMod,
}

var prefixOps = map[string]ast.Operator{
	"!": ast.OpNot,
	"-": ast.OpSub,
	"~": ast.OpBitNot,
}

// Program lowers the parse tree into the same AST the hand-written parser
// builds. Declarations are left unanalysed.
func (f *File) Program() *ast.Program {
	program := &ast.Program{Pos: toPos(f.Pos)}
	for _, decl := range f.Decls {
		program.Decls = append(program.Decls, decl.lower())
	}
	if n := len(program.Decls); n > 0 {
		program.EndPos = program.Decls[n-1].NodeEndPos()
	} else {
		program.EndPos = program.Pos
	}
	return program
}

func (d *Decl) lower() *ast.VarDecl {
	decl := &ast.VarDecl{
		Pos:    toPos(d.Pos),
		EndPos: endOf(d.Tokens),
		Name: ast.Ident{
			Pos:    toPos(d.Name.Pos),
			EndPos: advance(d.Name.Pos, len(d.Name.Value)),
			Value:  d.Name.Value,
		},
		Value: d.Value.lower(),
	}
	if d.Type != nil {
		decl.DeclaredType = d.Type.lower()
	}
	return decl
}

func (t *Type) lower() types.Type {
	var result types.Type
	switch {
	case t.Base.Pointer != nil:
		result = &types.Pointer{Target: t.Base.Pointer.lower()}
	default:
		result = namedType(t.Base.Name)
	}
	for _, suffix := range t.Suffixes {
		result = &types.Array{Target: result, Length: int32(suffix.Length)}
	}
	return result
}

func namedType(name string) types.Type {
	if sym, ok := token.LookupKeyword(name); ok {
		if builtin, ok := types.FromKeyword(sym); ok {
			return builtin
		}
	}
	return &types.Named{Name: name}
}

func (e *Expr) lower() ast.Expr {
	expr := e.Left.lower()
	for _, op := range e.Rest {
		expr = binary(expr, binaryOps[op.Op], op.Right.lower())
	}
	return expr
}

func (t *Term) lower() ast.Expr {
	expr := t.Left.lower()
	for _, op := range t.Rest {
		expr = binary(expr, binaryOps[op.Op], op.Right.lower())
	}
	return expr
}

func binary(left ast.Expr, op ast.Operator, right ast.Expr) ast.Expr {
	return &ast.BinaryExpr{
		Pos:    left.NodePos(),
		EndPos: right.NodeEndPos(),
		Left:   left,
		Op:     op,
		Right:  right,
	}
}

func (u *Unary) lower() ast.Expr {
	if u.Prefix != nil {
		value := u.Prefix.Operand.lower()
		return &ast.PrefixExpr{
			Pos:    toPos(u.Prefix.Pos),
			EndPos: value.NodeEndPos(),
			Op:     prefixOps[u.Prefix.Op],
			Value:  value,
		}
	}
	return u.Primary.lower()
}

func (p *Primary) lower() ast.Expr {
	pos, end := toPos(p.Pos), endOf(p.Tokens)

	switch {
	case p.Float != nil:
		return ast.NewFloatLiteral(float64(*p.Float), pos, end)
	case p.Int != nil:
		return ast.NewIntegerLiteral(uint64(*p.Int), pos, end)
	case p.Bool != nil:
		return ast.NewBoolLiteral(bool(*p.Bool), pos, end)
	case p.Ident != nil:
		return &ast.IdentExpr{Pos: pos, EndPos: end, Name: *p.Ident}
	}
	return ast.Group(p.Parens.lower(), pos, end)
}

func toPos(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func advance(pos lexer.Position, n int) ast.Position {
	end := toPos(pos)
	end.Offset += n
	end.Column += n
	return end
}

// endOf is the position just past the last token of a node.
func endOf(tokens []lexer.Token) ast.Position {
	if len(tokens) == 0 {
		return ast.Position{}
	}
	last := tokens[len(tokens)-1]
	return advance(last.Pos, len(last.Value))
}
