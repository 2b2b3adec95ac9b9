package parser

import (
	"cinder/internal/ast"
	"cinder/internal/token"
)

const (
	precAddSub    = 1
	precMulDivMod = 2
)

type binaryOperator struct {
	op   ast.Operator
	prec int
}

var binaryOperators = map[token.Symbol]binaryOperator{
	token.Add: {ast.OpAdd, precAddSub},
	token.Sub: {ast.OpSub, precAddSub},
	token.Mul: {ast.OpMul, precMulDivMod},
	token.Div: {ast.OpDiv, precMulDivMod},
	token.Mod: {ast.OpMod, precMulDivMod},
}

var prefixOperators = map[token.Symbol]ast.Operator{
	token.LogicalNot: ast.OpNot,
	token.Sub:        ast.OpSub,
	token.BinaryNot:  ast.OpBitNot,
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parsePrattExpr(0)
}

// parsePrattExpr extends the expression with binary operators that bind at
// least as tightly as minPrec. Operators of equal precedence associate left.
func (p *Parser) parsePrattExpr(minPrec int) (ast.Expr, error) {
	expr, err := p.parsePrefixExpr()
	if err != nil {
		return nil, err
	}

	for p.current.IsReserved() {
		bin, ok := binaryOperators[p.current.Symbol]
		if !ok || bin.prec < minPrec {
			break
		}

		p.advance()
		right, err := p.parsePrattExpr(bin.prec + 1)
		if err != nil {
			return nil, err
		}

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Left:   expr,
			Op:     bin.op,
			Right:  right,
		}
	}

	return expr, nil
}

func (p *Parser) parsePrefixExpr() (ast.Expr, error) {
	if p.current.IsReserved() {
		if op, ok := prefixOperators[p.current.Symbol]; ok {
			tok := p.advance()
			value, err := p.parsePrefixExpr()
			if err != nil {
				return nil, err
			}
			return &ast.PrefixExpr{
				Pos:    p.makePos(tok),
				EndPos: value.NodeEndPos(),
				Op:     op,
				Value:  value,
			}, nil
		}
	}

	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	tok := p.current

	switch {
	case tok.IsInteger():
		p.advance()
		return ast.NewIntegerLiteral(tok.Integer(), p.makePos(tok), p.makeEndPos(tok)), nil

	case tok.IsFloat():
		p.advance()
		return ast.NewFloatLiteral(tok.FloatValue(), p.makePos(tok), p.makeEndPos(tok)), nil

	case tok.Is(token.KwTrue), tok.Is(token.KwFalse):
		p.advance()
		return ast.NewBoolLiteral(tok.Is(token.KwTrue), p.makePos(tok), p.makeEndPos(tok)), nil

	case tok.IsIdentifier():
		p.advance()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Identifier(),
		}, nil

	case tok.Is(token.ParenOpen):
		p.advance()
		inner, err := p.parsePrattExpr(0)
		if err != nil {
			return nil, err
		}
		closing, err := p.expect(token.ParenClose)
		if err != nil {
			return nil, err
		}
		return ast.Group(inner, p.makePos(tok), p.makeEndPos(closing)), nil
	}

	return nil, p.unexpected("expression")
}
