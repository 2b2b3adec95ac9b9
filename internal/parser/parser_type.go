package parser

import (
	"fmt"
	"math"

	"cinder/internal/token"
	"cinder/internal/types"
)

// parseType parses
//
//	type := ( integer-keyword | float-keyword | "*" type | identifier ) { "[" integer "]" }
//
// A pointer takes the whole remaining type as its target, so "*i32[4]" is a
// pointer to an array.
func (p *Parser) parseType() (types.Type, error) {
	var t types.Type

	switch tok := p.current; {
	case tok.Is(token.Mul):
		p.advance()
		target, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &types.Pointer{Target: target}, nil

	case tok.IsReserved():
		kt, ok := types.FromKeyword(tok.Symbol)
		if !ok {
			return nil, p.unexpected("type")
		}
		p.advance()
		t = kt

	case tok.IsIdentifier():
		p.advance()
		t = &types.Named{Name: tok.Identifier()}

	default:
		return nil, p.unexpected("type")
	}

	for p.current.Is(token.SubscriptOpen) {
		p.advance()
		length, err := p.parseArrayLength()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SubscriptClose); err != nil {
			return nil, err
		}
		t = &types.Array{Target: t, Length: length}
	}

	return t, nil
}

func (p *Parser) parseArrayLength() (int32, error) {
	tok := p.current
	if !tok.IsInteger() {
		return 0, p.unexpected("array length")
	}
	if tok.Integer() > math.MaxInt32 {
		return 0, &ParseError{
			Kind:     InvalidArrayLength,
			Message:  fmt.Sprintf("array length %d exceeds %d", tok.Integer(), math.MaxInt32),
			Expected: "array length",
			Found:    tok,
			Pos:      tok.Pos,
			Length:   tok.Len(),
		}
	}
	p.advance()
	return int32(tok.Integer()), nil
}
