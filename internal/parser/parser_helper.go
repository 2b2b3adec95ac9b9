package parser

import (
	"fmt"

	"cinder/internal/ast"
	"cinder/internal/token"
)

// advance shifts the lookahead window by one token and returns the token
// that was current.
func (p *Parser) advance() token.Token {
	prev := p.current
	p.current = p.peek
	p.peek = p.scanner.NextToken()
	return prev
}

// expect consumes the current token if it is the reserved symbol s.
func (p *Parser) expect(s token.Symbol) (token.Token, error) {
	if p.current.Is(s) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(fmt.Sprintf("'%s'", s))
}

// expectIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) expectIdent() (ast.Ident, error) {
	if !p.current.IsIdentifier() {
		return ast.Ident{}, p.unexpected("identifier")
	}
	tok := p.advance()
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Identifier(),
	}, nil
}

// unexpected builds the error for the current token. An Unknown token
// reports the lexical error that produced it.
func (p *Parser) unexpected(expected string) error {
	tok := p.current
	if tok.IsUnknown() {
		if lexErr := p.scanner.ErrorAt(tok.Pos.Offset); lexErr != nil {
			return lexErr
		}
	}

	return &ParseError{
		Kind:     UnexpectedToken,
		Message:  fmt.Sprintf("expected %s, found %s", expected, tok.Describe()),
		Expected: expected,
		Found:    tok,
		Pos:      tok.Pos,
		Length:   max(tok.Len(), 1),
	}
}

func (p *Parser) makePos(tok token.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Pos.Offset,
		Line:     tok.Pos.Line,
		Column:   tok.Pos.Column,
	}
}

func (p *Parser) makeEndPos(tok token.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Pos.Offset + tok.Len(),
		Line:     tok.Pos.Line,
		Column:   tok.Pos.Column + tok.Len(),
	}
}
