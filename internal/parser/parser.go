package parser

import (
	"cinder/internal/ast"
	"cinder/internal/token"
	"cinder/internal/types"
)

// Parser builds declarations from a token stream with two tokens of
// lookahead. It does not recover from errors: the first error ends parsing.
type Parser struct {
	filename string
	scanner  *Scanner
	current  token.Token
	peek     token.Token
}

func NewParser(filename string, source string) *Parser {
	s := NewScanner(source)
	p := &Parser{filename: filename, scanner: s}
	p.current = s.NextToken()
	p.peek = s.NextToken()
	return p
}

// NextDeclaration parses one top-level declaration. It returns nil, nil once
// the input is exhausted.
func (p *Parser) NextDeclaration() (ast.Decl, error) {
	if p.current.IsEOF() {
		return nil, nil
	}

	if p.current.Is(token.KwLet) {
		decl, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		log.Debugf("declaration: %s", decl)
		return decl, nil
	}

	return nil, p.unexpected("'let'")
}

// ParseProgram parses declarations until the end of input. A failure discards
// everything parsed so far.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Pos: p.makePos(p.current)}

	for {
		decl, err := p.NextDeclaration()
		if err != nil {
			return nil, err
		}
		if decl == nil {
			break
		}
		program.Decls = append(program.Decls, decl)
	}

	program.EndPos = p.makePos(p.current)
	return program, nil
}

// parseVarDecl parses
//
//	"let" identifier [ ":" type ] "=" expr ";"
func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	let := p.advance()

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	var declared types.Type
	if p.current.Is(token.Colon) {
		p.advance()
		if declared, err = p.parseType(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}

	return &ast.VarDecl{
		Pos:          p.makePos(let),
		EndPos:       p.makeEndPos(semi),
		Name:         name,
		DeclaredType: declared,
		Value:        value,
	}, nil
}
