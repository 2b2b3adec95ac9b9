package lsp

import (
	"strings"

	"cinder/internal/parser"
	"cinder/internal/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens classifies the token stream of source. Names after
// 'let' are declarations and names after ':' are types. Unknown tokens and
// punctuation are skipped. A string spanning lines becomes one token per line.
func collectSemanticTokens(source string) []SemanticToken {
	var tokens []SemanticToken
	var prev token.Token
	lines := newLineIndex(source)

	for _, tok := range parser.NewScanner(source).ScanTokens() {
		if tok.IsEOF() {
			break
		}

		tokenType, decl := classify(tok, prev)
		prev = tok
		if tokenType == "" {
			continue
		}

		tokens = append(tokens, makeTokens(lines, tok, tokenType, decl)...)
	}

	return tokens
}

func classify(tok, prev token.Token) (tokenType string, declaration bool) {
	switch {
	case tok.IsIdentifier():
		if prev.Is(token.Colon) {
			return "type", false
		}
		return "variable", prev.Is(token.KwLet)
	case tok.IsInteger(), tok.IsFloat():
		return "number", false
	case tok.IsString():
		return "string", false
	case tok.IsUnknown():
		return "", false
	case tok.Symbol.IsIntegerType(), tok.Symbol.IsFloatType():
		return "type", false
	case tok.Symbol.IsKeyword():
		return "keyword", false
	case tok.Symbol.IsPunctuation():
		return "", false
	}
	return "operator", false
}

func makeTokens(lines lineIndex, tok token.Token, tokenType string, declaration bool) []SemanticToken {
	modifiers := 0
	if declaration {
		modifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
	}

	var out []SemanticToken
	line, column := tok.Pos.Line, tok.Pos.Column
	for _, part := range strings.Split(tok.Lexeme, "\n") {
		if part != "" {
			out = append(out, SemanticToken{
				Line:           uint32(line - 1), // LSP uses 0-based line numbers
				StartChar:      lines.character(line, column),
				Length:         lines.span(line, column, len(part)),
				TokenType:      indexOf(tokenType, SemanticTokenTypes),
				TokenModifiers: modifiers,
			})
		}
		line, column = line+1, 1
	}
	return out
}

// encodeSemanticTokens produces the LSP wire format (delta-line, delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
