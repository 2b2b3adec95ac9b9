package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"cinder/internal/ast"
	"cinder/internal/errors"
	"cinder/internal/lsp"
)

type published struct {
	method string
	params *protocol.PublishDiagnosticsParams
}

func newContext(sent *[]published) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			p, _ := params.(*protocol.PublishDiagnosticsParams)
			*sent = append(*sent, published{method: method, params: p})
		},
	}
}

const uri = "file:///tmp/main.cn"

func TestDiagnosticsFollowDocument(t *testing.T) {
	handler := lsp.NewHandler()
	var sent []published
	ctx := newContext(&sent)

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "cinder", Version: 1, Text: "let x: i32 = 5;"},
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, sent[0].method)

	diags := sent[0].params.Diagnostics
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.Position{Line: 0, Character: 13}, diags[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 14}, diags[0].Range.End)
	assert.Equal(t, "E0003", diags[0].Code.Value)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)

	unit, ok := handler.Unit(uri)
	require.True(t, ok)
	assert.False(t, unit.OK())
	assert.Equal(t, filepath.FromSlash("/tmp/main.cn"), unit.Filename)

	err = handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "let x = 5;"}},
	})
	require.NoError(t, err)
	require.Len(t, sent, 2)
	assert.NotNil(t, sent[1].params.Diagnostics)
	assert.Empty(t, sent[1].params.Diagnostics)

	err = handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, sent, 3)
	assert.Empty(t, sent[2].params.Diagnostics)

	_, ok = handler.Unit(uri)
	assert.False(t, ok)
}

func TestParseErrorDiagnostic(t *testing.T) {
	handler := lsp.NewHandler()
	var sent []published
	ctx := newContext(&sent)

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "let a = 1;\nlet b = 1.2.3;"},
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	diags := sent[0].params.Diagnostics
	require.Len(t, diags, 1)
	assert.Equal(t, "E0101", diags[0].Code.Value)
	assert.Equal(t, protocol.Position{Line: 1, Character: 8}, diags[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 13}, diags[0].Range.End)
}

func TestDidChangeRequiresFullText(t *testing.T) {
	handler := lsp.NewHandler()
	var sent []published

	err := handler.TextDocumentDidChange(newContext(&sent), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{},
			Text:  "x",
		}},
	})
	assert.Error(t, err)
	assert.Empty(t, sent)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewHandler()
	var sent []published
	ctx := newContext(&sent)

	source := "let x: i32 = 5;\nlet p: Point = -x * 2.5;"
	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: source},
	}))

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 13)

	assertToken(t, &decoded[0], 1, 1, 3, "keyword", nil)
	assertToken(t, &decoded[1], 1, 5, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 8, 3, "type", nil)
	assertToken(t, &decoded[3], 1, 12, 1, "operator", nil)
	assertToken(t, &decoded[4], 1, 14, 1, "number", nil)
	assertToken(t, &decoded[5], 2, 1, 3, "keyword", nil)
	assertToken(t, &decoded[6], 2, 5, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[7], 2, 8, 5, "type", nil)
	assertToken(t, &decoded[8], 2, 14, 1, "operator", nil)
	assertToken(t, &decoded[9], 2, 16, 1, "operator", nil)
	assertToken(t, &decoded[10], 2, 17, 1, "variable", nil)
	assertToken(t, &decoded[11], 2, 19, 1, "operator", nil)
	assertToken(t, &decoded[12], 2, 21, 3, "number", nil)
}

func TestSemanticTokensFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.cn")
	require.NoError(t, os.WriteFile(path, []byte(`let s = "hi";`), 0o644))

	handler := lsp.NewHandler()
	tokens, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file://" + filepath.ToSlash(path)},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 4)
	assertToken(t, &decoded[3], 1, 9, 4, "string", nil)
}

func TestSemanticTokensCountUTF16(t *testing.T) {
	handler := lsp.NewHandler()
	var sent []published
	ctx := newContext(&sent)

	source := "let s = \"\U0001F600\"; let t = 1;"
	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: source},
	}))

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 8)

	// The emoji is four bytes but two UTF-16 code units.
	assertToken(t, &decoded[3], 1, 9, 4, "string", nil)
	assertToken(t, &decoded[4], 1, 14, 3, "keyword", nil)
	assertToken(t, &decoded[5], 1, 18, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[7], 1, 22, 1, "number", nil)
}

func TestSemanticTokensSplitMultilineString(t *testing.T) {
	handler := lsp.NewHandler()
	var sent []published
	ctx := newContext(&sent)

	source := "let s = \"a\nbc\";\nlet t = 1;"
	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: source},
	}))

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 9)

	assertToken(t, &decoded[3], 1, 9, 2, "string", nil)
	assertToken(t, &decoded[4], 2, 1, 3, "string", nil)
	assertToken(t, &decoded[5], 3, 1, 3, "keyword", nil)
	assertToken(t, &decoded[8], 3, 9, 1, "number", nil)
}

func TestConvertDiagnosticsCountUTF16(t *testing.T) {
	diags := lsp.ConvertDiagnostics("let s = \"é\";", []errors.CompilerError{{
		Level:    errors.Error,
		Code:     "E0100",
		Message:  "unexpected token",
		Position: ast.Position{Line: 1, Column: 9},
		Length:   4,
	}})

	require.Len(t, diags, 1)
	assert.Equal(t, protocol.Position{Line: 0, Character: 8}, diags[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 11}, diags[0].Range.End)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
