package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"cinder/internal/compiler"
)

var log = commonlog.GetLogger("cinder.lsp")

// Define the set of supported semantic token types advertised in the legend
var SemanticTokenTypes = []string{
	"keyword",
	"type",
	"variable",
	"number",
	"string",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// Handler implements the LSP server handlers for cinder source files.
// Documents are synced in full and kept in memory while open.
type Handler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
	units   map[protocol.DocumentUri]*compiler.Unit
}

func NewHandler() *Handler {
	return &Handler{
		content: make(map[protocol.DocumentUri]string),
		units:   make(map[protocol.DocumentUri]*compiler.Unit),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)

	unit, err := h.update(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return err
	}
	publishDiagnostics(ctx, params.TextDocument.URI, ConvertDiagnostics(unit.Source, unit.Diagnostics()))
	return nil
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := fullText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no full content change for %s", params.TextDocument.URI)
	}

	unit, err := h.update(params.TextDocument.URI, text)
	if err != nil {
		return err
	}
	publishDiagnostics(ctx, params.TextDocument.URI, ConvertDiagnostics(unit.Source, unit.Diagnostics()))
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.content, params.TextDocument.URI)
	delete(h.units, params.TextDocument.URI)
	h.mu.Unlock()

	publishDiagnostics(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	source, err := h.source(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(source)),
	}, nil
}

// Unit returns the last check of an open document.
func (h *Handler) Unit(uri protocol.DocumentUri) (*compiler.Unit, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	unit, ok := h.units[uri]
	return unit, ok
}

func (h *Handler) update(uri protocol.DocumentUri, text string) (*compiler.Unit, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}

	unit := compiler.Check(path, text)

	h.mu.Lock()
	h.content[uri] = text
	h.units[uri] = unit
	h.mu.Unlock()

	return unit, nil
}

// source returns the open document's text, falling back to the file on disk.
func (h *Handler) source(uri protocol.DocumentUri) (string, error) {
	h.mu.RLock()
	text, ok := h.content[uri]
	h.mu.RUnlock()
	if ok {
		return text, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

func fullText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		}
	}
	return "", false
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
