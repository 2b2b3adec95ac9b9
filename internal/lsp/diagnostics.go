package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"cinder/internal/errors"
)

// ConvertDiagnostics transforms compiler diagnostics on source into LSP
// diagnostics. The result is never nil so that an empty list clears the editor.
func ConvertDiagnostics(source string, diags []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(diags))
	lines := newLineIndex(source)

	for _, diag := range diags {
		line := uint32(max(diag.Position.Line-1, 0))
		start := lines.character(diag.Position.Line, diag.Position.Column)
		length := lines.span(diag.Position.Line, diag.Position.Column, max(diag.Length, 1))

		d := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + length},
			},
			Severity: ptrSeverity(severity(diag.Level)),
			Source:   ptrString("cinder"),
			Message:  diag.Message,
		}
		if diag.Code != "" {
			d.Code = &protocol.IntegerOrString{Value: diag.Code}
		}
		diagnostics = append(diagnostics, d)
	}

	return diagnostics
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	}
	return protocol.DiagnosticSeverityError
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
