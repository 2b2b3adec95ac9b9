package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"cinder/internal/ast"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0001
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

func (e CompilerError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s: %s", e.Position, e.Level, e.Message)
	}
	return fmt.Sprintf("%s: %s[%s]: %s", e.Position, e.Level, e.Code, e.Message)
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string       // Description of the suggestion
	Replacement string       // Suggested replacement text (optional)
	Position    ast.Position // Position to apply the fix (optional)
	Length      int          // Length of text to replace (optional)
}

// ErrorReporter formats diagnostics against the source they refer to.
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

var (
	bold  = color.New(color.Bold).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	blue  = color.New(color.FgBlue).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

// FormatError formats a compiler error with Rust-like styling and suggestions
//
//	error[E0003]: type mismatch: expected i32, found u64
//	    --> main.cn:1:1
//	     │
//	   1 │ let x: i32 = 5;
//	     │ ^^^^^^^^^^^^^^^
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder

	levelColor := levelColor(err.Level)
	if err.Code != "" {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(fmt.Sprintf("%s[%s]", err.Level, err.Code)), bold(err.Message))
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(err.Level)), bold(err.Message))
	}

	line := err.Position.Line
	width := lineNumberWidth(line + 1)
	indent := strings.Repeat(" ", width)

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, line, err.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, dim("│"))

	if line > 0 && line <= len(er.lines) {
		if line > 1 {
			er.writeLine(&b, line-1, width, dim)
		}
		er.writeLine(&b, line, width, bold)
		fmt.Fprintf(&b, "%s %s %s\n", indent, dim("│"), marker(err.Position.Column, err.Length, levelColor))
		if line < len(er.lines) {
			er.writeLine(&b, line+1, width, dim)
		}
	}

	for i, suggestion := range err.Suggestions {
		if i == 0 {
			fmt.Fprintf(&b, "%s %s\n", indent, dim("│"))
			fmt.Fprintf(&b, "%s %s: %s\n", indent, cyan("help"), suggestion.Message)
		} else {
			fmt.Fprintf(&b, "%s       %s\n", indent, suggestion.Message)
		}
		if suggestion.Replacement != "" {
			fmt.Fprintf(&b, "%s %s %s\n", indent, cyan("│"), cyan(suggestion.Replacement))
		}
	}

	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, dim("="), blue("note:"), note)
	}

	if err.HelpText != "" {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, dim("="), green("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

// FormatErrors formats every error followed by a one-line summary.
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var b strings.Builder
	count := 0
	for _, err := range errs {
		b.WriteString(er.FormatError(err))
		if err.Level == Error {
			count++
		}
	}
	if count > 0 {
		noun := "error"
		if count > 1 {
			noun = "errors"
		}
		fmt.Fprintf(&b, "%s: could not check `%s` due to %d previous %s\n",
			levelColor(Error)(string(Error)), er.filename, count, noun)
	}
	return b.String()
}

func (er *ErrorReporter) writeLine(b *strings.Builder, line, width int, style func(...interface{}) string) {
	fmt.Fprintf(b, "%s %s %s\n", style(fmt.Sprintf("%*d", width, line)), dim("│"), er.lines[line-1])
}

func levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// marker underlines length columns starting at column.
func marker(column, length int, style func(...interface{}) string) string {
	return strings.Repeat(" ", max(0, column-1)) + style(strings.Repeat("^", max(1, length)))
}

// lineNumberWidth is at least 3 so that short files still align.
func lineNumberWidth(line int) int {
	return max(3, len(strconv.Itoa(line)))
}
