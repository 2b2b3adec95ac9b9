package errors

import (
	"fmt"

	"cinder/internal/ast"
	"cinder/internal/types"
)

// SemanticErrorBuilder provides a fluent interface for creating semantic errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	if length > 0 {
		b.err.Length = length
	}
	return b
}

// WithSpan sets the length from a node's start and end offsets on the same line.
func (b *SemanticErrorBuilder) WithSpan(node ast.Node) *SemanticErrorBuilder {
	start, end := node.NodePos(), node.NodeEndPos()
	if end.Line == start.Line {
		return b.WithLength(end.Offset - start.Offset)
	}
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SemanticErrorBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithLevel overrides the default error level
func (b *SemanticErrorBuilder) WithLevel(level ErrorLevel) *SemanticErrorBuilder {
	b.err.Level = level
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

func UnresolvedIdentifier(name string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorUnresolvedIdentifier, fmt.Sprintf("cannot resolve the type of '%s'", name), pos).
		WithLength(len(name)).
		WithNote("identifiers cannot be used in expressions yet").
		WithSuggestion("use a literal value instead").
		Build()
}

// TypeMismatch reports an initializer whose type is not exactly the declared one.
func TypeMismatch(expected, actual types.Type, pos ast.Position) CompilerError {
	builder := NewSemanticError(ErrorTypeMismatch,
		fmt.Sprintf("type mismatch: expected %s, found %s", typeName(expected), typeName(actual)), pos)

	if types.IsNumeric(expected) && types.IsNumeric(actual) {
		builder = builder.
			WithNote("numeric values are never converted implicitly at a declaration").
			WithHelp(fmt.Sprintf("declare the variable as '%s' or drop the annotation", typeName(actual)))
	}

	return builder.Build()
}

func InvalidBinaryOperation(op string, left, right types.Type, pos ast.Position) CompilerError {
	builder := NewSemanticError(ErrorInvalidBinaryOperation,
		fmt.Sprintf("invalid operation: %s %s %s", typeName(left), op, typeName(right)), pos)

	if !types.IsNumeric(left) || !types.IsNumeric(right) {
		builder = builder.WithSuggestion("arithmetic operations require numeric types").
			WithNote("numeric types are: i8, i16, i32, i64, u8, u16, u32, u64, f32, f64")
	}

	return builder.Build()
}

// CannotCoalesce is a note that accompanies an invalid binary operation when
// the operand types have no common type.
func CannotCoalesce(left, right types.Type, pos ast.Position, length int) CompilerError {
	return NewSemanticError(ErrorCannotCoalesce,
		fmt.Sprintf("types '%s' and '%s' cannot be coalesced", typeName(left), typeName(right)), pos).
		WithLevel(Note).
		WithLength(length).
		WithNote("integers coalesce with integers and floats; floats coalesce with integers and floats").
		Build()
}

func InvalidPrefixOperation(op string, operand types.Type, pos ast.Position) CompilerError {
	builder := NewSemanticError(ErrorInvalidOperation,
		fmt.Sprintf("invalid operation: %s%s", op, typeName(operand)), pos)

	switch op {
	case "-":
		builder = builder.WithNote("negation requires an integer or float operand")
	default:
		builder = builder.WithNote(fmt.Sprintf("operator '%s' is not supported yet", op)).
			WithSuggestion("only '-' can be used as a prefix operator")
	}

	return builder.Build()
}

func typeName(t types.Type) string {
	if t == nil {
		return "<unknown>"
	}
	return t.String()
}
