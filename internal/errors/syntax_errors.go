package errors

import (
	"fmt"
	"strings"

	"cinder/internal/ast"
	"cinder/internal/token"
)

// UnexpectedToken reports a token the grammar did not allow. When the token is
// an identifier that looks like a misspelled keyword, a suggestion is added.
func UnexpectedToken(message string, found token.Token, pos ast.Position) CompilerError {
	builder := NewSemanticError(ErrorUnexpectedToken, message, pos).
		WithLength(found.Len())

	if found.IsIdentifier() {
		similar := findSimilarNames(found.Identifier(), token.Keywords())
		switch len(similar) {
		case 0:
		case 1:
			builder = builder.WithReplacement(fmt.Sprintf("did you mean '%s'?", similar[0]), similar[0], pos, found.Len())
		default:
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
		}
	}

	return builder.Build()
}

func InvalidNumber(message string, pos ast.Position, length int) CompilerError {
	return NewSemanticError(ErrorInvalidNumber, message, pos).
		WithLength(length).
		WithNote("a number may contain at most one decimal point").
		Build()
}

func IntegerOutOfRange(message string, pos ast.Position, length int) CompilerError {
	return NewSemanticError(ErrorIntegerOutOfRange, message, pos).
		WithLength(length).
		WithNote("the largest integer literal is 18446744073709551615").
		Build()
}

func UnterminatedString(pos ast.Position, length int) CompilerError {
	return NewSemanticError(ErrorUnterminatedString, "unterminated string literal", pos).
		WithLength(length).
		WithSuggestion("add a closing '\"'").
		Build()
}

func UnexpectedCharacter(message string, pos ast.Position, length int) CompilerError {
	return NewSemanticError(ErrorUnexpectedCharacter, message, pos).
		WithLength(length).
		Build()
}

func InvalidArrayLength(message string, pos ast.Position, length int) CompilerError {
	return NewSemanticError(ErrorInvalidArrayLength, message, pos).
		WithLength(length).
		WithNote("array lengths must fit in a signed 32-bit integer").
		Build()
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if len(candidate) > 2 && levenshteinDistance(target, candidate) <= 1 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
