package parser

import (
	"errors"
	"fmt"

	"cinder/internal/token"
)

type LexErrorKind int

const (
	InvalidNumber LexErrorKind = iota
	IntegerOutOfRange
	UnterminatedString
	UnexpectedCharacter
)

var (
	ErrInvalidNumber       = errors.New("invalid number literal")
	ErrIntegerOutOfRange   = errors.New("integer literal out of range")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnexpectedCharacter = errors.New("unexpected character")

	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrInvalidArrayLength = errors.New("invalid array length")
)

func (k LexErrorKind) sentinel() error {
	switch k {
	case InvalidNumber:
		return ErrInvalidNumber
	case IntegerOutOfRange:
		return ErrIntegerOutOfRange
	case UnterminatedString:
		return ErrUnterminatedString
	}
	return ErrUnexpectedCharacter
}

func (k LexErrorKind) String() string {
	return k.sentinel().Error()
}

// LexError is a malformed literal or a character no token starts with.
type LexError struct {
	Kind    LexErrorKind
	Message string
	Pos     token.Position
	Length  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *LexError) Unwrap() error {
	return e.Kind.sentinel()
}

type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	InvalidArrayLength
)

// ParseError is a token found where the grammar required something else.
type ParseError struct {
	Kind     ParseErrorKind
	Message  string
	Expected string
	Found    token.Token
	Pos      token.Position
	Length   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Kind == InvalidArrayLength {
		return ErrInvalidArrayLength
	}
	return ErrUnexpectedToken
}
