// Package token defines the lexical units produced by the tokenizer.
package token

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Token holds.
type Kind uint8

const (
	Reserved Kind = iota
	Identifier
	Integer
	Float
	String
	EOF
)

var kindNames = [...]string{
	Reserved:   "Reserved",
	Identifier: "Identifier",
	Integer:    "Integer",
	Float:      "Float",
	String:     "String",
	EOF:        "EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// Token is an immutable lexical unit. Only the payload field matching Kind
// is meaningful; Lexeme always holds the raw source text.
type Token struct {
	Kind   Kind
	Symbol Symbol
	Text   string
	Int    uint64
	Float  float64
	Lexeme string
	Pos    Position
}

func NewReserved(s Symbol, lexeme string, pos Position) Token {
	return Token{Kind: Reserved, Symbol: s, Lexeme: lexeme, Pos: pos}
}

func NewIdentifier(name string, pos Position) Token {
	return Token{Kind: Identifier, Text: name, Lexeme: name, Pos: pos}
}

func NewInteger(v uint64, lexeme string, pos Position) Token {
	return Token{Kind: Integer, Int: v, Lexeme: lexeme, Pos: pos}
}

func NewFloat(v float64, lexeme string, pos Position) Token {
	return Token{Kind: Float, Float: v, Lexeme: lexeme, Pos: pos}
}

func NewString(value, lexeme string, pos Position) Token {
	return Token{Kind: String, Text: value, Lexeme: lexeme, Pos: pos}
}

func NewEOF(pos Position) Token {
	return Token{Kind: EOF, Pos: pos}
}

func (t Token) IsReserved() bool   { return t.Kind == Reserved }
func (t Token) IsIdentifier() bool { return t.Kind == Identifier }
func (t Token) IsInteger() bool    { return t.Kind == Integer }
func (t Token) IsFloat() bool      { return t.Kind == Float }
func (t Token) IsString() bool     { return t.Kind == String }
func (t Token) IsEOF() bool        { return t.Kind == EOF }

// Is reports whether the token is the reserved symbol s.
func (t Token) Is(s Symbol) bool {
	return t.Kind == Reserved && t.Symbol == s
}

// IsUnknown reports whether the tokenizer could not classify the lexeme.
func (t Token) IsUnknown() bool {
	return t.Is(Unknown)
}

func (t Token) must(k Kind) {
	if t.Kind != k {
		panic(fmt.Sprintf("token: %s accessed as %s", t.Kind, k))
	}
}

// Reserved returns the symbol. It panics unless IsReserved.
func (t Token) Reserved() Symbol {
	t.must(Reserved)
	return t.Symbol
}

// Identifier returns the identifier name. It panics unless IsIdentifier.
func (t Token) Identifier() string {
	t.must(Identifier)
	return t.Text
}

// Integer returns the literal value. It panics unless IsInteger.
func (t Token) Integer() uint64 {
	t.must(Integer)
	return t.Int
}

// FloatValue returns the literal value. It panics unless IsFloat.
func (t Token) FloatValue() float64 {
	t.must(Float)
	return t.Float
}

// StringValue returns the literal content without quotes. It panics unless IsString.
func (t Token) StringValue() string {
	t.must(String)
	return t.Text
}

// Len is the number of source bytes the token covers.
func (t Token) Len() int {
	return len(t.Lexeme)
}

func (t Token) String() string {
	switch t.Kind {
	case Reserved:
		if t.Symbol == Unknown && t.Lexeme != "" {
			return fmt.Sprintf("Token<[%s] : Unknown>", t.Lexeme)
		}
		return fmt.Sprintf("Token<[%s] : Reserved>", t.Symbol)
	case Identifier:
		return fmt.Sprintf("Token<[%s] : Identifier>", t.Text)
	case Integer:
		return fmt.Sprintf("Token<[%d] : Integer>", t.Int)
	case Float:
		return fmt.Sprintf("Token<[%s] : Float>", strconv.FormatFloat(t.Float, 'g', -1, 64))
	case String:
		return fmt.Sprintf("Token<[%s] : String>", t.Text)
	case EOF:
		return "Token<__EOF__>"
	}
	return "Invalid Token"
}

// Describe renders the token the way it appears in source, for error messages.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Identifier:
		return fmt.Sprintf("identifier '%s'", t.Text)
	case Integer, Float:
		return fmt.Sprintf("number '%s'", t.Lexeme)
	case String:
		return fmt.Sprintf("string %s", t.Lexeme)
	}
	if t.Symbol == Unknown {
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
	return fmt.Sprintf("'%s'", t.Symbol)
}
