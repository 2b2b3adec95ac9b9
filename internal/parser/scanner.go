package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tliron/commonlog"

	"cinder/internal/token"
)

var log = commonlog.GetLogger("cinder.parser")

// Scanner turns source text into tokens on demand. Once the end of input has
// been reached every further call to NextToken returns EOF again.
type Scanner struct {
	source  string
	current int
	line    int
	column  int
	errors  []*LexError
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// NextToken scans and returns the next token.
func (s *Scanner) NextToken() token.Token {
	s.skipWhitespace()

	tok := s.scanToken()
	log.Debugf("%d:%d %s", tok.Pos.Line, tok.Pos.Column, tok)
	return tok
}

// ScanTokens drains the scanner, returning every remaining token including
// the final EOF.
func (s *Scanner) ScanTokens() []token.Token {
	var tokens []token.Token
	for {
		tok := s.NextToken()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens
		}
	}
}

// Errors returns every lexical error found so far, in source order.
func (s *Scanner) Errors() []*LexError {
	return s.errors
}

// ErrorAt returns the lexical error reported for the token starting at offset.
func (s *Scanner) ErrorAt(offset int) *LexError {
	for _, err := range s.errors {
		if err.Pos.Offset == offset {
			return err
		}
	}
	return nil
}

func (s *Scanner) scanToken() token.Token {
	if s.isAtEnd() {
		return token.NewEOF(s.pos())
	}

	c := s.peek()
	switch {
	case isAlpha(c):
		return s.scanIdentifier()
	case isDigit(c):
		return s.scanNumber()
	case c == '"':
		return s.scanString()
	}

	return s.scanOperator()
}

func (s *Scanner) scanIdentifier() token.Token {
	start := s.pos()
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[start.Offset:s.current]

	if sym, ok := token.LookupKeyword(text); ok {
		return token.NewReserved(sym, text, start)
	}
	return token.NewIdentifier(text, start)
}

func (s *Scanner) scanNumber() token.Token {
	start := s.pos()
	for isDigit(s.peek()) || s.peek() == '.' {
		s.advance()
	}
	text := s.source[start.Offset:s.current]

	switch strings.Count(text, ".") {
	case 0:
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return s.unknown(start, IntegerOutOfRange, "integer literal '"+text+"' does not fit in 64 bits")
		}
		return token.NewInteger(v, text, start)
	case 1:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return s.unknown(start, InvalidNumber, "invalid float literal '"+text+"'")
		}
		return token.NewFloat(v, text, start)
	}

	return s.unknown(start, InvalidNumber, "number '"+text+"' has more than one decimal point")
}

// Strings have no escape sequences; the value is everything between the quotes.
func (s *Scanner) scanString() token.Token {
	start := s.pos()
	s.advance() // opening quote

	for !s.isAtEnd() && s.peek() != '"' {
		s.advance()
	}
	if s.isAtEnd() {
		return s.unknown(start, UnterminatedString, "unterminated string literal")
	}

	s.advance() // closing quote
	lexeme := s.source[start.Offset:s.current]
	return token.NewString(lexeme[1:len(lexeme)-1], lexeme, start)
}

// scanOperator takes the longest operator that matches at the cursor.
func (s *Scanner) scanOperator() token.Token {
	start := s.pos()
	for n := token.MaxOperatorLength; n > 0; n-- {
		if s.current+n > len(s.source) {
			continue
		}
		text := s.source[s.current : s.current+n]
		if sym, ok := token.LookupOperator(text); ok {
			for range n {
				s.advance()
			}
			return token.NewReserved(sym, text, start)
		}
	}

	_, size := utf8.DecodeRuneInString(s.source[s.current:])
	for range size {
		s.advance()
	}
	return s.unknown(start, UnexpectedCharacter, "unexpected character '"+s.source[start.Offset:s.current]+"'")
}

// unknown records a lexical error covering start up to the cursor and
// returns the matching Unknown token.
func (s *Scanner) unknown(start token.Position, kind LexErrorKind, message string) token.Token {
	lexeme := s.source[start.Offset:s.current]
	s.errors = append(s.errors, &LexError{
		Kind:    kind,
		Message: message,
		Pos:     start,
		Length:  len(lexeme),
	})
	return token.NewReserved(token.Unknown, lexeme, start)
}

func (s *Scanner) skipWhitespace() {
	for !s.isAtEnd() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) pos() token.Position {
	return token.Position{Line: s.line, Column: s.column, Offset: s.current}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}
