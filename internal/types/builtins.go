package types

import "cinder/internal/token"

// FromKeyword returns the builtin type named by a type keyword such as i32 or f64.
func FromKeyword(s token.Symbol) (Type, bool) {
	switch s {
	case token.KwU8:
		return &Integer{Signed: false, Size: 1}, true
	case token.KwU16:
		return &Integer{Signed: false, Size: 2}, true
	case token.KwU32:
		return &Integer{Signed: false, Size: 4}, true
	case token.KwU64:
		return &Integer{Signed: false, Size: 8}, true
	case token.KwI8:
		return &Integer{Signed: true, Size: 1}, true
	case token.KwI16:
		return &Integer{Signed: true, Size: 2}, true
	case token.KwI32:
		return &Integer{Signed: true, Size: 4}, true
	case token.KwI64:
		return &Integer{Signed: true, Size: 8}, true
	case token.KwF32:
		return &Float{Size: 4}, true
	case token.KwF64:
		return &Float{Size: 8}, true
	}
	return nil, false
}

// IntegerLiteral is the type every integer literal is given.
func IntegerLiteral() Type {
	return &Integer{Signed: false, Size: 8}
}

// FloatLiteral is the type every float literal is given.
func FloatLiteral() Type {
	return &Float{Size: 8}
}

func Bool() Type {
	return &Boolean{}
}
