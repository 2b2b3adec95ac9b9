package token

// Symbol is a reserved word, operator or punctuator.
type Symbol uint8

const (
	Unknown Symbol = iota

	// Brackets
	ParenOpen
	ParenClose
	SubscriptOpen
	SubscriptClose
	CurlyOpen
	CurlyClose

	// Punctuators
	FatArrow
	Arrow
	Colon
	DoubleColon
	Semicolon
	Comma
	Dot

	// Arithmetic
	Add
	Div
	Mod
	Mul
	Sub

	// Bitwise
	BinaryAnd
	BinaryOr
	BinaryXor
	BinaryNot
	LeftShift
	RightShift

	// Logical
	LogicalAnd
	LogicalOr
	LogicalNot

	// Assignment
	Assign
	AssignAdd
	AssignSub
	AssignDiv
	AssignMul
	AssignMod
	AssignBinaryAnd
	AssignBinaryOr
	AssignBinaryXor
	AssignBinaryNot
	AssignLeftShift
	AssignRightShift

	// Comparison
	EqualTo
	GreaterThan
	LessThan
	GreaterThanEqualTo
	LessThanEqualTo
	NotEqual

	// Keywords
	KwAnd
	KwAs
	KwAssert
	KwBreak
	KwClass
	KwContinue
	KwContract
	KwStruct
	KwEnum
	KwStatic
	KwMethod
	KwDefer
	KwMatch
	KwDefault
	KwDefine
	KwDel
	KwElif
	KwElse
	KwFalse
	KwFor
	KwFrom
	KwGlobal
	KwIf
	KwImport
	KwIn
	KwIs
	KwLambda
	KwLet
	KwI8
	KwI16
	KwI32
	KwI64
	KwU8
	KwU16
	KwU32
	KwU64
	KwF32
	KwF64
	KwPass
	KwReturn
	KwTrue
	KwWhile
	KwWith
	KwYield

	symbolCount
)

var symbolText = [symbolCount]string{
	Unknown: "UNKNOWN",

	ParenOpen:      "(",
	ParenClose:     ")",
	SubscriptOpen:  "[",
	SubscriptClose: "]",
	CurlyOpen:      "{",
	CurlyClose:     "}",

	FatArrow:    "=>",
	Arrow:       "->",
	Colon:       ":",
	DoubleColon: "::",
	Semicolon:   ";",
	Comma:       ",",
	Dot:         ".",

	Add: "+",
	Div: "/",
	Mod: "%",
	Mul: "*",
	Sub: "-",

	BinaryAnd:  "&",
	BinaryOr:   "|",
	BinaryXor:  "^",
	BinaryNot:  "~",
	LeftShift:  "<<",
	RightShift: ">>",

	LogicalAnd: "&&",
	LogicalOr:  "||",
	LogicalNot: "!",

	Assign:           "=",
	AssignAdd:        "+=",
	AssignSub:        "-=",
	AssignDiv:        "/=",
	AssignMul:        "*=",
	AssignMod:        "%=",
	AssignBinaryAnd:  "&=",
	AssignBinaryOr:   "|=",
	AssignBinaryXor:  "^=",
	AssignBinaryNot:  "~=",
	AssignLeftShift:  "<<=",
	AssignRightShift: ">>=",

	EqualTo:            "==",
	GreaterThan:        ">",
	LessThan:           "<",
	GreaterThanEqualTo: ">=",
	LessThanEqualTo:    "<=",
	NotEqual:           "!=",

	KwAnd:      "and",
	KwAs:       "as",
	KwAssert:   "assert",
	KwBreak:    "break",
	KwClass:    "class",
	KwContinue: "continue",
	KwContract: "contract",
	KwStruct:   "struct",
	KwEnum:     "enum",
	KwStatic:   "static",
	KwMethod:   "method",
	KwDefer:    "defer",
	KwMatch:    "match",
	KwDefault:  "default",
	KwDefine:   "define",
	KwDel:      "del",
	KwElif:     "elif",
	KwElse:     "else",
	KwFalse:    "false",
	KwFor:      "for",
	KwFrom:     "from",
	KwGlobal:   "global",
	KwIf:       "if",
	KwImport:   "import",
	KwIn:       "in",
	KwIs:       "is",
	KwLambda:   "lambda",
	KwLet:      "let",
	KwI8:       "i8",
	KwI16:      "i16",
	KwI32:      "i32",
	KwI64:      "i64",
	KwU8:       "u8",
	KwU16:      "u16",
	KwU32:      "u32",
	KwU64:      "u64",
	KwF32:      "f32",
	KwF64:      "f64",
	KwPass:     "pass",
	KwReturn:   "return",
	KwTrue:     "true",
	KwWhile:    "while",
	KwWith:     "with",
	KwYield:    "yield",
}

// String returns the source text of the symbol.
func (s Symbol) String() string {
	if s >= symbolCount {
		return "__invalid_reserved__"
	}
	return symbolText[s]
}

// IsKeyword reports whether the symbol is a reserved word rather than an operator.
func (s Symbol) IsKeyword() bool {
	return s >= KwAnd && s < symbolCount
}

// IsIntegerType reports whether the symbol names a builtin integer type.
func (s Symbol) IsIntegerType() bool {
	switch s {
	case KwI8, KwI16, KwI32, KwI64, KwU8, KwU16, KwU32, KwU64:
		return true
	}
	return false
}

// IsFloatType reports whether the symbol names a builtin float type.
func (s Symbol) IsFloatType() bool {
	return s == KwF32 || s == KwF64
}

// IsPunctuation reports whether the symbol is a bracket or punctuator.
func (s Symbol) IsPunctuation() bool {
	return s >= ParenOpen && s <= Dot
}
