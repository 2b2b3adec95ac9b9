package errors

// Error codes for the cinder compiler
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Semantic analysis errors
// E0100-E0199: Parser and tokenizer errors
// E0200-E0299: Type system errors
// E0800-E0899: Warning codes

const (
	// E0001: Identifier resolution errors
	ErrorUnresolvedIdentifier = "E0001"

	// E0003: Declared type differs from the initializer's type
	ErrorTypeMismatch = "E0003"

	// E0008: Binary operation type errors
	ErrorInvalidBinaryOperation = "E0008"

	// E0015: Prefix operator not valid for its operand
	ErrorInvalidOperation = "E0015"

	// E0016: Generic semantic error
	ErrorGenericSemantic = "E0016"

	// Parser errors (E0100-E0199)

	// E0100: Token does not fit the grammar at this point
	ErrorUnexpectedToken = "E0100"

	// E0101: Number with more than one decimal point
	ErrorInvalidNumber = "E0101"

	// E0102: Character that starts no token
	ErrorUnexpectedCharacter = "E0102"

	// E0103: String literal without closing quote
	ErrorUnterminatedString = "E0103"

	// E0104: Integer literal larger than 64 bits
	ErrorIntegerOutOfRange = "E0104"

	// E0105: Array length that is not a 32-bit integer
	ErrorInvalidArrayLength = "E0105"

	// Type system errors (E0200-E0299)

	// E0200: No common numeric type exists
	ErrorCannotCoalesce = "E0200"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnresolvedIdentifier:
		return "Identifier type cannot be resolved"
	case ErrorTypeMismatch:
		return "Initializer type does not match the declared type"
	case ErrorInvalidBinaryOperation:
		return "Binary operation not supported for these types"
	case ErrorInvalidOperation:
		return "Prefix operator not supported for this operand"
	case ErrorGenericSemantic:
		return "Semantic analysis error"
	case ErrorUnexpectedToken:
		return "Unexpected token"
	case ErrorInvalidNumber:
		return "Malformed number literal"
	case ErrorUnexpectedCharacter:
		return "Character is not valid here"
	case ErrorUnterminatedString:
		return "String literal is never closed"
	case ErrorIntegerOutOfRange:
		return "Integer literal does not fit in 64 bits"
	case ErrorInvalidArrayLength:
		return "Array length must be an integer literal that fits in 32 bits"
	case ErrorCannotCoalesce:
		return "Types have no common numeric type"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code >= "E0800" && code < "E0900" || (code != "" && code[0] == 'W')
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Semantic Analysis"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Type System"
	case IsWarning(code):
		return "Warning"
	default:
		return "Unknown"
	}
}
