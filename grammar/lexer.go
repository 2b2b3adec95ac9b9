package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"cinder/internal/token"
)

var CinderLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Floats before integers so "1.5" is one token
		{"Float", `[0-9]+\.[0-9]*`, nil},
		{"Integer", `[0-9]+`, nil},

		// Reserved words may not be used as names (order matters)
		{"Keyword", keywordPattern(), nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Operators
		{"Operator", `[-+*/%!~]`, nil},

		// Punctuation
		{"Punctuation", `[:;=()[\]]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

// keywordPattern matches every reserved word except the builtin type names,
// which the grammar reads as identifiers in type position.
func keywordPattern() string {
	var words []string
	for _, word := range token.Keywords() {
		sym, _ := token.LookupKeyword(word)
		if sym.IsIntegerType() || sym.IsFloatType() {
			continue
		}
		words = append(words, word)
	}
	return `(?:` + strings.Join(words, "|") + `)\b`
}
