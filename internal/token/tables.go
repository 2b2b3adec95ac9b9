package token

import (
	"cmp"
	"slices"
)

// entry pairs the source text of a reserved symbol with the symbol itself.
type entry struct {
	text   string
	symbol Symbol
}

func compareEntry(e entry, text string) int {
	return cmp.Compare(e.text, text)
}

// sorted returns the table ordered by text so that it can be binary searched.
func sorted(table []entry) []entry {
	slices.SortFunc(table, func(a, b entry) int { return cmp.Compare(a.text, b.text) })
	return table
}

func tableFor(first, last Symbol) []entry {
	table := make([]entry, 0, last-first+1)
	for s := first; s <= last; s++ {
		table = append(table, entry{text: s.String(), symbol: s})
	}
	return sorted(table)
}

var (
	keywords  = tableFor(KwAnd, KwYield)
	operators = tableFor(ParenOpen, NotEqual)
)

// MaxOperatorLength is the length in bytes of the longest operator.
const MaxOperatorLength = 3

func lookup(table []entry, text string) (Symbol, bool) {
	i, found := slices.BinarySearchFunc(table, text, compareEntry)
	if !found {
		return Unknown, false
	}
	return table[i].symbol, true
}

// LookupKeyword finds the keyword spelled exactly as text.
func LookupKeyword(text string) (Symbol, bool) {
	return lookup(keywords, text)
}

// LookupOperator finds the operator or punctuator spelled exactly as text.
func LookupOperator(text string) (Symbol, bool) {
	return lookup(operators, text)
}

// Keywords returns the keyword spellings in sorted order.
func Keywords() []string {
	out := make([]string, len(keywords))
	for i, e := range keywords {
		out[i] = e.text
	}
	return out
}
