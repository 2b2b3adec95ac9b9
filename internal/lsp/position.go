package lsp

import (
	"strings"
	"unicode/utf16"
)

// lineIndex converts the 1-based byte columns used by the compiler into the
// 0-based UTF-16 characters LSP positions count in.
type lineIndex []string

func newLineIndex(source string) lineIndex {
	return strings.Split(source, "\n")
}

// character is the UTF-16 offset of a byte column on line. Columns past the
// end of the line count one unit per byte.
func (l lineIndex) character(line, column int) uint32 {
	col := max(column-1, 0)
	if line < 1 || line > len(l) {
		return uint32(col)
	}
	text := l[line-1]
	if col > len(text) {
		return uint32(utf16Len(text) + col - len(text))
	}
	return uint32(utf16Len(text[:col]))
}

// span is the UTF-16 length of length bytes starting at a byte column.
func (l lineIndex) span(line, column, length int) uint32 {
	start := l.character(line, column)
	end := l.character(line, column+length)
	if end <= start {
		return 1
	}
	return end - start
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
