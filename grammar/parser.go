package grammar

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var fileParser = buildParser()

func buildParser() *participle.Parser[File] {
	parser, err := participle.Build[File](
		participle.Lexer(CinderLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build parser: %s", err))
	}
	return parser
}

func ParseFile(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

func Parse(filename, source string) (*File, error) {
	return fileParser.ParseString(filename, source)
}

// FormatError renders a caret-style message for an error returned by Parse.
func FormatError(src string, err error) string {
	red := color.New(color.FgRed).SprintFunc()
	hiRed := color.New(color.FgHiRed).SprintFunc()

	pe, ok := err.(participle.Error)
	if !ok {
		return red(fmt.Sprintf("Unexpected error: %s", err))
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return red(fmt.Sprintf("Syntax error at unknown location: %s", err))
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"

	var b strings.Builder
	b.WriteString(red(fmt.Sprintf("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)))
	b.WriteString("\n")
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(hiRed(caret))
	b.WriteString("\n")
	fmt.Fprintf(&b, "→ %s\n", pe.Message())
	return b.String()
}
