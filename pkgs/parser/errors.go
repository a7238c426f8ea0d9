package parser

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/blogdown/pkgs/lexer"
)

// UnexpectedTokenError reports a token that did not match what the
// grammar required at that point.
type UnexpectedTokenError struct {
	Expected string
	Found    lexer.Token
	Position lexer.Position
	source   string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, found %s\n%s", e.Expected, e.Found.Kind, snippet(e.source, e.Position))
}

// UnexpectedEofError reports running out of tokens mid-production.
type UnexpectedEofError struct {
	Expected string
	Position lexer.Position
	source   string
}

func (e *UnexpectedEofError) Error() string {
	return fmt.Sprintf("unexpected end of input, expected %s\n%s", e.Expected, snippet(e.source, e.Position))
}

// snippet renders a caret-pointed source excerpt in the teacher's
// Rust/Clang-inspired style (grounded on the devcmd/opal ParseError).
func snippet(source string, pos lexer.Position) string {
	if source == "" || pos.Line == 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}
	line := lines[pos.Line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "  --> %d:%d\n", pos.Line, pos.Column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", pos.Line, line)
	b.WriteString("   | ")
	if pos.Column > 0 && pos.Column <= len(line)+1 {
		b.WriteString(strings.Repeat(" ", pos.Column-1) + "^")
	}
	return b.String()
}
