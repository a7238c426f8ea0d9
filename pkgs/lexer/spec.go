package lexer

import (
	"sync"

	"github.com/aledsdavies/blogdown/pkgs/regex"
)

// IdentifierPattern is the open-question decision from SPEC_FULL.md §9:
// a leading letter, then any run of letters, digits, or underscores.
const IdentifierPattern = "[A-Za-z][A-Za-z0-9_]*"

// tokenSpec pairs a Kind with the compiled matcher that recognizes it.
// Declaration order is tie-break priority (spec.md §4.2/§4.3): keywords
// must precede IDENT so "section" lexes as SECTION, not IDENT.
type tokenSpec struct {
	Kind    Kind
	Matcher *regex.Matcher
}

var (
	specTable     []tokenSpec
	specTableOnce sync.Once
)

// specs returns the package's token spec table, compiling it exactly
// once. Once built it is never mutated, so concurrent readers need no
// further synchronization (spec.md §5).
func specs() []tokenSpec {
	specTableOnce.Do(func() {
		specTable = []tokenSpec{
			{SECTION, regex.MustCompile("section")},
			{ARTICLE, regex.MustCompile("article")},
			{PARAGRAPH, regex.MustCompile("paragraph")},
			{HEADING, regex.MustCompile("heading")},
			{CODE, regex.MustCompile("code")},
			{ASIDE, regex.MustCompile("aside")},
			{LIST, regex.MustCompile("list")},
			{ITEM, regex.MustCompile("item")},
			{LBRACE, regex.MustCompile("{")},
			{RBRACE, regex.MustCompile("}")},
			{IDENT, regex.MustCompile(IdentifierPattern)},
			{WHITESPACE, regex.MustCompile("[ \t\n\r]+")},
		}
	})
	return specTable
}
