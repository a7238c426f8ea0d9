// Package lint scans AST text payloads for caller-supplied banned
// phrases. It is purely additive content moderation: it never mutates
// the AST, and with no word list configured it has no effect on the
// compiled HTML.
package lint

import (
	"github.com/coregx/ahocorasick"

	"github.com/aledsdavies/blogdown/pkgs/ast"
)

// Hit reports one banned-phrase occurrence.
type Hit struct {
	Statement  ast.Statement
	Phrase     string
	ByteOffset int
}

// Scanner runs a multi-pattern Aho-Corasick scan over every
// text-bearing statement in a program.
type Scanner struct {
	automaton *ahocorasick.Automaton
}

// NewScanner builds a Scanner over the given banned phrases. An empty
// list is valid and produces a Scanner that never reports a hit.
func NewScanner(phrases []string) (*Scanner, error) {
	builder := ahocorasick.NewBuilder()
	for _, p := range phrases {
		builder.AddPattern([]byte(p))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Scanner{automaton: automaton}, nil
}

// Scan reports every banned-phrase hit across all declared sections of
// prog, referenced or not. Sections are visited in map order, so the
// order of hits from different sections is not defined.
func (s *Scanner) Scan(prog *ast.Program) []Hit {
	var hits []Hit
	for _, section := range prog.Sections {
		for _, paragraph := range section.Paragraphs {
			paragraph.Visit(&scanVisitor{scanner: s, hits: &hits})
		}
	}
	return hits
}

type scanVisitor struct {
	scanner *Scanner
	hits    *[]Hit
}

func (v *scanVisitor) scanText(stmt ast.Statement, text string) {
	haystack := []byte(text)
	at := 0
	for at <= len(haystack) {
		m := v.scanner.automaton.Find(haystack, at)
		if m == nil {
			return
		}
		*v.hits = append(*v.hits, Hit{
			Statement:  stmt,
			Phrase:     string(haystack[m.Start:m.End]),
			ByteOffset: m.Start,
		})
		at = m.Start + 1
	}
}

func (v *scanVisitor) VisitHeading(h *ast.Heading)   { v.scanText(h, h.Text) }
func (v *scanVisitor) VisitTextBlock(t *ast.TextBlock) { v.scanText(t, t.Text) }
func (v *scanVisitor) VisitCodeBlock(c *ast.CodeBlock) { v.scanText(c, c.Text) }
func (v *scanVisitor) VisitAside(a *ast.Aside)       { v.scanText(a, a.Text) }
func (v *scanVisitor) VisitList(l *ast.List) {
	for _, item := range l.Items {
		v.scanText(l, item)
	}
}
