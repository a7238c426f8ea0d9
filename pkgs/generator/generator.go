// Package generator walks a pkgs/ast.Program in article declaration
// order and serializes it to HTML. All user text is inserted verbatim
// — no HTML escaping is performed (spec.md §4.5, §9: a documented,
// preserved limitation, not an oversight). Text payloads are still
// passed through Unicode NFC normalization before emission, since the
// DSL's contract is UTF-8 text and NFC is the one well-defined notion
// of "the same text" across encodings of combining characters.
package generator

import (
	"fmt"
	"io"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/unicode/norm"

	"github.com/aledsdavies/blogdown/pkgs/ast"
)

// Generate writes prog to w in article declaration order. It is a
// pure function of prog and the fixed emission templates below
// (spec.md §5: deterministic output).
func Generate(w io.Writer, prog *ast.Program) error {
	g := &generatorVisitor{w: w}
	for _, article := range prog.Articles {
		for _, ref := range article.SectionRefs {
			section, ok := prog.Sections[ref]
			if !ok {
				return &UnknownSectionError{Name: ref, Suggestion: closestSectionName(ref, prog.Sections)}
			}
			if err := g.writeSection(section); err != nil {
				return err
			}
		}
		if g.err != nil {
			return g.err
		}
	}
	return g.err
}

type generatorVisitor struct {
	w   io.Writer
	err error
}

func (g *generatorVisitor) write(s string) {
	if g.err != nil {
		return
	}
	if _, err := io.WriteString(g.w, s); err != nil {
		g.err = &IoError{Cause: err}
	}
}

func (g *generatorVisitor) writeSection(s *ast.SectionDeclaration) error {
	for _, p := range s.Paragraphs {
		if g.err != nil {
			return g.err
		}
		g.write("<br/>")
		p.Visit(g)
	}
	return g.err
}

func nfc(s string) string { return norm.NFC.String(s) }

// closestSectionName finds the known section name with the smallest
// fuzzy edit distance to name, or "" if there are no candidates.
func closestSectionName(name string, sections map[string]*ast.SectionDeclaration) string {
	if len(sections) == 0 {
		return ""
	}
	candidates := make([]string, 0, len(sections))
	for n := range sections {
		candidates = append(candidates, n)
	}
	sort.Strings(candidates)
	best := candidates[0]
	bestDist := fuzzy.LevenshteinDistance(name, best)
	for _, c := range candidates[1:] {
		if d := fuzzy.LevenshteinDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func (g *generatorVisitor) VisitHeading(h *ast.Heading) {
	g.write(fmt.Sprintf("<h%d className='text-3xl'>'%s'</h%d>", h.Level, nfc(h.Text), h.Level))
}

func (g *generatorVisitor) VisitTextBlock(t *ast.TextBlock) {
	g.write("<p>" + nfc(t.Text) + "</p>")
}

func (g *generatorVisitor) VisitCodeBlock(c *ast.CodeBlock) {
	g.write("<pre className='w-full overflow-x-auto'><code>{{'" + nfc(c.Text) + "'}}</code></pre>")
}

func (g *generatorVisitor) VisitAside(a *ast.Aside) {
	g.write("<div className='p-8 bg-opacity-10 bg-black italic'><p>" + nfc(a.Text) + "</p></div>")
}

func (g *generatorVisitor) VisitList(l *ast.List) {
	g.write("<ul>")
	for _, item := range l.Items {
		g.write("<li>" + nfc(item) + "</li>")
	}
	g.write("</ul>")
}
