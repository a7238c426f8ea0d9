// Package ast defines the typed tree the parser produces and the
// generator walks. Nodes are tagged variants dispatched by type switch,
// not an inheritance hierarchy (spec.md §9).
package ast

// Program is the root node: a name-to-section map plus an ordered list
// of articles.
type Program struct {
	Sections map[string]*SectionDeclaration
	Articles []*ArticleDeclaration
}

// NewProgram returns an empty Program ready to accept declarations in
// source order.
func NewProgram() *Program {
	return &Program{Sections: make(map[string]*SectionDeclaration)}
}

// AddSection registers a section declaration. A second declaration of
// the same name silently overwrites the first — documented behavior
// (spec.md §4.4, SPEC_FULL.md §9) preserved from the reference
// implementation.
func (p *Program) AddSection(s *SectionDeclaration) {
	p.Sections[s.Name] = s
}

// AddArticle appends an article declaration in source order.
func (p *Program) AddArticle(a *ArticleDeclaration) {
	p.Articles = append(p.Articles, a)
}

// SectionDeclaration names an ordered sequence of paragraphs.
type SectionDeclaration struct {
	Name       string
	Paragraphs []*Paragraph
}

// ArticleDeclaration composes sections by name. Name may be empty
// (spec.md §4.4's `Ident?`).
type ArticleDeclaration struct {
	Name        string
	SectionRefs []string
}

// Paragraph is an ordered sequence of statements.
type Paragraph struct {
	Statements []Statement
}

// Statement is the tagged union of paragraph content. Heading,
// TextBlock, CodeBlock, Aside, and List are its only variants.
type Statement interface {
	statementNode()
}

type Heading struct {
	Level int
	Text  string
}

type TextBlock struct {
	Text string
}

type CodeBlock struct {
	Text string
}

type Aside struct {
	Text string
}

// List is an ordered sequence of item texts. It is itself a Statement
// variant (spec.md §3: "Statement is one of: ... List(List)").
type List struct {
	Items []string
}

func (*Heading) statementNode()   {}
func (*TextBlock) statementNode() {}
func (*CodeBlock) statementNode() {}
func (*Aside) statementNode()     {}
func (*List) statementNode()      {}

// Visitor receives one callback per Statement variant. The generator
// and the content linter both implement it instead of re-deriving the
// type switch (SPEC_FULL.md §3).
type Visitor interface {
	VisitHeading(*Heading)
	VisitTextBlock(*TextBlock)
	VisitCodeBlock(*CodeBlock)
	VisitAside(*Aside)
	VisitList(*List)
}

// Visit dispatches every statement in the paragraph to v, in source
// order.
func (p *Paragraph) Visit(v Visitor) {
	for _, st := range p.Statements {
		switch n := st.(type) {
		case *Heading:
			v.VisitHeading(n)
		case *TextBlock:
			v.VisitTextBlock(n)
		case *CodeBlock:
			v.VisitCodeBlock(n)
		case *Aside:
			v.VisitAside(n)
		case *List:
			v.VisitList(n)
		}
	}
}
