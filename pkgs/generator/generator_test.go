package generator

import (
	"strings"
	"testing"

	"github.com/aledsdavies/blogdown/pkgs/ast"
	"github.com/aledsdavies/blogdown/pkgs/parser"
)

func render(t *testing.T, source string) string {
	t.Helper()
	prog, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var b strings.Builder
	if err := Generate(&b, prog); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return b.String()
}

func TestGenerateEmptyArticleEmptySection(t *testing.T) {
	got := render(t, "section s { } article a { s }")
	if got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestGenerateHeading(t *testing.T) {
	got := render(t, "section s { paragraph { heading `Hi` } } article a { s }")
	want := "<br/><h3 className='text-3xl'>'Hi'</h3>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateTextBlock(t *testing.T) {
	got := render(t, "section s { paragraph { `hello world` } } article a { s }")
	want := "<br/><p>hello world</p>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateAside(t *testing.T) {
	got := render(t, "section s { paragraph { aside `note` } } article a { s }")
	want := "<br/><div className='p-8 bg-opacity-10 bg-black italic'><p>note</p></div>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateCodeBlock(t *testing.T) {
	got := render(t, "section s { paragraph { code `x := 1` } } article a { s }")
	want := "<br/><pre className='w-full overflow-x-auto'><code>{{'x := 1'}}</code></pre>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateList(t *testing.T) {
	got := render(t, "section s { paragraph { list { `one` `two` } } } article a { s }")
	want := "<br/><ul><li>one</li><li>two</li></ul>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateUnknownSection(t *testing.T) {
	prog, err := parser.Parse("article a { missing }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var b strings.Builder
	err = Generate(&b, prog)
	uerr, ok := err.(*UnknownSectionError)
	if !ok {
		t.Fatalf("expected *UnknownSectionError, got %T (%v)", err, err)
	}
	if uerr.Name != "missing" {
		t.Fatalf("expected name %q, got %q", "missing", uerr.Name)
	}
}

func TestGenerateUnknownSectionSuggestsClosestName(t *testing.T) {
	prog, err := parser.Parse("section intro { } article a { itnro }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var b strings.Builder
	err = Generate(&b, prog)
	uerr, ok := err.(*UnknownSectionError)
	if !ok {
		t.Fatalf("expected *UnknownSectionError, got %T (%v)", err, err)
	}
	if uerr.Suggestion != "intro" {
		t.Fatalf("expected suggestion %q, got %q", "intro", uerr.Suggestion)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	source := "section s { paragraph { heading `Hi` } } article a { s }"
	first := render(t, source)
	second := render(t, source)
	if first != second {
		t.Fatalf("output not idempotent: %q vs %q", first, second)
	}
}

func TestGenerateDirectProgram(t *testing.T) {
	prog := ast.NewProgram()
	prog.AddSection(&ast.SectionDeclaration{Name: "s"})
	prog.AddArticle(&ast.ArticleDeclaration{Name: "a", SectionRefs: []string{"s"}})

	var b strings.Builder
	if err := Generate(&b, prog); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if b.String() != "" {
		t.Fatalf("expected empty output, got %q", b.String())
	}
}
