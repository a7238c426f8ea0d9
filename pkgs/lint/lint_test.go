package lint

import (
	"testing"

	"github.com/aledsdavies/blogdown/pkgs/parser"
)

func TestScanNoPhrasesNeverHits(t *testing.T) {
	prog, err := parser.Parse("section s { paragraph { `hello world` } } article a { s }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	scanner, err := NewScanner(nil)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	if hits := scanner.Scan(prog); len(hits) != 0 {
		t.Fatalf("expected no hits, got %v", hits)
	}
}

func TestScanFindsBannedPhrase(t *testing.T) {
	prog, err := parser.Parse("section s { paragraph { `this contains forbidden text` } } article a { s }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	scanner, err := NewScanner([]string{"forbidden"})
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	hits := scanner.Scan(prog)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d: %v", len(hits), hits)
	}
	if hits[0].Phrase != "forbidden" {
		t.Fatalf("expected phrase %q, got %q", "forbidden", hits[0].Phrase)
	}
}

func TestScanFindsHitInListItems(t *testing.T) {
	prog, err := parser.Parse("section s { paragraph { list { `ok` `banned` } } } article a { s }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	scanner, err := NewScanner([]string{"banned"})
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	hits := scanner.Scan(prog)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d: %v", len(hits), hits)
	}
}
