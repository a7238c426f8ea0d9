// Package parser implements the recursive-descent parser over the
// lexer's token stream, producing a pkgs/ast.Program (spec.md §4.4).
package parser

import (
	"github.com/aledsdavies/blogdown/pkgs/ast"
	"github.com/aledsdavies/blogdown/pkgs/lexer"
)

// headingLevel is fixed: the grammar's Heading production (spec.md
// §4.4) takes no level argument, so every heading renders at the same
// level (spec.md end-to-end scenario 2 emits <h3>).
const headingLevel = 3

// Parser consumes a token stream with one-token lookahead and no
// backtracking.
type Parser struct {
	lex     *lexer.Lexer
	source  string
	current lexer.Token
}

// Parse lexes and parses source into a Program, or returns the first
// error encountered — the parser never recovers and never backtracks
// past one token (spec.md §4.4).
func Parse(source string, opts ...lexer.Opt) (*ast.Program, error) {
	p := &Parser{lex: lexer.New(source, opts...), source: source}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *Parser) unexpectedToken(expected string) error {
	return &UnexpectedTokenError{Expected: expected, Found: p.current, Position: p.current.Pos, source: p.source}
}

func (p *Parser) unexpectedEOF(expected string) error {
	return &UnexpectedEofError{Expected: expected, Position: p.current.Pos, source: p.source}
}

// expect consumes the current token if it has kind k, or fails.
func (p *Parser) expect(k lexer.Kind, description string) (lexer.Token, error) {
	if p.current.Kind == lexer.EOF && k != lexer.EOF {
		return lexer.Token{}, p.unexpectedEOF(description)
	}
	if p.current.Kind != k {
		return lexer.Token{}, p.unexpectedToken(description)
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

// parseProgram := (Section | Article)*
func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := ast.NewProgram()
	for p.current.Kind != lexer.EOF {
		switch p.current.Kind {
		case lexer.SECTION:
			sec, err := p.parseSection()
			if err != nil {
				return nil, err
			}
			prog.AddSection(sec)
		case lexer.ARTICLE:
			art, err := p.parseArticle()
			if err != nil {
				return nil, err
			}
			prog.AddArticle(art)
		default:
			return nil, p.unexpectedToken("'section' or 'article'")
		}
	}
	return prog, nil
}

// parseSection := 'section' Ident '{' Paragraph* '}'
func (p *Parser) parseSection() (*ast.SectionDeclaration, error) {
	if _, err := p.expect(lexer.SECTION, "'section'"); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.IDENT, "section name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}

	var paragraphs []*ast.Paragraph
	for p.current.Kind != lexer.RBRACE {
		if p.current.Kind == lexer.EOF {
			return nil, p.unexpectedEOF("'}'")
		}
		para, err := p.parseParagraph()
		if err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, para)
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}

	return &ast.SectionDeclaration{Name: name.Lexeme, Paragraphs: paragraphs}, nil
}

// parseArticle := 'article' Ident? '{' Ident* '}'
func (p *Parser) parseArticle() (*ast.ArticleDeclaration, error) {
	if _, err := p.expect(lexer.ARTICLE, "'article'"); err != nil {
		return nil, err
	}

	name := ""
	if p.current.Kind == lexer.IDENT {
		name = p.current.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}

	var refs []string
	for p.current.Kind == lexer.IDENT {
		refs = append(refs, p.current.Lexeme)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}

	return &ast.ArticleDeclaration{Name: name, SectionRefs: refs}, nil
}

// parseParagraph := 'paragraph' '{' Statement* '}'
func (p *Parser) parseParagraph() (*ast.Paragraph, error) {
	if _, err := p.expect(lexer.PARAGRAPH, "'paragraph'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}

	var stmts []ast.Statement
	for p.current.Kind != lexer.RBRACE {
		if p.current.Kind == lexer.EOF {
			return nil, p.unexpectedEOF("'}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}

	return &ast.Paragraph{Statements: stmts}, nil
}

// parseStatement := Heading | TextBlock | CodeBlock | Aside | List
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current.Kind {
	case lexer.HEADING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		raw, err := p.expect(lexer.RAWTEXT, "raw text")
		if err != nil {
			return nil, err
		}
		return &ast.Heading{Level: headingLevel, Text: raw.Lexeme}, nil

	case lexer.CODE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		raw, err := p.expect(lexer.RAWTEXT, "raw text")
		if err != nil {
			return nil, err
		}
		return &ast.CodeBlock{Text: raw.Lexeme}, nil

	case lexer.ASIDE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		raw, err := p.expect(lexer.RAWTEXT, "raw text")
		if err != nil {
			return nil, err
		}
		return &ast.Aside{Text: raw.Lexeme}, nil

	case lexer.LIST:
		return p.parseList()

	case lexer.RAWTEXT:
		text := p.current.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.TextBlock{Text: text}, nil

	case lexer.EOF:
		return nil, p.unexpectedEOF("a statement")

	default:
		return nil, p.unexpectedToken("a statement")
	}
}

// parseList := 'list' '{' RawText* '}'
func (p *Parser) parseList() (*ast.List, error) {
	if _, err := p.expect(lexer.LIST, "'list'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}

	var items []string
	for p.current.Kind != lexer.RBRACE {
		if p.current.Kind == lexer.EOF {
			return nil, p.unexpectedEOF("'}'")
		}
		raw, err := p.expect(lexer.RAWTEXT, "list item")
		if err != nil {
			return nil, err
		}
		items = append(items, raw.Lexeme)
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}

	return &ast.List{Items: items}, nil
}
