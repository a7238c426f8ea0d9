package lexer

import "unicode/utf8"

// Opt configures a Lexer. No option changes how a token is matched;
// WithMaxTokens can make Next fail early, and WithFilename only
// attaches metadata.
type Opt func(*Lexer)

// WithFilename attaches a filename that Filename returns. The lexer
// itself does not use it.
func WithFilename(name string) Opt {
	return func(l *Lexer) { l.filename = name }
}

// WithMaxTokens bounds how many tokens Next will produce before
// failing closed, guarding against pathological input in a hosted
// environment (e.g. the browser binding of SPEC_FULL.md §4.7).
func WithMaxTokens(max int) Opt {
	return func(l *Lexer) { l.maxTokens = max }
}

// Lexer is a stateful, forward-only token producer. It is restartable
// only by constructing a new Lexer (spec.md §4.3).
type Lexer struct {
	input  []byte
	offset int
	line   int
	column int

	filename  string
	maxTokens int
	emitted   int
}

// New constructs a Lexer over source.
func New(source string, opts ...Opt) *Lexer {
	l := &Lexer{
		input:  []byte(source),
		offset: 0,
		line:   1,
		column: 1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Lexer) pos() Position {
	return Position{Offset: l.offset, Line: l.line, Column: l.column}
}

func (l *Lexer) atEOF() bool { return l.offset >= len(l.input) }

// decodeAt returns the rune and its byte width at byte offset off, or
// (0, 0) if off is at or past end of input.
func (l *Lexer) decodeAt(off int) (rune, int) {
	if off >= len(l.input) {
		return 0, 0
	}
	r, size := utf8.DecodeRune(l.input[off:])
	return r, size
}

// advanceRune consumes exactly one rune, updating byte offset and
// line/column per spec.md §4.3.
func (l *Lexer) advanceRune() {
	r, size := l.decodeAt(l.offset)
	if size == 0 {
		return
	}
	l.offset += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// Next returns the next emitted token, discarding whitespace
// internally, or an error (*UnrecognizedInputError /
// *UnterminatedRawTextError / *TooManyTokensError). At end of input it returns a Token with
// Kind == EOF and a nil error, forever after.
func (l *Lexer) Next() (Token, error) {
	for {
		if l.atEOF() {
			return Token{Kind: EOF, Pos: l.pos()}, nil
		}
		if l.maxTokens > 0 && l.emitted >= l.maxTokens {
			return Token{}, &TooManyTokensError{Position: l.pos(), Max: l.maxTokens}
		}

		r, _ := l.decodeAt(l.offset)
		if r == '`' {
			tok, err := l.lexRawText()
			if err != nil {
				return Token{}, err
			}
			l.emitted++
			return tok, nil
		}

		tok, err := l.lexSpecTable()
		if err != nil {
			return Token{}, err
		}
		if tok.Kind == WHITESPACE {
			continue
		}
		l.emitted++
		return tok, nil
	}
}

// lexSpecTable implements the longest-match-with-priority-tie-break
// loop of spec.md §4.3: grow a candidate one rune at a time, and after
// every append remember the earliest spec entry (in declaration order)
// that matches the candidate at its current length. Growth stops the
// moment no entry matches; the lexeme is whatever the last successful
// length was.
func (l *Lexer) lexSpecTable() (Token, error) {
	start := l.pos()
	startOffset := l.offset

	var lastKind Kind
	var lastLen int
	found := false

	length := 0
	for {
		_, size := l.decodeAt(startOffset + length)
		if size == 0 {
			break
		}
		length += size
		candidate := string(l.input[startOffset : startOffset+length])

		matchedThisLength := false
		for _, spec := range specs() {
			if spec.Matcher.Matches(candidate) {
				lastKind = spec.Kind
				lastLen = length
				found = true
				matchedThisLength = true
				break
			}
		}
		if !matchedThisLength {
			break
		}
	}

	if !found {
		return Token{}, &UnrecognizedInputError{Position: start}
	}

	lexeme := string(l.input[startOffset : startOffset+lastLen])
	for l.offset < startOffset+lastLen {
		l.advanceRune()
	}
	return Token{Kind: lastKind, Lexeme: lexeme, Pos: start}, nil
}

// lexRawText consumes a backtick-delimited block. A backslash
// immediately before a backtick escapes it into the payload; any other
// unescaped backtick terminates the block.
func (l *Lexer) lexRawText() (Token, error) {
	start := l.pos()
	l.advanceRune() // opening backtick

	var payload []rune
	for {
		if l.atEOF() {
			return Token{}, &UnterminatedRawTextError{Position: start}
		}
		r, _ := l.decodeAt(l.offset)
		if r == '\\' {
			if next, _ := l.decodeAt(l.offset + 1); next == '`' {
				payload = append(payload, '`')
				l.advanceRune()
				l.advanceRune()
				continue
			}
		}
		if r == '`' {
			l.advanceRune()
			break
		}
		payload = append(payload, r)
		l.advanceRune()
	}

	return Token{Kind: RAWTEXT, Lexeme: string(payload), Pos: start}, nil
}

// Filename returns the diagnostic filename attached via WithFilename,
// or "" if none was set.
func (l *Lexer) Filename() string { return l.filename }
