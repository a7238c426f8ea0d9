package main

import (
	"github.com/aledsdavies/blogdown/pkgs/lexer"
	"github.com/aledsdavies/blogdown/pkgs/parser"
)

// cliError attaches an exit code to an underlying error so main can
// report it without re-deriving the error kind.
type cliError struct {
	kind int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	if ce, ok := err.(*cliError); ok {
		return ce.kind
	}
	return ExitInvalidArguments
}

// exitCodeForParseError distinguishes a lexer-originated error from a
// true parser error, since both surface from parser.Parse.
func exitCodeForParseError(err error) int {
	switch err.(type) {
	case *lexer.UnrecognizedInputError, *lexer.UnterminatedRawTextError, *lexer.TooManyTokensError:
		return ExitLexError
	case *parser.UnexpectedTokenError, *parser.UnexpectedEofError:
		return ExitParseError
	default:
		return ExitParseError
	}
}
