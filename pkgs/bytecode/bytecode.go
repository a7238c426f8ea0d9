// Package bytecode is the portable binding collaborator: a single
// entry point a WASM or browser host calls instead of driving the
// lexer/parser/generator pipeline itself.
package bytecode

import (
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/aledsdavies/blogdown/pkgs/generator"
	"github.com/aledsdavies/blogdown/pkgs/parser"
)

// Result is the compile outcome. On failure Err holds the error message
// and OK is empty; on success Err is empty and OK holds the generated
// HTML, which is itself empty for a program that emits nothing.
type Result struct {
	OK  string `cbor:"ok,omitempty"`
	Err string `cbor:"err,omitempty"`
}

// Compile runs the full lexer→parser→generator pipeline and never
// panics: any core error is downgraded into Result.Err so a host
// across a CBOR boundary never has to catch a trap.
func Compile(source string) Result {
	prog, err := parser.Parse(source)
	if err != nil {
		return Result{Err: err.Error()}
	}

	var b strings.Builder
	if err := generator.Generate(&b, prog); err != nil {
		return Result{Err: err.Error()}
	}

	return Result{OK: b.String()}
}

// Marshal produces a deterministic CBOR encoding of r, suitable for a
// host to decode without a JSON parser on the hot path.
func (r Result) Marshal() ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("bytecode: building CBOR encoder: %w", err)
	}

	type resultAlias Result
	data, err := encMode.Marshal(resultAlias(r))
	if err != nil {
		return nil, fmt.Errorf("bytecode: CBOR encoding failed: %w", err)
	}
	return data, nil
}
