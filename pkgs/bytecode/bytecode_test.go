package bytecode

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestCompileOK(t *testing.T) {
	r := Compile("section s { paragraph { `hello world` } } article a { s }")
	if r.Err != "" {
		t.Fatalf("expected no error, got %q", r.Err)
	}
	want := "<br/><p>hello world</p>"
	if r.OK != want {
		t.Fatalf("got %q, want %q", r.OK, want)
	}
}

func TestCompileNeverPanicsOnUnknownSection(t *testing.T) {
	r := Compile("article a { missing }")
	if r.Err == "" {
		t.Fatal("expected an error result")
	}
	if r.OK != "" {
		t.Fatalf("expected empty OK, got %q", r.OK)
	}
}

func TestCompileNeverPanicsOnUnterminatedRawText(t *testing.T) {
	r := Compile("section s { paragraph { `oops } }")
	if r.Err == "" {
		t.Fatal("expected an error result")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	r := Compile("section s { } article a { s }")
	data, err := r.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded Result
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("cbor.Unmarshal: %v", err)
	}
	if decoded.OK != r.OK || decoded.Err != r.Err {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, r)
	}
}
