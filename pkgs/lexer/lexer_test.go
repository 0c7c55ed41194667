package lexer

import (
	"strings"
	"testing"

	"github.com/aledsdavies/lexcore/pkgs/regexmatch/stdregexp"
	"github.com/aledsdavies/lexcore/pkgs/rule"
)

type testKind int

const (
	testIdent testKind = iota
	testNumber
	testEOF
)

func (k testKind) String() string {
	switch k {
	case testIdent:
		return "IDENT"
	case testNumber:
		return "NUMBER"
	case testEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

func testParse(name string) (testKind, bool) {
	switch name {
	case "IDENT":
		return testIdent, true
	case "NUMBER":
		return testNumber, true
	case "EOF":
		return testEOF, true
	default:
		return 0, false
	}
}

func TestTypedBuilderRoundTrip(t *testing.T) {
	b := NewTypedBuilder[testKind](stdregexp.Compile, testParse, []string{"IDENT", "NUMBER", "EOF"}, testEOF)
	if err := b.Token("NUMBER", `[0-9]+`); err != nil {
		t.Fatalf("Token(NUMBER) = %v", err)
	}
	if err := b.Token("IDENT", `[a-zA-Z]+`); err != nil {
		t.Fatalf("Token(IDENT) = %v", err)
	}

	lx := b.Build()
	tokens, diags := lx.Scan(1, []byte("foo42"))
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	if len(tokens) != 3 {
		t.Fatalf("tokens = %v, want 3 (IDENT, NUMBER, EOF)", tokens)
	}
	if tokens[0].Kind != testIdent || tokens[1].Kind != testNumber || tokens[2].Kind != testEOF {
		t.Errorf("kinds = [%s, %s, %s], want [IDENT, NUMBER, EOF]", tokens[0].Kind, tokens[1].Kind, tokens[2].Kind)
	}
}

func TestTypedBuilderUnknownKindName(t *testing.T) {
	b := NewTypedBuilder[testKind](stdregexp.Compile, testParse, []string{"IDENT", "NUMBER", "EOF"}, testEOF)
	err := b.Token("KEYWORD", `if`)
	if err == nil {
		t.Fatal("Token(unknown name) = nil error, want error")
	}
	want := "Unknown token kind: KEYWORD. Available kinds: IDENT, NUMBER, EOF"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestTypedBuilderInvalidPatternWrapsCompileError(t *testing.T) {
	b := NewTypedBuilder[testKind](stdregexp.Compile, testParse, []string{"IDENT"}, testEOF)
	err := b.Token("IDENT", `[`)
	if err == nil {
		t.Fatal("Token(invalid pattern) = nil error, want error")
	}
	if !strings.Contains(err.Error(), "compiling pattern for IDENT") {
		t.Errorf("error = %q, want it to mention the failing kind", err.Error())
	}
}

func TestDynamicBuilderInternsInFirstSeenOrder(t *testing.T) {
	b := NewDynamicBuilder(stdregexp.Compile)

	ident, err := b.Token("IDENT", `[a-zA-Z]+`)
	if err != nil {
		t.Fatalf("Token(IDENT) = %v", err)
	}
	number, err := b.Token("NUMBER", `[0-9]+`)
	if err != nil {
		t.Fatalf("Token(NUMBER) = %v", err)
	}
	identAgain, err := b.Token("IDENT", `[a-zA-Z]+`)
	if err != nil {
		t.Fatalf("Token(IDENT again) = %v", err)
	}

	if ident.ID != 0 || number.ID != 1 {
		t.Errorf("ids = (%d, %d), want (0, 1) in first-seen order", ident.ID, number.ID)
	}
	if identAgain != ident {
		t.Errorf("re-declaring IDENT minted a new kind: %+v != %+v", identAgain, ident)
	}
}

func TestDynamicBuilderSynthesizesEOF(t *testing.T) {
	b := NewDynamicBuilder(stdregexp.Compile)
	if _, err := b.Token("WORD", `[a-z]+`); err != nil {
		t.Fatalf("Token(WORD) = %v", err)
	}

	lx := b.Build()
	tokens, _ := lx.Scan(1, []byte("hi"))
	last := tokens[len(tokens)-1]
	if last.Kind.Name != "EOF" {
		t.Errorf("synthesized EOF kind name = %q, want EOF", last.Kind.Name)
	}
}

func TestDynamicBuilderExplicitEOF(t *testing.T) {
	b := NewDynamicBuilder(stdregexp.Compile)
	eof := b.EOF("END")
	if _, err := b.Token("WORD", `[a-z]+`); err != nil {
		t.Fatalf("Token(WORD) = %v", err)
	}

	lx := b.Build()
	tokens, _ := lx.Scan(1, []byte("hi"))
	last := tokens[len(tokens)-1]
	if last.Kind != eof {
		t.Errorf("last token kind = %+v, want explicit EOF %+v", last.Kind, eof)
	}
}

func TestDynamicBuilderErrorHandlerWiring(t *testing.T) {
	b := NewDynamicBuilder(stdregexp.Compile)
	b.Error("bad_word", rule.Handler{Message: "bad word", Help: "don't do that"})
	if _, err := b.Token("BAD", `xxx`, ErrorHandler("bad_word")); err != nil {
		t.Fatalf("Token(BAD) = %v", err)
	}

	lx := b.Build()
	tokens, diags := lx.Scan(1, []byte("xxx"))
	if len(tokens) != 1 || tokens[0].Kind.Name != "EOF" {
		t.Fatalf("tokens = %v, want only EOF", tokens)
	}
	if len(diags) != 1 || diags[0].Message != "bad word" {
		t.Fatalf("diagnostics = %v, want [bad word]", diags)
	}
}
