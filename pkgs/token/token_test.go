package token

import (
	"testing"

	"github.com/aledsdavies/lexcore/pkgs/sourcemap"
	"github.com/aledsdavies/lexcore/pkgs/span"
)

type kind string

func (k kind) String() string { return string(k) }

func TestTokenEqualIgnoresValue(t *testing.T) {
	a := New[kind]("IDENT", span.New(1, 0, 3), "foo")
	b := New[kind]("IDENT", span.New(1, 0, 3), "bar")
	if !a.Equal(b) {
		t.Error("Equal() = false for tokens differing only in Value, want true")
	}

	c := New[kind]("IDENT", span.New(1, 0, 4), "foo")
	if a.Equal(c) {
		t.Error("Equal() = true for tokens with different spans, want false")
	}
}

func TestTokenLexemeFromSourceMap(t *testing.T) {
	sm := sourcemap.New()
	id := sm.Add("f.txt", []byte("hello world"))

	tok := New[kind]("IDENT", span.New(id, 0, 5), "")
	if got, want := tok.Lexeme(sm), "hello"; got != want {
		t.Errorf("Lexeme() = %q, want %q", got, want)
	}
}

func TestTokenLexemeFallsBackToCachedValue(t *testing.T) {
	tok := New[kind]("IDENT", span.New(99, 0, 5), "cached")
	if got, want := tok.Lexeme(nil), "cached"; got != want {
		t.Errorf("Lexeme(nil) = %q, want %q", got, want)
	}
}

func TestTokenLexemeUnknownWhenNoSourceOrCache(t *testing.T) {
	tok := New[kind]("IDENT", span.New(99, 0, 5), "")
	if got, want := tok.Lexeme(nil), "<unknown>"; got != want {
		t.Errorf("Lexeme(nil) = %q, want %q", got, want)
	}
}
