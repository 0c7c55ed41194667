// Package token defines the immutable Token record the scanner produces.
package token

import (
	"fmt"

	"github.com/aledsdavies/lexcore/pkgs/sourcemap"
	"github.com/aledsdavies/lexcore/pkgs/span"
)

// unknownLexeme is returned by Lexeme when the originating source is
// unavailable and no cached value was stored either.
const unknownLexeme = "<unknown>"

// Kind is the constraint every token-kind type must satisfy: equality (so
// tokens and rules can compare kinds) and a string name (for diagnostics
// and display). Typed lexers supply their own enum satisfying this;
// dynamic lexers supply DynamicKind (see the lexer package).
type Kind interface {
	comparable
	fmt.Stringer
}

// Token is an immutable record of one lexeme: its kind, its byte span, and
// an optional cached value used when the source map can't be consulted.
// Equality compares Kind and Span only — Value is a fallback, not part of
// a token's identity, per spec.
type Token[K Kind] struct {
	Kind  K
	Span  span.Span
	Value string // cached lexeme; used only when source lookup fails
}

// New constructs a token, optionally caching its lexeme up front.
func New[K Kind](kind K, sp span.Span, cachedValue string) Token[K] {
	return Token[K]{Kind: kind, Span: sp, Value: cachedValue}
}

// Equal reports whether two tokens have the same kind and span, ignoring
// any cached Value.
func (t Token[K]) Equal(other Token[K]) bool {
	return t.Kind == other.Kind && t.Span == other.Span
}

// Lexeme resolves the token's source text: contents[start:end] from the
// source map if the file is present, else the cached Value, else the
// literal string "<unknown>".
func (t Token[K]) Lexeme(sm sourcemap.SourceMap) string {
	if sm != nil {
		if f, ok := sm.Get(t.Span.SourceID); ok {
			if t.Span.Start >= 0 && t.Span.End <= len(f.Contents) && t.Span.Start <= t.Span.End {
				return string(f.Contents[t.Span.Start:t.Span.End])
			}
		}
	}
	if t.Value != "" {
		return t.Value
	}
	return unknownLexeme
}

// String renders "<kind>(<value>)@<span>" for debug output and test
// failure messages.
func (t Token[K]) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Span)
}
