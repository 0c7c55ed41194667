// Package tokenstream implements the cursor a parser consumes the scanner's
// output through: peek(n), advance, LIFO pushback, and the expect/try/
// consume-while conveniences (spec §3, §4.7).
package tokenstream

import (
	"fmt"

	"github.com/aledsdavies/lexcore/pkgs/token"
)

// TokenStream is a single-owner cursor over a fixed token vector. It is
// mutated in place during consumption and discarded afterward (spec §3
// lifecycle).
type TokenStream[K token.Kind] struct {
	tokens     []token.Token[K]
	position   int
	pushedBack []token.Token[K] // LIFO stack; last-pushed has peek offset 0
}

// New wraps tokens (typically the scanner's output, EOF sentinel included)
// in a fresh cursor positioned at the start.
func New[K token.Kind](tokens []token.Token[K]) *TokenStream[K] {
	return &TokenStream[K]{tokens: tokens}
}

// Position reports the underlying index into the original token vector,
// ignoring any pushed-back tokens (spec §4.7).
func (s *TokenStream[K]) Position() int {
	return s.position
}

// Remaining reports how many tokens are left to consume: pushed-back
// tokens plus whatever the underlying vector hasn't yielded yet.
func (s *TokenStream[K]) Remaining() int {
	return len(s.pushedBack) + len(s.tokens) - s.position
}

// Eof reports whether the stream has nothing left: no pushed-back tokens
// and the underlying position has reached the end of the vector.
func (s *TokenStream[K]) Eof() bool {
	return len(s.pushedBack) == 0 && s.position >= len(s.tokens)
}

// current returns the token that would be returned by Peek(0), and
// whether one exists.
func (s *TokenStream[K]) current() (token.Token[K], bool) {
	if n := len(s.pushedBack); n > 0 {
		return s.pushedBack[n-1], true
	}
	if s.position < len(s.tokens) {
		return s.tokens[s.position], true
	}
	return token.Token[K]{}, false
}

// Peek returns the current token without consuming it. It panics with
// "Unexpected end of token stream" if the stream is already exhausted —
// a programmer error per spec §7, not a recoverable condition.
func (s *TokenStream[K]) Peek() token.Token[K] {
	t, ok := s.current()
	if !ok {
		panic("Unexpected end of token stream")
	}
	return t
}

// PeekN returns the token n positions ahead of the current one (PeekN(0)
// is equivalent to Peek), accounting for pushed-back tokens first, and
// reports false if that position is past the end of the stream.
func (s *TokenStream[K]) PeekN(n int) (token.Token[K], bool) {
	if n < 0 {
		return token.Token[K]{}, false
	}
	if back := len(s.pushedBack); n < back {
		return s.pushedBack[back-1-n], true
	}
	idx := s.position + (n - len(s.pushedBack))
	if idx < 0 || idx >= len(s.tokens) {
		return token.Token[K]{}, false
	}
	return s.tokens[idx], true
}

// Advance consumes and returns the current token, popping pushedBack first
// and otherwise incrementing position (spec §4.7). It panics with
// "Unexpected end of token stream" if nothing remains.
func (s *TokenStream[K]) Advance() token.Token[K] {
	if n := len(s.pushedBack); n > 0 {
		t := s.pushedBack[n-1]
		s.pushedBack = s.pushedBack[:n-1]
		return t
	}
	if s.position >= len(s.tokens) {
		panic("Unexpected end of token stream")
	}
	t := s.tokens[s.position]
	s.position++
	return t
}

// Push returns t to the head of the stream, LIFO: the next Advance yields
// the most recently pushed token first.
func (s *TokenStream[K]) Push(t token.Token[K]) {
	s.pushedBack = append(s.pushedBack, t)
}

// Expect advances past the current token if its kind matches want,
// otherwise panics with "Expected <kind> but found <actual|EOF>".
func (s *TokenStream[K]) Expect(want K) token.Token[K] {
	t, ok := s.current()
	if !ok {
		panic(fmt.Sprintf("Expected %s but found EOF", want))
	}
	if t.Kind != want {
		panic(fmt.Sprintf("Expected %s but found %s", want, t.Kind))
	}
	return s.Advance()
}

// TryMatch consumes and returns the current token if its kind equals
// want; otherwise it leaves the stream untouched and returns false.
func (s *TokenStream[K]) TryMatch(want K) (token.Token[K], bool) {
	t, ok := s.current()
	if !ok || t.Kind != want {
		return token.Token[K]{}, false
	}
	return s.Advance(), true
}

// ConsumeWhile repeatedly advances while pred holds for the current token
// and the stream isn't exhausted, returning every token consumed this way.
func (s *TokenStream[K]) ConsumeWhile(pred func(token.Token[K]) bool) []token.Token[K] {
	var out []token.Token[K]
	for {
		t, ok := s.current()
		if !ok || !pred(t) {
			break
		}
		out = append(out, s.Advance())
	}
	return out
}
