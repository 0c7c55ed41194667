// Package regexmatch defines the "match at exact position" primitive the
// scanner consumes from an external regex engine (spec §1, §4.1, §6). The
// core never parses pattern syntax itself; it only calls MatchAt.
//
// Two concrete adapters live in the stdregexp and coregex subpackages.
// Neither is imported by pkgs/scanner or pkgs/rule — callers wire whichever
// one they want when building rules, keeping the core agnostic of the
// concrete engine.
package regexmatch

// Matcher answers "does this pattern match a prefix starting exactly at
// byte offset pos in text?". Implementations backed by a non-anchored
// regex engine must verify the match begins at pos and return (0, false)
// otherwise — the engine is never trusted to do this on its own.
//
// pos >= len(text) must return (0, false). A successful match returns the
// matched byte length. A zero-length match is never selected: pkgs/scanner
// treats it as no match at scan time (pkgs/rule does not check for it when
// a rule is added).
type Matcher interface {
	MatchAt(text []byte, pos int) (length int, ok bool)
}

// Func adapts a plain function to the Matcher interface, mirroring the
// stdlib's http.HandlerFunc idiom for simple, stateless matchers (useful
// in tests and for single-literal rules that don't need a compiled regex).
type Func func(text []byte, pos int) (int, bool)

// MatchAt implements Matcher.
func (f Func) MatchAt(text []byte, pos int) (int, bool) { return f(text, pos) }
