// Package coregex adapts github.com/coregx/coregex/meta — a multi-strategy
// (NFA/DFA/Aho-Corasick) regex engine — to the regexmatch.Matcher contract.
//
// This is the concrete "external regex primitive" spec §6 describes: an
// engine that exposes "match at exact position p" and the matched length,
// without the core ever parsing pattern syntax itself. Unlike stdregexp,
// the pattern source is left unanchored and the match is verified to begin
// at offset 0 of the slice handed to Find — the conservative case spec
// §4.1 calls out ("implementations that use a non-anchored regex must
// verify that the match's begin offset equals pos and otherwise return
// None").
package coregex

import (
	"github.com/coregx/coregex/meta"

	"github.com/aledsdavies/lexcore/pkgs/regexmatch"
)

// Matcher wraps one compiled meta.Engine.
type Matcher struct {
	engine *meta.Engine
}

// Compile compiles pattern into a Matcher. Leftmost-longest (POSIX)
// semantics are enabled so that a rule's own internal alternations resolve
// the same way the rule set resolves longest-match across rules. The
// result is returned as a regexmatch.Matcher so Compile can be passed
// directly as a lexer.CompileFunc.
func Compile(pattern string) (regexmatch.Matcher, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}
	engine.SetLongest(true)
	return &Matcher{engine: engine}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m.(*Matcher)
}

// MatchAt implements regexmatch.Matcher. The engine documents an internal
// sync.Pool of per-call search state specifically so Find is safe to call
// concurrently on a shared Engine; this adapter adds no locking of its own.
func (m *Matcher) MatchAt(text []byte, pos int) (int, bool) {
	if pos < 0 || pos >= len(text) {
		return 0, false
	}
	match := m.engine.Find(text[pos:])
	if match == nil || match.Start != 0 {
		return 0, false
	}
	return match.End, true
}
