// Package stdregexp adapts the standard library's RE2 engine to the
// regexmatch.Matcher contract.
//
// Go's regexp has no native "match starting exactly at offset p" operation,
// so the pattern source is compiled once with a literal \A prefix and
// matched against text[pos:]; an \A-anchored RE2 match always begins at
// offset 0 of the slice it's given, so no post-hoc offset check is needed
// here (unlike an engine whose anchoring can't be expressed in the pattern
// itself — see the coregex adapter). This is the same technique
// _examples/other_examples' alecthomas-participle regex lexer uses
// (prefixing every rule with "^(?:...)"), adapted to \A so multi-line
// input doesn't let ^ match after an embedded newline.
package stdregexp

import (
	"regexp"

	"github.com/aledsdavies/lexcore/pkgs/regexmatch"
)

// Matcher wraps a single compiled, \A-anchored regexp.
type Matcher struct {
	re *regexp.Regexp
}

// Compile compiles pattern (a plain, unanchored regex source, e.g.
// `[a-zA-Z_][a-zA-Z0-9_]*`) into a Matcher. The result is returned as a
// regexmatch.Matcher so Compile can be passed directly as a
// lexer.CompileFunc.
func Compile(pattern string) (regexmatch.Matcher, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	return &Matcher{re: re}, nil
}

// MustCompile is like Compile but panics on error, for use in package-level
// rule-table initializers.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m.(*Matcher)
}

// MatchAt implements regexmatch.Matcher. regexp.Regexp is documented safe
// for concurrent use by multiple goroutines, so this adapter needs no
// internal locking.
func (m *Matcher) MatchAt(text []byte, pos int) (int, bool) {
	if pos < 0 || pos >= len(text) {
		return 0, false
	}
	loc := m.re.FindIndex(text[pos:])
	if loc == nil {
		return 0, false
	}
	// \A guarantees loc[0] == 0; the match length is loc[1].
	return loc[1], true
}
