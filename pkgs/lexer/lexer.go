// Package lexer is the DSL/builder layer: it constructs an immutable Lexer
// (wrapping a rule.RuleSet) from a declarative description, in the two
// flavors spec §4.6 describes — typed (caller-provided kind enumeration)
// and dynamic (kinds minted from symbolic names at build time).
package lexer

import (
	"github.com/aledsdavies/lexcore/pkgs/diagnostic"
	"github.com/aledsdavies/lexcore/pkgs/regexmatch"
	"github.com/aledsdavies/lexcore/pkgs/rule"
	"github.com/aledsdavies/lexcore/pkgs/scanner"
	"github.com/aledsdavies/lexcore/pkgs/span"
	"github.com/aledsdavies/lexcore/pkgs/token"
)

// CompileFunc compiles a rule's pattern source into a Matcher. Builders
// take one of these rather than a concrete engine so the DSL stays
// agnostic of which regex engine backs it — pass
// pkgs/regexmatch/stdregexp.Compile or pkgs/regexmatch/coregex.Compile, or
// a hand-rolled one.
type CompileFunc func(pattern string) (regexmatch.Matcher, error)

// Lexer is an immutable wrapper around a built RuleSet and the kind value
// to emit for the end-of-file sentinel. Once built it is never mutated;
// Scan may be called concurrently provided the underlying Matcher
// implementation is thread-safe (spec §5).
type Lexer[K token.Kind] struct {
	ruleSet *rule.RuleSet[K]
	eof     K
}

// Scan runs the scanner's full single pass over text, identified by
// sourceID, returning every token (terminated by the EOF sentinel) and
// every diagnostic accumulated along the way.
func (l *Lexer[K]) Scan(sourceID span.SourceID, text []byte) ([]token.Token[K], []diagnostic.Diagnostic) {
	return scanner.Scan(l.ruleSet, sourceID, text, l.eof)
}

// RuleSet exposes the built rule set, mainly so callers can inspect
// registered handlers or rule order in tests and tooling.
func (l *Lexer[K]) RuleSet() *rule.RuleSet[K] {
	return l.ruleSet
}

// ruleConfig accumulates the optional modifiers a Token(...) call applies;
// see Skip, Priority, and ErrorHandler below.
type ruleConfig struct {
	skip         bool
	priority     int
	errorHandler *rule.HandlerID
}

// RuleOption modifies a rule being added through the DSL.
type RuleOption func(*ruleConfig)

// Skip marks the rule's matches as consumed-but-not-emitted (whitespace,
// comments).
func Skip() RuleOption {
	return func(c *ruleConfig) { c.skip = true }
}

// Priority sets the rule's tie-break priority (higher wins on equal-length
// matches). The default is 0.
func Priority(p int) RuleOption {
	return func(c *ruleConfig) { c.priority = p }
}

// ErrorHandler marks the rule as an error-pattern rule: a match emits the
// named handler's diagnostic instead of a token. id must have been
// registered (directly on the RuleSet, or via a builder's Error method)
// before the first scan; an unregistered id is tolerated at scan time per
// spec §7.3, not rejected here.
func ErrorHandler(id rule.HandlerID) RuleOption {
	return func(c *ruleConfig) { c.errorHandler = &id }
}

func applyOptions(opts []RuleOption) ruleConfig {
	var c ruleConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
