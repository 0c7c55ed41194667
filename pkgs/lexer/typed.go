package lexer

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/lexcore/pkgs/rule"
	"github.com/aledsdavies/lexcore/pkgs/token"
)

// ParseFunc resolves a token-kind name to its caller-defined value. It
// returns ok=false for a name that isn't part of the kind enumeration.
type ParseFunc[K token.Kind] func(name string) (K, bool)

// TypedBuilder constructs a Lexer[K] from rules named against a
// caller-supplied enumeration of token kinds (spec §4.6, "typed" flavor).
type TypedBuilder[K token.Kind] struct {
	ruleSet *rule.RuleSet[K]
	compile CompileFunc
	parse   ParseFunc[K]
	names   []string // the full set of valid kind names, for error messages
	eof     K
}

// NewTypedBuilder starts a typed builder. names lists every valid token
// kind name (used only to build the "Available kinds" error message);
// parse resolves a name to its K value; eof is the kind value to emit for
// the end-of-file sentinel.
func NewTypedBuilder[K token.Kind](compile CompileFunc, parse ParseFunc[K], names []string, eof K) *TypedBuilder[K] {
	return &TypedBuilder[K]{
		ruleSet: rule.NewRuleSet[K](),
		compile: compile,
		parse:   parse,
		names:   names,
		eof:     eof,
	}
}

// Token resolves name to a kind and adds a rule matching pattern for it.
// An unresolvable name fails with the exact message spec §4.6 specifies.
func (b *TypedBuilder[K]) Token(name, pattern string, opts ...RuleOption) error {
	kind, ok := b.parse(name)
	if !ok {
		return fmt.Errorf("Unknown token kind: %s. Available kinds: %s", name, strings.Join(b.names, ", "))
	}

	matcher, err := b.compile(pattern)
	if err != nil {
		return fmt.Errorf("lexer: compiling pattern for %s: %w", name, err)
	}

	cfg := applyOptions(opts)
	b.ruleSet.AddRule(rule.Rule[K]{
		Kind:         kind,
		Pattern:      matcher,
		PatternSrc:   pattern,
		Skip:         cfg.skip,
		Priority:     cfg.priority,
		ErrorHandler: cfg.errorHandler,
	})
	return nil
}

// Error registers handler under id so that a subsequent Token(...,
// ErrorHandler(id)) rule can reference it. id is free-form — it need not
// be one of the kind names from Parse, since an error-pattern match never
// produces a token of any kind.
func (b *TypedBuilder[K]) Error(id rule.HandlerID, handler rule.Handler) *TypedBuilder[K] {
	b.ruleSet.RegisterErrorHandler(id, handler)
	return b
}

// Build finalizes the RuleSet and returns the immutable Lexer.
func (b *TypedBuilder[K]) Build() *Lexer[K] {
	return &Lexer[K]{ruleSet: b.ruleSet, eof: b.eof}
}
