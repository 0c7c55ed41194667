package lexer

import (
	"fmt"

	"github.com/aledsdavies/lexcore/pkgs/rule"
)

// eofName is the symbolic name synthesized for the EOF kind when a dynamic
// builder's caller never declares one of their own (spec §4.6).
const eofName = "EOF"

// DynamicKind is a token kind minted from a symbolic name at build time,
// for lexers built without a caller-provided enumeration (spec §3's
// DynamicTokenKind). ID is assigned in first-seen order; Name is carried
// alongside it (rather than in a separate side table) so DynamicKind stays
// comparable — the field pair (ID, Name) is what token equality compares,
// and since a given ID is only ever minted with one Name, that's
// equivalent to comparing ID alone.
type DynamicKind struct {
	ID   int
	Name string
}

// String implements token.Kind, returning the symbolic name (kind_name in
// spec terms).
func (k DynamicKind) String() string { return k.Name }

// DynamicBuilder constructs a Lexer[DynamicKind] from rules named by plain
// strings, interning each first-seen name into a fresh DynamicKind (spec
// §4.6, "dynamic" flavor).
type DynamicBuilder struct {
	ruleSet *rule.RuleSet[DynamicKind]
	compile CompileFunc
	byName  map[string]DynamicKind
	eof     *DynamicKind
}

// NewDynamicBuilder starts a dynamic builder using compile to turn rule
// pattern sources into matchers.
func NewDynamicBuilder(compile CompileFunc) *DynamicBuilder {
	return &DynamicBuilder{
		ruleSet: rule.NewRuleSet[DynamicKind](),
		compile: compile,
		byName:  make(map[string]DynamicKind),
	}
}

// intern returns the DynamicKind for name, minting a fresh id in
// first-seen order the first time name is used.
func (b *DynamicBuilder) intern(name string) DynamicKind {
	if k, ok := b.byName[name]; ok {
		return k
	}
	k := DynamicKind{ID: len(b.byName), Name: name}
	b.byName[name] = k
	return k
}

// Token interns name as a token kind and adds a rule matching pattern for
// it, returning the minted (or reused) kind.
func (b *DynamicBuilder) Token(name, pattern string, opts ...RuleOption) (DynamicKind, error) {
	kind := b.intern(name)

	matcher, err := b.compile(pattern)
	if err != nil {
		return DynamicKind{}, fmt.Errorf("lexer: compiling pattern for %s: %w", name, err)
	}

	cfg := applyOptions(opts)
	b.ruleSet.AddRule(rule.Rule[DynamicKind]{
		Kind:         kind,
		Pattern:      matcher,
		PatternSrc:   pattern,
		Skip:         cfg.skip,
		Priority:     cfg.priority,
		ErrorHandler: cfg.errorHandler,
	})
	return kind, nil
}

// EOF interns name as the kind emitted for the end-of-file sentinel. If
// never called, Build synthesizes one named "EOF".
func (b *DynamicBuilder) EOF(name string) DynamicKind {
	k := b.intern(name)
	b.eof = &k
	return k
}

// Error registers handler under id for later reference by
// Token(..., ErrorHandler(id)).
func (b *DynamicBuilder) Error(id rule.HandlerID, handler rule.Handler) *DynamicBuilder {
	b.ruleSet.RegisterErrorHandler(id, handler)
	return b
}

// Build finalizes the RuleSet, synthesizing an EOF kind if the caller
// never declared one, and returns the immutable Lexer.
func (b *DynamicBuilder) Build() *Lexer[DynamicKind] {
	eof := b.eof
	if eof == nil {
		k := b.intern(eofName)
		eof = &k
	}
	return &Lexer[DynamicKind]{ruleSet: b.ruleSet, eof: *eof}
}
