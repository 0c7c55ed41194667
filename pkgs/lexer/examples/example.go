// Package examples is a small worked rule set — keywords vs identifiers,
// numbers, strings and block comments (with unterminated-input error
// patterns), skipped whitespace and line comments, and bracket tokens for
// a nesting tracker — used by the package's own example tests and by the
// demo CLI in cmd/lexcore. It is glue, not part of the core (spec §4.12).
package examples

import (
	"fmt"

	"github.com/aledsdavies/lexcore/pkgs/lexer"
	"github.com/aledsdavies/lexcore/pkgs/rule"
)

// Kind is a small typed token-kind enumeration, the "typed" DSL flavor's
// caller-supplied K.
type Kind int

const (
	EOF Kind = iota
	Ident
	Keyword
	Number
	String
	Comment
	LParen
	RParen
	LBrace
	RBrace
	Operator
	Whitespace
)

var names = [...]string{
	EOF:        "EOF",
	Ident:      "IDENT",
	Keyword:    "KEYWORD",
	Number:     "NUMBER",
	String:     "STRING",
	Comment:    "COMMENT",
	LParen:     "LPAREN",
	RParen:     "RPAREN",
	LBrace:     "LBRACE",
	RBrace:     "RBRACE",
	Operator:   "OPERATOR",
	Whitespace: "WHITESPACE",
}

// String implements token.Kind.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(names) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// Names lists every valid kind name, for building the typed DSL's
// "Available kinds" error message.
func Names() []string {
	return append([]string(nil), names[:]...)
}

// Parse resolves a kind name to its Kind value.
func Parse(name string) (Kind, bool) {
	for k, n := range names {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Build constructs the worked example Lexer using compile to turn pattern
// sources into matchers (pass stdregexp.Compile or coregex.Compile).
func Build(compile lexer.CompileFunc) (*lexer.Lexer[Kind], error) {
	b := lexer.NewTypedBuilder(compile, Parse, Names(), EOF)

	rules := []struct {
		name    string
		pattern string
		opts    []lexer.RuleOption
	}{
		{"KEYWORD", `if|else|while|return`, []lexer.RuleOption{lexer.Priority(10)}},
		{"IDENT", `[a-zA-Z_][a-zA-Z0-9_]*`, []lexer.RuleOption{lexer.Priority(1)}},
		{"NUMBER", `[0-9]+(\.[0-9]+)?`, nil},
		{"STRING", `"[^"\n]*"`, []lexer.RuleOption{lexer.Priority(5)}},
		{"STRING", `"[^"\n]*`, []lexer.RuleOption{lexer.Priority(4), lexer.ErrorHandler(rule.UnterminatedString)}},
		{"COMMENT", `//[^\n]*`, []lexer.RuleOption{lexer.Skip()}},
		{"COMMENT", `/\*([^*]|\*+[^*/])*\*+/`, []lexer.RuleOption{lexer.Skip(), lexer.Priority(2)}},
		{"COMMENT", `/\*([^*]|\*+[^*/])*\*?`, []lexer.RuleOption{lexer.Priority(1), lexer.ErrorHandler(rule.UnterminatedComment)}},
		{"WHITESPACE", `[ \t\r\n]+`, []lexer.RuleOption{lexer.Skip()}},
		{"LPAREN", `\(`, nil},
		{"RPAREN", `\)`, nil},
		{"LBRACE", `\{`, nil},
		{"RBRACE", `\}`, nil},
		{"OPERATOR", `==|!=|<=|>=|&&|\|\||[=+\-*/<>!]`, nil},
	}

	for _, r := range rules {
		if err := b.Token(r.name, r.pattern, r.opts...); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}
