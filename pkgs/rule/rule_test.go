package rule

import (
	"testing"

	"github.com/aledsdavies/lexcore/pkgs/regexmatch"
)

type kind string

func (k kind) String() string { return string(k) }

func literalMatcher(lit string) regexmatch.Matcher {
	return regexmatch.Func(func(text []byte, pos int) (int, bool) {
		if pos+len(lit) > len(text) {
			return 0, false
		}
		if string(text[pos:pos+len(lit)]) == lit {
			return len(lit), true
		}
		return 0, false
	})
}

func TestNewRuleSetPreregistersDefaults(t *testing.T) {
	rs := NewRuleSet[kind]()

	for id, want := range defaultHandlers {
		got, ok := rs.Handler(id)
		if !ok {
			t.Fatalf("Handler(%s) not registered", id)
		}
		if got != want {
			t.Errorf("Handler(%s) = %+v, want %+v", id, got, want)
		}
	}
}

func TestAddRuleSortOrder(t *testing.T) {
	rs := NewRuleSet[kind]()
	rs.AddRule(Rule[kind]{Kind: "LOW", Pattern: literalMatcher("a"), PatternSrc: "a", Priority: 1})
	rs.AddRule(Rule[kind]{Kind: "HIGH", Pattern: literalMatcher("aa"), PatternSrc: "aa", Priority: 10})
	rs.AddRule(Rule[kind]{Kind: "SHORT_EQ", Pattern: literalMatcher("b"), PatternSrc: "b", Priority: 1})
	rs.AddRule(Rule[kind]{Kind: "LONG_EQ", Pattern: literalMatcher("bbb"), PatternSrc: "bbb", Priority: 1})

	got := make([]kind, len(rs.Rules()))
	for i, r := range rs.Rules() {
		got[i] = r.Kind
	}
	want := []kind{"HIGH", "LOW", "SHORT_EQ", "LONG_EQ"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rule order = %v, want %v", got, want)
		}
	}
}

func TestRegisterErrorHandlerOverwrites(t *testing.T) {
	rs := NewRuleSet[kind]()
	rs.RegisterErrorHandlerMessage(UnterminatedString, "custom message", "custom help")

	got, ok := rs.Handler(UnterminatedString)
	if !ok {
		t.Fatal("Handler(UnterminatedString) not found after overwrite")
	}
	if got.Message != "custom message" || got.Help != "custom help" {
		t.Errorf("Handler(UnterminatedString) = %+v, want overwritten values", got)
	}
}

func TestHandlerUnknownID(t *testing.T) {
	rs := NewRuleSet[kind]()
	if _, ok := rs.Handler("does_not_exist"); ok {
		t.Fatal("Handler(unknown) = found, want not found")
	}
}

func TestAddRuleNilPatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil Pattern")
		}
	}()
	NewRuleSet[kind]().AddRule(Rule[kind]{Kind: "X"})
}
