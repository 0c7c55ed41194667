// Package rule holds the declarative rule model: a pattern, a priority, a
// skip flag, and an optional error-handler reference, plus the RuleSet that
// orders rules and owns the error-handler registry (spec §3, §4.1, §4.2).
package rule

import (
	"sort"

	"github.com/aledsdavies/lexcore/pkgs/regexmatch"
	"github.com/aledsdavies/lexcore/pkgs/token"
)

// HandlerID names an error handler in a RuleSet's registry.
type HandlerID string

// Built-in handler ids that must be preregistered on every RuleSet (§4.2).
const (
	UnterminatedString  HandlerID = "unterminated_string"
	UnterminatedComment HandlerID = "unterminated_comment"
	InvalidEscape       HandlerID = "invalid_escape"
	InvalidNumber       HandlerID = "invalid_number"
	InvalidCharacter    HandlerID = "invalid_character"
)

// Handler is a named, immutable error record: a message and optional help.
// The scanner needs only this — no closures, so a RuleSet stays a plain
// value safely shared across concurrent scans (spec §9: "error handlers as
// named records, not closures").
type Handler struct {
	Message string
	Help    string
}

// Rule is a single declarative matcher: a pattern (consumed through the
// Matcher interface, never parsed by the core itself), its token kind,
// whether it's a skip rule, its priority, and an optional error-handler
// reference.
type Rule[K token.Kind] struct {
	Kind         K
	Pattern      regexmatch.Matcher
	PatternSrc   string // the pattern's source text; only used to break priority ties
	Skip         bool
	Priority     int
	ErrorHandler *HandlerID
}

// RuleSet owns an ordered list of rules and a registry of named error
// handlers. It is built once per lexer and never mutated after the first
// scan (spec §3 lifecycle).
type RuleSet[K token.Kind] struct {
	rules    []Rule[K]
	handlers map[HandlerID]Handler
}

// NewRuleSet returns an empty RuleSet with the five default error handlers
// preregistered, per spec §3/§4.2.
func NewRuleSet[K token.Kind]() *RuleSet[K] {
	rs := &RuleSet[K]{handlers: make(map[HandlerID]Handler)}
	for id, h := range defaultHandlers {
		rs.handlers[id] = h
	}
	return rs
}

var defaultHandlers = map[HandlerID]Handler{
	UnterminatedString: {
		Message: "unterminated string literal",
		Help:    "strings must be closed with a matching quote",
	},
	UnterminatedComment: {
		Message: "unterminated block comment",
		Help:    "block comments must be closed with */",
	},
	InvalidEscape: {
		Message: "invalid escape sequence",
		Help:    `valid escape sequences are: \n \r \t \\ \"`,
	},
	InvalidNumber: {
		Message: "invalid number literal",
		Help:    "numbers must be in a valid format (e.g., 123, 0x7F, 3.14)",
	},
	InvalidCharacter: {
		Message: "invalid character",
		Help:    "this character is not allowed in this context",
	},
}

// AddRule appends r and re-sorts the rule list by (-priority,
// +len(PatternSrc)) — higher priority first, and among equal priorities,
// the textually shorter (simpler) pattern first, so the common case prunes
// fastest (§3 ordering invariant).
//
// Zero-length matches are rejected at the one point they can be: the
// Matcher itself can't be interrogated statically, so this is enforced at
// scan time in pkgs/scanner instead (a zero-length best match is demoted to
// "no match"); AddRule only guards the one case it *can* catch, a nil
// Pattern.
func (rs *RuleSet[K]) AddRule(r Rule[K]) {
	if r.Pattern == nil {
		panic("rule: Pattern must not be nil")
	}
	rs.rules = append(rs.rules, r)
	sort.SliceStable(rs.rules, func(i, j int) bool {
		a, b := rs.rules[i], rs.rules[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return len(a.PatternSrc) < len(b.PatternSrc)
	})
}

// Rules returns the rules in their current pre-sorted scan order. Callers
// must not mutate the returned slice.
func (rs *RuleSet[K]) Rules() []Rule[K] {
	return rs.rules
}

// RegisterErrorHandler stores or overwrites the handler keyed by id.
func (rs *RuleSet[K]) RegisterErrorHandler(id HandlerID, h Handler) {
	rs.handlers[id] = h
}

// RegisterErrorHandlerMessage is the inline form of RegisterErrorHandler.
func (rs *RuleSet[K]) RegisterErrorHandlerMessage(id HandlerID, message, help string) {
	rs.RegisterErrorHandler(id, Handler{Message: message, Help: help})
}

// Handler returns the handler registered under id, if any. Unknown ids are
// tolerated by the scanner (§4.3 step 4, §7.3) — this method simply
// reports absence; it never errors.
func (rs *RuleSet[K]) Handler(id HandlerID) (Handler, bool) {
	h, ok := rs.handlers[id]
	return h, ok
}
