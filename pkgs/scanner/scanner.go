// Package scanner implements the matching engine: longest-match-with-
// priority selection across a RuleSet's rules, skip and error-pattern
// handling, and single-character recovery from unmatched input (spec §4.3,
// §4.4, §4.5).
package scanner

import (
	"unicode/utf8"

	"github.com/aledsdavies/lexcore/pkgs/diagnostic"
	"github.com/aledsdavies/lexcore/pkgs/rule"
	"github.com/aledsdavies/lexcore/pkgs/span"
	"github.com/aledsdavies/lexcore/pkgs/token"
)

// minCapacity is the floor on the pre-allocated token vector's capacity,
// per spec §4.5's allocation policy (max(N/5, 1000)).
const minCapacity = 1000

// Scan runs one full pass of rules over text, producing the token stream
// and any diagnostics accumulated along the way. eof is the kind value
// emitted for the zero-length terminator token appended at end of input
// (spec §4.3 step 5); the caller supplies it because K carries no built-in
// notion of "this is EOF".
//
// Scan never aborts on a lexical error — it always runs to completion and
// returns every diagnostic collected (spec §7 propagation policy).
func Scan[K token.Kind](rs *rule.RuleSet[K], sourceID span.SourceID, text []byte, eof K) ([]token.Token[K], []diagnostic.Diagnostic) {
	cap := len(text) / 5
	if cap < minCapacity {
		cap = minCapacity
	}
	tokens := make([]token.Token[K], 0, cap)
	var diags []diagnostic.Diagnostic

	rules := rs.Rules()
	n := len(text)
	p := 0

	for p < n {
		best, bestRule, matched := bestMatch(rules, text, p)

		if !matched {
			diags = append(diags, recover(sourceID, text, p))
			_, size := utf8.DecodeRune(text[p:])
			if size == 0 {
				size = 1
			}
			p += size
			continue
		}

		sp := span.New(sourceID, p, p+best)

		switch {
		case bestRule.ErrorHandler != nil:
			if h, ok := rs.Handler(*bestRule.ErrorHandler); ok {
				diags = append(diags, diagnostic.NewError(
					h.Message,
					diagnostic.Label{Span: sp, Message: "here", Style: diagnostic.Primary},
					h.Help,
				))
			}
			// Unknown handler id: tolerated silently, consumed like a skip
			// rule (spec §7.3).
		case bestRule.Skip:
			// consumed, no token emitted
		default:
			tokens = append(tokens, token.New(bestRule.Kind, sp, ""))
		}

		p += best
	}

	tokens = append(tokens, token.New(eof, span.New(sourceID, n, n), ""))
	return tokens, diags
}

// bestMatch scans every pre-sorted rule and returns the longest match,
// breaking ties by priority and then by sort order (earlier wins), per the
// total order in spec §4.3 step 2. Rules are scanned exhaustively — the
// early-termination optimization spec §4.3/§9 describes is conditionally
// safe at best and is deliberately omitted here (the conservative choice
// the spec sanctions).
//
// A zero-length match is never selected: spec §4.3's zero-length match
// policy forbids it outright, since selecting one would stall p forever.
func bestMatch[K token.Kind](rules []rule.Rule[K], text []byte, p int) (length int, best *rule.Rule[K], ok bool) {
	for i := range rules {
		r := &rules[i]
		l, matched := r.Pattern.MatchAt(text, p)
		if !matched || l == 0 {
			continue
		}
		if !ok || l > length || (l == length && r.Priority > best.Priority) {
			length, best, ok = l, r, true
		}
	}
	return length, best, ok
}

// recover builds the "unexpected character" diagnostic spec §4.4
// describes, advancing by exactly one Unicode character — the granularity
// choice spec §9 flags as an open question, resolved here in favor of
// per-character (not per-byte) advancement, matching the teacher lexer's
// own rune-oriented recovery.
func recover(sourceID span.SourceID, text []byte, p int) diagnostic.Diagnostic {
	r, size := utf8.DecodeRune(text[p:])
	if size == 0 {
		size = 1
	}
	sp := span.New(sourceID, p, p+size)
	return diagnostic.NewError(
		"unexpected character",
		diagnostic.Label{
			Span:    sp,
			Message: "unexpected '" + string(r) + "'",
			Style:   diagnostic.Primary,
		},
		"remove this character or add a lexer rule to handle it",
	)
}
