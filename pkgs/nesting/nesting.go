// Package nesting implements the stack-based delimiter validator: paired
// open/close kinds, optional pairing map, and extra-close/mismatch/
// unclosed classification (spec §3, §4.8).
package nesting

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/lexcore/pkgs/token"
)

// Tracker validates nesting of open/close token kinds as they're
// processed one at a time. extraCloses is tracked separately from the
// stack so that a bad closing token never pops a legitimate open — this
// lets validation keep going sensibly for the rest of the stream after one
// mismatch (spec §9), the same technique the teacher lexer uses for its own
// brace-level bookkeeping.
type Tracker[K token.Kind] struct {
	openSet     map[K]bool
	closeSet    map[K]bool
	pairs       map[K]K // close -> open; nil if pairing isn't enforced
	level       int
	stack       []K
	extraCloses int
}

// New builds a Tracker over the given open and close kind sets, with no
// pairing enforced: any close matches any open (spec §4.8, "If pairs is
// absent").
func New[K token.Kind](open, close []K) *Tracker[K] {
	return newTracker(open, close, nil)
}

// NewPaired builds a Tracker that additionally enforces pairing: a close
// kind only matches the specific open kind pairs maps it to.
func NewPaired[K token.Kind](open, close []K, pairs map[K]K) *Tracker[K] {
	return newTracker(open, close, pairs)
}

func newTracker[K token.Kind](open, close []K, pairs map[K]K) *Tracker[K] {
	t := &Tracker[K]{
		openSet:  make(map[K]bool, len(open)),
		closeSet: make(map[K]bool, len(close)),
		pairs:    pairs,
	}
	for _, k := range open {
		t.openSet[k] = true
	}
	for _, k := range close {
		t.closeSet[k] = true
	}
	return t
}

// Level reports the current nesting depth.
func (t *Tracker[K]) Level() int { return t.level }

// ExtraCloses reports how many closing kinds were seen with nothing valid
// to close.
func (t *Tracker[K]) ExtraCloses() int { return t.extraCloses }

// Process feeds one token kind through the tracker and returns the depth
// to display for it (spec §4.8's process(kind) -> level_for_display):
//
//   - an open kind returns the level *before* incrementing, then pushes.
//   - a close kind, with pairing enforced, that closes the wrong open (or
//     arrives at level 0) counts as an extra close and leaves level/stack
//     untouched, returning the unchanged level; otherwise it pops and
//     returns the new (decremented) level.
//   - a close kind, with no pairing enforced, pops whenever level > 0 and
//     otherwise counts as an extra close.
//   - any other kind passes through, returning the level unchanged.
func (t *Tracker[K]) Process(kind K) int {
	switch {
	case t.openSet[kind]:
		lvl := t.level
		t.level++
		t.stack = append(t.stack, kind)
		return lvl

	case t.closeSet[kind]:
		if t.pairs != nil {
			want, wantOK := t.pairs[kind]
			if t.level == 0 || !wantOK || t.top() != want {
				t.extraCloses++
				return t.level
			}
			t.pop()
			return t.level
		}
		if t.level > 0 {
			t.pop()
			return t.level
		}
		t.extraCloses++
		return t.level

	default:
		return t.level
	}
}

func (t *Tracker[K]) top() K {
	return t.stack[len(t.stack)-1]
}

func (t *Tracker[K]) pop() {
	t.level--
	t.stack = t.stack[:len(t.stack)-1]
}

// Balanced reports whether every open has been closed and no extra closes
// were seen.
func (t *Tracker[K]) Balanced() bool {
	return len(t.stack) == 0 && t.extraCloses == 0
}

// ValidationError returns a human-readable description of why the tracker
// isn't balanced, or nil if it is (spec §4.8).
func (t *Tracker[K]) ValidationError() error {
	switch {
	case t.Balanced():
		return nil
	case t.extraCloses > 0 && len(t.stack) == 0:
		return fmt.Errorf("too many closing tokens (%d extra)", t.extraCloses)
	case t.extraCloses == 0 && len(t.stack) > 0:
		return fmt.Errorf("unclosed tokens: %s", joinKinds(t.stack))
	default:
		return fmt.Errorf("mismatched tokens in stack: %s", joinKinds(t.stack))
	}
}

// Reset clears level, the stack, and the extra-close count back to zero,
// leaving the open/close/pairs configuration intact.
func (t *Tracker[K]) Reset() {
	t.level = 0
	t.stack = nil
	t.extraCloses = 0
}

func joinKinds[K token.Kind](kinds []K) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
