// Package contract reports programmer-contract violations.
//
// A violation means the caller broke an API precondition (looked up a menu
// that was never added, removed a handler twice, asked for an unregistered
// mode). These are bugs, not runtime conditions, so they panic instead of
// returning an error.
package contract

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Violation is the panic value raised by Failf.
type Violation struct {
	Msg string
}

func (v *Violation) Error() string {
	return "contract violation: " + v.Msg
}

// Failf panics with a *Violation built from the format string.
func Failf(format string, args ...any) {
	panic(&Violation{Msg: fmt.Sprintf(format, args...)})
}

// Assert panics with a *Violation when cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		Failf(format, args...)
	}
}

// Suggest returns the closest candidate to name, or "" when nothing is close.
func Suggest(name string, candidates []string) string {
	if name == "" || len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(ranks) == 0 {
		// Extra letters: "Playy" still finds "Play".
		for _, c := range candidates {
			if fuzzy.MatchNormalizedFold(c, name) {
				return c
			}
		}
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

// NotFound panics with a "<what> %q not found" violation and appends a
// suggestion when one of the known names is close.
func NotFound(what, name string, known []string) {
	if s := Suggest(name, known); s != "" && s != name {
		Failf("%s %q not found (did you mean %q?)", what, name, s)
	}
	Failf("%s %q not found", what, name)
}
