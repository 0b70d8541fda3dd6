// Package match implements the term-rewriting matching engine: the lazy
// enumeration of variable bindings that make a pattern atom match a
// subject atom, over the associative/commutative/idempotent operator
// algebra defined by package core.
package match

import (
	"time"

	"github.com/client9/matchcore/core"
)

// OperatorLibrary resolves an OperatorRef to its declared Operator, the
// external collaborator named in spec.md §6. It is consulted read-only
// during a match; the matcher never mutates or caches across calls.
type OperatorLibrary interface {
	Lookup(name string) (core.Operator, bool)
}

// GuardRewriter evaluates a variable's guard expression against a
// candidate binding, the external collaborator spec.md §4.4 requires for
// typed/guarded variables beyond a bare root-type check.
type GuardRewriter interface {
	Eval(guard core.Atom, candidate core.Atom, bound core.Bindings) (bool, error)
}

// Settings carries the matcher's tunable behaviour flags.
type Settings struct {
	// AggressiveFail makes the Commutative and AC matchers stop exploring
	// alternative Unbindable-matcher pairings once exactly one pattern
	// position remains unresolved, taking only the first residual-binding
	// branch instead of backtracking over the rest. This trades
	// completeness (some solutions may be missed) for fast failure on
	// hopeless cases (spec.md §4.7's aggressive-fail note).
	AggressiveFail bool
}

// Context bundles everything a match call needs beyond the pattern and
// subject atoms themselves: settings, an optional deadline, and the three
// read-only external collaborators. It is built once by the caller and
// passed down explicitly through every matcher and Iterator, per spec.md
// §6's "no singletons, no package-level mutable state" requirement.
//
// Grounded on the teacher's engine/context.go EvalContext, which bundles
// an evaluator's Registry and Settings the same way; OperatorLibrary,
// GuardRewriter and Comparator here replace its evaluator/registry
// collaborators with the matcher's narrower read-only contract.
type Context struct {
	Settings   Settings
	Deadline   time.Time // zero value means "never expires"
	Operators  OperatorLibrary
	Guards     GuardRewriter
	Comparator core.Comparator
}

// Expired reports whether Deadline is set and has passed. Checked at every
// matcher entry point and at every Iterator.Next() call, per spec.md §7's
// cancellation/timeout requirement.
func (c Context) Expired() bool {
	return !c.Deadline.IsZero() && !time.Now().Before(c.Deadline)
}

// WithDeadline returns a copy of c with Deadline set to now+d.
func (c Context) WithDeadline(d time.Duration) Context {
	c.Deadline = time.Now().Add(d)
	return c
}
