// Package guard provides a concrete match.GuardRewriter for matchdemo. It
// does not embed a general expression evaluator - that machinery belongs
// to a rewrite-rule engine, which is explicitly out of this repository's
// scope - it recognises a small closed set of named guard predicates,
// each expressed as a core.SpecialForm tag, which is enough to exercise
// spec.md §4.4's "evaluate a guard expression" requirement end to end.
package guard

import (
	"fmt"

	"github.com/client9/matchcore/core"
)

// Rewriter evaluates the builtin guard tags: Positive, Negative, NonZero,
// IsSymbol and Equals.
type Rewriter struct{}

// New returns a Rewriter.
func New() *Rewriter { return &Rewriter{} }

// Eval implements match.GuardRewriter.
func (Rewriter) Eval(guardAtom, candidate core.Atom, bound core.Bindings) (bool, error) {
	sf, ok := guardAtom.(core.SpecialForm)
	if !ok {
		return false, fmt.Errorf("guard: unsupported guard expression %s", guardAtom.String())
	}
	switch sf.Tag {
	case "Positive":
		lit, ok := asInteger(candidate)
		return ok && lit.Int.Sign() > 0, nil
	case "Negative":
		lit, ok := asInteger(candidate)
		return ok && lit.Int.Sign() < 0, nil
	case "NonZero":
		lit, ok := asInteger(candidate)
		return ok && lit.Int.Sign() != 0, nil
	case "IsSymbol":
		lit, ok := candidate.(core.Literal)
		return ok && lit.LKind == core.LitSymbol, nil
	case "Equals":
		if sf.Content == nil {
			return false, fmt.Errorf("guard: Equals requires content")
		}
		return sf.Content.Equal(candidate), nil
	default:
		return false, fmt.Errorf("guard: unknown guard tag %q", sf.Tag)
	}
}

func asInteger(a core.Atom) (core.Literal, bool) {
	lit, ok := a.(core.Literal)
	if !ok || lit.LKind != core.LitInteger || lit.Int == nil {
		return core.Literal{}, false
	}
	return lit, true
}
