package match

import "github.com/client9/matchcore/core"

// matchSequenceFixed matches a pattern atom list against a subject atom
// list position by position, with no reordering or regrouping: plain
// Sequence matching, used when the governing operator is neither
// associative nor commutative (spec.md §4.5).
func matchSequenceFixed(ctx Context, pattern, subject []core.Atom, bindings core.Bindings) Outcome {
	if len(pattern) != len(subject) {
		return Fail("sequence length mismatch")
	}
	return matchPositionalFrom(ctx, pattern, subject, 0, bindings)
}

// matchPositionalFrom matches pattern[i:] against subject[i:] pairwise,
// threading bindings forward. When an element match branches (Many), the
// remaining positions are matched for every candidate binding it offers,
// via Bind - so one branching element never forces materialising the
// full cross-product up front.
func matchPositionalFrom(ctx Context, pattern, subject []core.Atom, i int, bindings core.Bindings) Outcome {
	if ctx.Expired() {
		return Fail("deadline exceeded")
	}
	if i == len(pattern) {
		return MatchOne(bindings)
	}
	out := MatchAtom(ctx, pattern[i], subject[i], bindings)
	switch out.Kind() {
	case OutcomeFail:
		return out
	case OutcomeMatch:
		b, _ := out.Bindings()
		return matchPositionalFrom(ctx, pattern, subject, i+1, b)
	default: // OutcomeMany
		it, _ := out.Iterator()
		return ToOutcome(Bind(it, func(b core.Bindings) Iterator {
			return FromOutcome(matchPositionalFrom(ctx, pattern, subject, i+1, b))
		}))
	}
}
