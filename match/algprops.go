package match

import "github.com/client9/matchcore/core"

// MatchAlgProps matches a pattern AlgProp against a subject AlgProp,
// field by field, in the fixed order core.AlgProp.Fields returns
// (Associative, Commutative, Idempotent, Absorber, Identity), per spec.md
// §4.9. A nil pattern field imposes no constraint and is skipped. A
// non-nil pattern field is matched, via the general single-atom matcher,
// against the subject's field in the same position - so a pattern field
// that is itself an unbound variable can capture the subject's declared
// property value, while a pattern field that is a concrete boolean or
// element value demands structural equality.
//
// This lets an AlgProp-matching pattern ask "does this subject's operator
// declare idempotency" by putting a variable in the Idempotent field, or
// demand a specific absorber element by putting a literal there, using
// exactly the same matching machinery as any other atom position.
func MatchAlgProps(ctx Context, pattern, subject core.AlgProp, bindings core.Bindings) Outcome {
	pf := pattern.Fields()
	sf := subject.Fields()

	result := bindings
	for i := range pf {
		if pf[i] == nil {
			continue
		}
		if sf[i] == nil {
			return Fail("algprop field unspecified in subject")
		}
		out := MatchAtom(ctx, pf[i], sf[i], result)
		switch out.Kind() {
		case OutcomeFail:
			return out
		case OutcomeMatch:
			b, _ := out.Bindings()
			result = b
		case OutcomeMany:
			// A field match that itself branches is folded into the
			// overall branching search: resume matching the remaining
			// fields for every candidate binding this field offers.
			it, _ := out.Iterator()
			return matchRemainingAlgPropFields(ctx, pf[i+1:], sf[i+1:], it)
		}
	}
	return MatchOne(result)
}

func matchRemainingAlgPropFields(ctx Context, pf, sf []core.Atom, it Iterator) Outcome {
	return ToOutcome(Bind(it, func(b core.Bindings) Iterator {
		result := b
		for i := range pf {
			if pf[i] == nil {
				continue
			}
			if sf[i] == nil {
				return EmptyIterator()
			}
			out := MatchAtom(ctx, pf[i], sf[i], result)
			switch out.Kind() {
			case OutcomeFail:
				return EmptyIterator()
			case OutcomeMatch:
				nb, _ := out.Bindings()
				result = nb
			case OutcomeMany:
				nit, _ := out.Iterator()
				return FromOutcome(matchRemainingAlgPropFields(ctx, pf[i+1:], sf[i+1:], nit))
			}
		}
		return FromOutcome(MatchOne(result))
	}))
}
