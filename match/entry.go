package match

import "github.com/client9/matchcore/core"

// MatchAtom matches a single pattern atom against a single subject atom
// and returns an Outcome, per spec.md §6's external entry point. It is
// the recursive core every matcher in this package bottoms out on:
// Sequence/Commutative/Associative/AC all eventually call back into
// MatchAtom for each element pairing they propose.
func MatchAtom(ctx Context, pattern, subject core.Atom, bindings core.Bindings) Outcome {
	if ctx.Expired() {
		return Fail("deadline exceeded")
	}

	if v, ok := asVariable(pattern); ok {
		return matchVariable(ctx, v, subject, bindings)
	}

	if pattern.Kind() != subject.Kind() {
		return Fail("kind mismatch: pattern " + pattern.Kind().String() + " vs subject " + subject.Kind().String())
	}

	switch p := pattern.(type) {
	case core.Literal:
		s := subject.(core.Literal)
		if p.Equal(s) {
			return MatchOne(bindings)
		}
		return Fail("literal mismatch")

	case core.NamedRootType:
		s := subject.(core.NamedRootType)
		if p.Equal(s) {
			return MatchOne(bindings)
		}
		return Fail("named root type mismatch")

	case core.OperatorRef:
		s := subject.(core.OperatorRef)
		if p.Equal(s) {
			return MatchOne(bindings)
		}
		return Fail("operator reference mismatch")

	case core.Operator:
		s := subject.(core.Operator)
		if p.Equal(s) {
			return MatchOne(bindings)
		}
		return Fail("operator mismatch")

	case core.Apply:
		s := subject.(core.Apply)
		return matchApply(ctx, p, s, bindings)

	case core.AtomSeq:
		s := subject.(core.AtomSeq)
		return MatchSequence(ctx, p.Atoms, s.Atoms, s.Props, nil, bindings)

	case core.MapPair:
		s := subject.(core.MapPair)
		return ToOutcome(FlatMap(FromOutcome(MatchAtom(ctx, p.Left, s.Left, bindings)), func(b core.Bindings) Outcome {
			return MatchAtom(ctx, p.Right, s.Right, b)
		}))

	case core.SpecialForm:
		s := subject.(core.SpecialForm)
		if p.Tag != s.Tag {
			return Fail("special form tag mismatch")
		}
		if p.Content == nil || s.Content == nil {
			if p.Content == nil && s.Content == nil {
				return MatchOne(bindings)
			}
			return Fail("special form content mismatch")
		}
		return MatchAtom(ctx, p.Content, s.Content, bindings)

	case core.Lambda, core.BindingsAtom:
		// Opaque beyond structural equality: neither unification nor
		// higher-order matching on lambda bodies or embedded binding sets
		// (spec.md §3/§4.4 Non-goal).
		if pattern.Equal(subject) {
			return MatchOne(bindings)
		}
		return Fail("opaque atom mismatch")

	default:
		return Fail("unhandled atom kind")
	}
}

func asVariable(a core.Atom) (core.Variable, bool) {
	v, ok := a.(core.Variable)
	return v, ok
}

func matchVariable(ctx Context, v core.Variable, subject core.Atom, bindings core.Bindings) Outcome {
	if v.Type != nil {
		if nrt, ok := v.Type.(core.NamedRootType); ok {
			if !core.MatchesRootType(nrt.Name, subject) {
				return Fail("subject does not satisfy variable type " + nrt.Name)
			}
		}
	}
	if v.Guard != nil {
		if ctx.Guards == nil {
			return Fail("variable has a guard but no GuardRewriter was supplied")
		}
		ok, err := ctx.Guards.Eval(v.Guard, subject, bindings)
		if err != nil {
			return Fail("guard evaluation error: " + err.Error())
		}
		if !ok {
			return Fail("guard rejected candidate for " + v.Name)
		}
	}
	newBindings, ok := bindings.Add(v.Name, subject)
	if !ok {
		return Fail("incompatible rebinding of " + v.Name)
	}
	return MatchOne(newBindings)
}

// matchApply matches an Apply pattern against an Apply subject. When both
// sides resolve to an operator application (OperatorRef head, AtomSeq
// arg), the operator references are matched first, then the argument
// AtomSeqs' declared properties are reconciled via MatchAlgProps before
// dispatching the argument list to the property-appropriate sequence
// matcher, passing the subject's resolved operator down as the governing
// operator so a multi-element group formed during associative/AC grouping
// is wrapped back into an application of that operator (spec.md §4.6
// steps 3/4); otherwise Head and Arg are matched pairwise as plain atoms.
func matchApply(ctx Context, pattern, subject core.Apply, bindings core.Bindings) Outcome {
	pOp, pArgs, pIsOp := pattern.Operator()
	sOp, sArgs, sIsOp := subject.Operator()

	if pIsOp && sIsOp {
		opOut := MatchAtom(ctx, pOp, sOp, bindings)
		b, ok := opOut.Bindings()
		if !ok {
			return opOut
		}
		propsOut := MatchAlgProps(ctx, pArgs.Props, sArgs.Props, b)
		switch propsOut.Kind() {
		case OutcomeFail:
			return propsOut
		case OutcomeMatch:
			b2, _ := propsOut.Bindings()
			return MatchSequence(ctx, pArgs.Atoms, sArgs.Atoms, sArgs.Props, &sOp, b2)
		}
		return ToOutcome(FlatMap(FromOutcome(propsOut), func(b2 core.Bindings) Outcome {
			return MatchSequence(ctx, pArgs.Atoms, sArgs.Atoms, sArgs.Props, &sOp, b2)
		}))
	}

	return ToOutcome(FlatMap(FromOutcome(MatchAtom(ctx, pattern.Head, subject.Head, bindings)), func(b core.Bindings) Outcome {
		return MatchAtom(ctx, pattern.Arg, subject.Arg, b)
	}))
}

// MatchSequence matches a pattern atom list against a subject atom list
// under the subject-declared algebraic properties props, dispatching to
// the Sequence, Commutative, Associative or AC matcher as appropriate
// (spec.md §4.5-§4.8). props is always the subject's properties: the
// subject is assumed ground, so its declared flags are concretely true or
// false by the time this is called (any pattern-side property variables
// were already reconciled against them by MatchAlgProps). op is the
// governing operator this argument list was taken from, or nil for a bare
// AtomSeq matched outside any operator application (spec.md §6's
// `match_sequence(..., op: Option<OperatorRef>)`); only the Associative
// and AC matchers consult it, to wrap regrouped subject runs back into an
// application of op.
func MatchSequence(ctx Context, pattern, subject []core.Atom, props core.AlgProp, op *core.OperatorRef, bindings core.Bindings) Outcome {
	if ctx.Expired() {
		return Fail("deadline exceeded")
	}
	switch {
	case props.IsAssociative() && props.IsCommutative():
		return matchAC(ctx, pattern, subject, props, op, bindings)
	case props.IsAssociative():
		return matchAssociative(ctx, pattern, subject, props, op, bindings)
	case props.IsCommutative():
		return matchCommutative(ctx, pattern, subject, props, op, bindings)
	default:
		return matchSequenceFixed(ctx, pattern, subject, bindings)
	}
}
