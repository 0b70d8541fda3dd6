package match

import "github.com/client9/matchcore/core"

// matchAC matches pattern against subject under an operator declared both
// associative and commutative, per spec.md §4.7's pipeline: the size
// shortcuts fall through to Commutative or Associative where those are
// exact (an equal-length match needs no regrouping; a single pattern just
// absorbs the whole, optionally operator-wrapped, subject); otherwise
// constant elimination and Unbindable matching reduce the problem before
// any permutation is attempted, and what remains is searched by
// permuting the residual subjects and handing each permutation to the
// Associative matcher with commutativity stripped (so no canonical sort
// collapses the permutation).
func matchAC(ctx Context, pattern, subject []core.Atom, props core.AlgProp, op *core.OperatorRef, bindings core.Bindings) Outcome {
	if ctx.Expired() {
		return Fail("deadline exceeded")
	}
	p, s := len(pattern), len(subject)
	if p == 0 {
		if s == 0 {
			return MatchOne(bindings)
		}
		return Fail("AC: pattern has no elements but subject is non-empty")
	}
	if s < p {
		return Fail("AC: fewer subject elements than pattern positions")
	}
	if p == s {
		return matchCommutative(ctx, pattern, subject, props, op, bindings)
	}
	if p == 1 {
		return matchAssociative(ctx, pattern, subject, props.WithoutCommutative(), op, bindings)
	}

	constants, rest := stripConstants(pattern)
	claimed, ok := claimConstants(pattern, constants, subject)
	if !ok {
		return Fail("AC: an unmatched constant pattern element")
	}
	restPattern := selectAtoms(pattern, rest)
	restSubject := selectAtoms(subject, residualIndices(s, claimed))

	bindable, nonBindable := stripBindable(restPattern)
	it := &acIterator{
		ctx:             ctx,
		bindablePattern: selectAtoms(restPattern, bindable),
		subject:         restSubject,
		props:           props.WithoutCommutative(),
		op:              op,
		resIt:           matchUnbindable(ctx, restPattern, nonBindable, restSubject, bindings),
		aggressiveFail:  ctx.Settings.AggressiveFail,
	}
	return ToOutcome(it)
}

// acIterator drives the Unbindable matcher's residual-binding candidates
// and, for each, permutes the leftover subjects and invokes the
// Associative matcher against the leftover (all-variable) pattern
// positions (spec.md §4.7 step 6's "AC sub-iterator").
type acIterator struct {
	ctx             Context
	bindablePattern []core.Atom
	subject         []core.Atom
	props           core.AlgProp
	op              *core.OperatorRef
	resIt           ResidualIterator
	aggressiveFail  bool

	cur         Iterator
	curBindings core.Bindings
	done        bool
}

func (it *acIterator) Next(ctx Context) bool {
	for {
		if ctx.Expired() {
			return false
		}
		if it.cur != nil {
			if it.cur.Next(ctx) {
				it.curBindings = it.cur.Bindings()
				return true
			}
			it.cur = nil
			if it.aggressiveFail && len(it.bindablePattern) <= 1 {
				// Exactly one pattern position remained once the
				// Unbindable matcher was done: aggressive-fail accepts
				// only the first residual-binding branch instead of
				// backtracking over alternative unbindable pairings
				// (spec.md §4.7's aggressive-fail note).
				it.done = true
			}
		}
		if it.done || !it.resIt.Next(ctx) {
			return false
		}
		res := it.resIt.Current()
		residualSubject := selectAtoms(it.subject, res.Residual)
		if out, ok := tryMandatoryBinding(it.bindablePattern, residualSubject, res.Bindings); ok {
			it.cur = FromOutcome(out)
		} else {
			it.cur = FromOutcome(matchACSubIterator(it.ctx, it.bindablePattern, residualSubject, it.props, it.op, res.Bindings))
		}
	}
}

func (it *acIterator) Bindings() core.Bindings { return it.curBindings }

// matchACSubIterator permutes the residual subject list and, for each
// permutation, invokes the Associative matcher against pattern.
func matchACSubIterator(ctx Context, pattern, subject []core.Atom, props core.AlgProp, op *core.OperatorRef, bindings core.Bindings) Outcome {
	it := &acPermIterator{
		ctx:      ctx,
		pattern:  pattern,
		subject:  subject,
		props:    props,
		op:       op,
		perm:     NewPermuter(len(subject)),
		bindings: bindings,
	}
	return ToOutcome(it)
}

type acPermIterator struct {
	ctx      Context
	pattern  []core.Atom
	subject  []core.Atom
	props    core.AlgProp
	op       *core.OperatorRef
	perm     *Permuter
	cur      Iterator
	bindings core.Bindings

	curBindings core.Bindings
}

func (it *acPermIterator) Next(ctx Context) bool {
	for {
		if ctx.Expired() {
			return false
		}
		if it.cur != nil {
			if it.cur.Next(ctx) {
				it.curBindings = it.cur.Bindings()
				return true
			}
			it.cur = nil
		}
		if !it.perm.Next() {
			return false
		}
		permuted := applyPermutation(it.subject, it.perm.Current())
		it.cur = FromOutcome(matchAssociative(it.ctx, it.pattern, permuted, it.props, it.op, it.bindings))
	}
}

func (it *acPermIterator) Bindings() core.Bindings { return it.curBindings }
