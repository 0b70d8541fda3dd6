package match

import "github.com/client9/matchcore/core"

// matchCommutative matches pattern against subject treating their shared
// length list as an unordered multiset, per spec.md §4.5's three-step
// pipeline: constant elimination pairs off equal constants first; the
// Unbindable matcher then pairs off non-variable patterns (nested
// applies, and so on) against compatible subjects, backtracking over the
// choice; whatever is left - by construction, only plain variables on the
// pattern side - is resolved by permuting the remaining subjects and
// handing them to the Sequence matcher. op is accepted for signature
// symmetry with MatchSequence's other three dispatch targets; Commutative
// matching never regroups subject elements, so it has no use for it.
func matchCommutative(ctx Context, pattern, subject []core.Atom, props core.AlgProp, op *core.OperatorRef, bindings core.Bindings) Outcome {
	if len(pattern) != len(subject) {
		return Fail("commutative length mismatch")
	}

	constants, rest := stripConstants(pattern)
	claimed, ok := claimConstants(pattern, constants, subject)
	if !ok {
		return Fail("commutative: an unmatched constant pattern element")
	}
	restPattern := selectAtoms(pattern, rest)
	restSubject := selectAtoms(subject, residualIndices(len(subject), claimed))

	bindable, nonBindable := stripBindable(restPattern)
	it := &commutativeIterator{
		ctx:             ctx,
		bindablePattern: selectAtoms(restPattern, bindable),
		subject:         restSubject,
		resIt:           matchUnbindable(ctx, restPattern, nonBindable, restSubject, bindings),
		aggressiveFail:  ctx.Settings.AggressiveFail,
	}
	return ToOutcome(it)
}

// commutativeIterator drives the Unbindable matcher's residual-binding
// candidates and, for each, permutes the leftover subjects to feed the
// Sequence matcher against the leftover (all-variable) pattern positions
// (spec.md §4.5 step 3's "residual search").
type commutativeIterator struct {
	ctx             Context
	bindablePattern []core.Atom
	subject         []core.Atom
	resIt           ResidualIterator
	aggressiveFail  bool

	cur         Iterator
	curBindings core.Bindings
	done        bool
}

func (it *commutativeIterator) Next(ctx Context) bool {
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
			it.cur = FromOutcome(matchResidualPermutations(it.ctx, it.bindablePattern, residualSubject, res.Bindings))
		}
	}
}

func (it *commutativeIterator) Bindings() core.Bindings { return it.curBindings }

// matchResidualPermutations enumerates permutations of a residual subject
// list and, for each, matches it positionally against pattern - the
// Sequence-matcher call spec.md §4.5 step 3 and §4.7 step 6 both bottom
// out on once unbindable matching has left only an equal-length,
// all-variable residual on each side.
func matchResidualPermutations(ctx Context, pattern, subject []core.Atom, bindings core.Bindings) Outcome {
	if len(pattern) != len(subject) {
		return Fail("residual search length mismatch")
	}
	it := &residualPermIterator{
		ctx:      ctx,
		pattern:  pattern,
		subject:  subject,
		perm:     NewPermuter(len(subject)),
		bindings: bindings,
	}
	return ToOutcome(it)
}

type residualPermIterator struct {
	ctx      Context
	pattern  []core.Atom
	subject  []core.Atom
	perm     *Permuter
	cur      Iterator
	bindings core.Bindings

	curBindings core.Bindings
}

func (it *residualPermIterator) Next(ctx Context) bool {
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
		out := matchPositionalFrom(ctx, it.pattern, permuted, 0, it.bindings)
		switch out.Kind() {
		case OutcomeFail:
			continue
		case OutcomeMatch:
			b, _ := out.Bindings()
			it.curBindings = b
			return true
		case OutcomeMany:
			it.cur, _ = out.Iterator()
		}
	}
}

func (it *residualPermIterator) Bindings() core.Bindings { return it.curBindings }

func applyPermutation(atoms []core.Atom, indices []int) []core.Atom {
	out := make([]core.Atom, len(indices))
	for i, idx := range indices {
		out[i] = atoms[idx]
	}
	return out
}
