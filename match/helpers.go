package match

import "github.com/client9/matchcore/core"

// PeelOrWrap collapses a one-element group back to its bare atom, or
// wraps a multi-element group into a raw (uncanonicalised) AtomSeq under
// props, wrapped in turn as an application of the governing operator op
// when one is supplied. This is the Associative/AC matchers' grouping
// primitive: a contiguous run of subject elements assigned to one
// pattern position is represented the same way a ground term of that
// shape would be, so the recursive MatchAtom call sees exactly what it
// would see matching against a real subtree - op(group...) when the
// elements came from under an operator, the bare sequence otherwise
// (spec.md §4.6 steps 3/4, §4.10).
//
// NewAtomSeqRaw is used rather than NewAtomSeq because a group assembled
// here is already a contiguous slice of already-canonical subject
// elements; re-running flatten/absorber/identity/idempotent/sort on it
// could change its element order or count relative to what the grouping
// search just chose, which would make the grouping search itself
// unsound (spec.md's Design Notes, first Open Question: constructor-mode
// flag).
func PeelOrWrap(props core.AlgProp, atoms []core.Atom, op *core.OperatorRef) core.Atom {
	if len(atoms) == 1 {
		return atoms[0]
	}
	seq := core.NewAtomSeqRaw(props, atoms)
	if op != nil {
		return core.NewOperatorApply(*op, seq)
	}
	return seq
}

// selectAtoms returns the atoms at the given indices, in the order given.
func selectAtoms(atoms []core.Atom, indices []int) []core.Atom {
	out := make([]core.Atom, len(indices))
	for i, idx := range indices {
		out[i] = atoms[idx]
	}
	return out
}

// claimConstants pairs each constant pattern element (by its index into
// pattern) with a distinct, structurally-equal, not-yet-claimed subject
// element, returning the claimed subject indices in pattern order, or
// ok=false the moment one constant pattern element has no remaining
// candidate. This is the actual constant-elimination step (spec.md §4.8,
// §4.5 step 1, §4.7 step 4): unlike eliminateConstants below, it produces
// the pairing itself rather than just a feasibility bit, so callers can
// remove the matched elements from both lists before continuing.
func claimConstants(pattern []core.Atom, constants []int, subject []core.Atom) (claimed []int, ok bool) {
	idx := buildConstantIndex(subject)
	taken := make(map[int]bool, len(constants))
	for _, pi := range constants {
		found := -1
		for _, c := range idx[pattern[pi].String()] {
			if !taken[c] && subject[c].Equal(pattern[pi]) {
				found = c
				break
			}
		}
		if found < 0 {
			return nil, false
		}
		taken[found] = true
		claimed = append(claimed, found)
	}
	return claimed, true
}

// stripConstants partitions pattern elements into the ones requiring no
// variable binding (constant, ground atoms) and the rest, returning the
// ground ones' positions so a matcher can eliminate impossible subject
// alignments early by index lookup instead of full positional search
// (spec.md §4.8's constant-elimination pass ahead of AC's permutation
// search).
func stripConstants(pattern []core.Atom) (constants []int, rest []int) {
	for i, p := range pattern {
		if core.IsConstant(p) {
			constants = append(constants, i)
		} else {
			rest = append(rest, i)
		}
	}
	return constants, rest
}

// buildConstantIndex groups subject element indices by structural
// equality class, so a constant pattern element's required subject
// element can be located (or ruled absent) in O(1) amortised instead of
// a linear scan per candidate.
func buildConstantIndex(subject []core.Atom) map[string][]int {
	idx := make(map[string][]int)
	for i, s := range subject {
		if !core.IsConstant(s) {
			continue
		}
		key := s.String()
		idx[key] = append(idx[key], i)
	}
	return idx
}

// eliminateConstants reports whether every constant element of pattern
// has at least one matching, not-yet-claimed element available in
// subject, consuming one candidate per constant pattern element as it
// goes. It is claimConstants' feasibility-only sibling: the same pairing
// rule without building the claimed-index slice a caller that only needs
// a yes/no answer has no use for (spec.md §4.8).
func eliminateConstants(pattern, subject []core.Atom) bool {
	constants, _ := stripConstants(pattern)
	idx := buildConstantIndex(subject)
	claimed := make(map[int]bool, len(subject))
	for _, pi := range constants {
		candidates := idx[pattern[pi].String()]
		found := false
		for _, c := range candidates {
			if claimed[c] || !subject[c].Equal(pattern[pi]) {
				continue
			}
			claimed[c] = true
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}

// stripBindable returns the subset of pattern that is a plain variable
// or meta-variable (spec.md §4.8's variable-stripping step, used by the
// Unbindable/residual search below to separate "must structurally match
// something specific" elements from "absorbs whatever is left over"
// elements).
func stripBindable(pattern []core.Atom) (bindable []int, nonBindable []int) {
	for i, p := range pattern {
		if core.IsBindable(p) {
			bindable = append(bindable, i)
		} else {
			nonBindable = append(nonBindable, i)
		}
	}
	return bindable, nonBindable
}

// ResidualBinding is one candidate produced by the Unbindable matcher: a
// Bindings value together with the subject indices that remain unclaimed
// after the non-bindable pattern elements were matched off against their
// subject counterparts. Kept as an explicit separate type - rather than
// added as optional fields on core.Bindings - per spec.md's Design Notes
// instruction not to overload the Bindings type with matcher-internal
// bookkeeping.
type ResidualBinding struct {
	Bindings core.Bindings
	Residual []int // indices into the original subject slice, in ascending order
}

// ResidualIterator is the lazy enumeration protocol for the Unbindable
// matcher: each step proposes one way to match every non-bindable pattern
// element against a distinct subject element, reporting what is left
// over for the caller's remaining (bindable) pattern elements to claim.
type ResidualIterator interface {
	Next(ctx Context) bool
	Current() ResidualBinding
}

// matchUnbindable performs a backtracking bipartite search: every
// non-bindable element of pattern (indices nonBindable) must be matched,
// via MatchAtom, against a distinct element of subject. Bindable pattern
// elements are left untouched; they are the caller's concern once a
// residual assignment is known. Grounded on the general shape of
// wbrown-janus-datalog's relation matcher (backtracking search over
// candidate-to-slot assignments), adapted here to report the unclaimed
// remainder rather than a full relation binding.
func matchUnbindable(ctx Context, pattern []core.Atom, nonBindable []int, subject []core.Atom, bindings core.Bindings) ResidualIterator {
	return &unbindableIterator{
		ctx:         ctx,
		pattern:     pattern,
		nonBindable: nonBindable,
		subject:     subject,
		base:        bindings,
	}
}

type unbindableIterator struct {
	ctx         Context
	pattern     []core.Atom
	nonBindable []int
	subject     []core.Atom
	base        core.Bindings

	stack   []unbindableFrame
	started bool
	current ResidualBinding
}

type unbindableFrame struct {
	patIdx   int   // position within nonBindable currently being assigned
	subIdx   int   // next subject index to try for this position
	claimed  []int // subject indices claimed so far, parallel to nonBindable[:patIdx]
	bindings core.Bindings
}

func (it *unbindableIterator) Next(ctx Context) bool {
	if !it.started {
		it.started = true
		it.stack = []unbindableFrame{{patIdx: 0, subIdx: 0, claimed: nil, bindings: it.base}}
	}
	for len(it.stack) > 0 {
		if ctx.Expired() {
			return false
		}
		top := &it.stack[len(it.stack)-1]
		if top.patIdx == len(it.nonBindable) {
			it.current = ResidualBinding{Bindings: top.bindings, Residual: residualIndices(len(it.subject), top.claimed)}
			it.stack = it.stack[:len(it.stack)-1]
			return true
		}
		advanced := false
		for top.subIdx < len(it.subject) {
			si := top.subIdx
			top.subIdx++
			if containsInt(top.claimed, si) {
				continue
			}
			pi := it.nonBindable[top.patIdx]
			out := MatchAtom(it.ctx, it.pattern[pi], it.subject[si], top.bindings)
			if out.Kind() == OutcomeFail {
				continue
			}
			for _, b := range outcomeBindingsList(it.ctx, out) {
				claimed := append(append([]int{}, top.claimed...), si)
				it.stack = append(it.stack, unbindableFrame{
					patIdx:   top.patIdx + 1,
					subIdx:   0,
					claimed:  claimed,
					bindings: b,
				})
			}
			advanced = true
			break
		}
		if !advanced && top.subIdx >= len(it.subject) {
			it.stack = it.stack[:len(it.stack)-1]
		}
	}
	return false
}

func (it *unbindableIterator) Current() ResidualBinding { return it.current }

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func residualIndices(n int, claimed []int) []int {
	out := make([]int, 0, n-len(claimed))
	for i := 0; i < n; i++ {
		if !containsInt(claimed, i) {
			out = append(out, i)
		}
	}
	return out
}

// outcomeBindingsList materialises every binding an Outcome offers. Used
// only by the bounded backtracking search above, where the branching
// factor is the (small) subject length, not an unbounded lazy stream.
func outcomeBindingsList(ctx Context, out Outcome) []core.Bindings {
	switch out.Kind() {
	case OutcomeMatch:
		b, _ := out.Bindings()
		return []core.Bindings{b}
	case OutcomeMany:
		it, _ := out.Iterator()
		return Collect(ctx, it)
	default:
		return nil
	}
}

// MatchWithResidual exposes the Unbindable matcher directly: it
// identifies pattern's non-bindable elements automatically (via
// stripBindable) and returns a ResidualIterator enumerating every way to
// match them off against distinct subject elements, leaving the bindable
// positions and the unclaimed subject elements for the caller (spec.md
// §4.8's variable/constant-stripping step).
func MatchWithResidual(ctx Context, pattern, subject []core.Atom, bindings core.Bindings) ResidualIterator {
	_, nonBindable := stripBindable(pattern)
	return matchUnbindable(ctx, pattern, nonBindable, subject, bindings)
}

// ApplyMandatoryBindings is the best-effort mandatory-binding pre-pass: it
// adds every name -> atom pair of the caller-supplied hint map to bindings
// immediately rather than leaving those variables to full search, and
// reports false (returning bindings unchanged) if any hint conflicts with
// an existing binding. It derives no forced bindings of its own - it only
// applies the ones the caller has already established - per spec.md's
// Design Notes instruction that this pass need not (and in general cannot,
// short of running the full search) be complete.
func ApplyMandatoryBindings(bindings core.Bindings, hints map[string]core.Atom) (core.Bindings, bool) {
	result := bindings
	for name, value := range hints {
		var ok bool
		result, ok = result.Add(name, value)
		if !ok {
			return bindings, false
		}
	}
	return result, true
}

// tryMandatoryBinding is the Commutative/AC matchers' hook into the
// mandatory-bindings pre-pass: "when exactly one pattern variable and one
// subject atom remain after pairing off forced constants, bind them"
// (spec.md §4.8). When pattern/subject have been reduced to exactly one
// element apiece and that element is a plain, unconstrained variable, the
// assignment is forced - there is nothing left to search over - so it is
// applied directly via ApplyMandatoryBindings instead of constructing a
// (degenerate, single-candidate) permutation iterator. A typed or guarded
// variable, or anything else, falls through to the general search so its
// constraints still get checked via the ordinary single-atom match
// contract; ok is false in that case.
func tryMandatoryBinding(pattern, subject []core.Atom, bindings core.Bindings) (out Outcome, ok bool) {
	if len(pattern) != 1 || len(subject) != 1 {
		return Outcome{}, false
	}
	v, isVar := asVariable(pattern[0])
	if !isVar || v.Type != nil || v.Guard != nil {
		return Outcome{}, false
	}
	b, bound := ApplyMandatoryBindings(bindings, map[string]core.Atom{v.Name: subject[0]})
	if !bound {
		return Fail("mandatory binding conflict for " + v.Name), true
	}
	return MatchOne(b), true
}
