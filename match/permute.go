package match

// Permuter enumerates the permutations of {0, ..., n-1} in lexicographic
// order, one at a time, via the standard next-permutation step. Used by
// the Commutative and AC matchers to search subject orderings without
// materialising all n! of them up front (spec.md §4.6/§4.8).
//
// There is no single teacher or pack file this is grounded on: next-
// permutation is a textbook algorithm, and nothing in the retrieval pack
// wraps it in a library worth depending on for a few dozen lines of
// index-swapping, so it is written directly against the standard library
// (none needed beyond slices of int).
type Permuter struct {
	indices   []int
	started   bool
	exhausted bool
}

// NewPermuter returns a Permuter over {0, ..., n-1}.
func NewPermuter(n int) *Permuter {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return &Permuter{indices: idx}
}

// Current returns the permutation found by the most recent Next call
// that returned true. The caller must not mutate the returned slice.
func (p *Permuter) Current() []int { return p.indices }

// Next advances to the next permutation in lexicographic order. The
// first call yields the identity permutation; it returns false once
// every permutation has been produced.
func (p *Permuter) Next() bool {
	if p.exhausted {
		return false
	}
	if !p.started {
		p.started = true
		return true
	}
	n := len(p.indices)
	i := n - 2
	for i >= 0 && p.indices[i] >= p.indices[i+1] {
		i--
	}
	if i < 0 {
		p.exhausted = true
		return false
	}
	j := n - 1
	for p.indices[j] <= p.indices[i] {
		j--
	}
	p.indices[i], p.indices[j] = p.indices[j], p.indices[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		p.indices[l], p.indices[r] = p.indices[r], p.indices[l]
	}
	return true
}
