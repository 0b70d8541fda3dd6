package core

import "strings"

// Comparator gives a total order over atoms, used to canonicalise
// commutative AtomSeqs (spec.md §3 invariant 5, §6 "Comparator for atoms").
// It is a host-provided collaborator, consulted only at construction time;
// the matcher package never needs it directly.
type Comparator interface {
	Less(a, b Atom) bool
}

// AtomSeq is the central container of the algebra: an ordered sequence of
// atoms plus the algebraic properties declared for its governing operator.
// Its canonical element order and length depend on Props, enforced by
// NewAtomSeq (spec.md §3 invariants 1-5).
type AtomSeq struct {
	Props AlgProp
	Atoms []Atom
}

// NewAtomSeq builds a canonicalised AtomSeq: flattening associative
// children with exactly-equal properties, collapsing to the absorber when
// present, dropping the identity element (unless that would empty the
// sequence), removing idempotent duplicates, and sorting into the
// comparator's canonical order when commutative. cmp may be nil when Props
// is not commutative; NewAtomSeq never dereferences cmp in that case.
func NewAtomSeq(props AlgProp, atoms []Atom, cmp Comparator) AtomSeq {
	result := canonicalizeAtoms(props, atoms, cmp)
	return AtomSeq{Props: props, Atoms: result}
}

// NewAtomSeqRaw builds an AtomSeq without applying any of the invariants.
// This is the constructor-mode flag named in spec.md's Design Notes: the
// Associative matcher's grouping step (match.PeelOrWrap) uses it to wrap a
// chosen run of subject elements - including runs of a permutation the AC
// matcher handed down - without the invariants re-sorting or collapsing it.
func NewAtomSeqRaw(props AlgProp, atoms []Atom) AtomSeq {
	cp := make([]Atom, len(atoms))
	copy(cp, atoms)
	return AtomSeq{Props: props, Atoms: cp}
}

func canonicalizeAtoms(props AlgProp, atoms []Atom, cmp Comparator) []Atom {
	flat := flattenAssociative(props, atoms)

	if absorber, ok := props.HasAbsorber(); ok {
		for _, a := range flat {
			if a.Equal(absorber) {
				return []Atom{absorber}
			}
		}
	}

	if identity, ok := props.HasIdentity(); ok {
		kept := make([]Atom, 0, len(flat))
		for _, a := range flat {
			if !a.Equal(identity) {
				kept = append(kept, a)
			}
		}
		if len(kept) == 0 {
			kept = []Atom{identity}
		}
		flat = kept
	}

	if props.IsIdempotent() {
		flat = dedupePreserveOrder(flat)
	}

	if props.IsCommutative() && cmp != nil {
		flat = sortByComparator(flat, cmp)
	}

	return flat
}

// flattenAssociative splices the elements of any direct child AtomSeq whose
// properties are exactly equal to props, per invariant 1. It flattens only
// when props.IsAssociative() is concretely true; when the associativity
// flag is unset, false, or a still-unbound variable, the atoms are copied
// unchanged.
func flattenAssociative(props AlgProp, atoms []Atom) []Atom {
	if !props.IsAssociative() {
		cp := make([]Atom, len(atoms))
		copy(cp, atoms)
		return cp
	}
	out := make([]Atom, 0, len(atoms))
	for _, a := range atoms {
		if seq, ok := a.(AtomSeq); ok && seq.Props.Equal(props) {
			out = append(out, seq.Atoms...)
			continue
		}
		out = append(out, a)
	}
	return out
}

func dedupePreserveOrder(atoms []Atom) []Atom {
	out := make([]Atom, 0, len(atoms))
	for _, a := range atoms {
		dup := false
		for _, kept := range out {
			if kept.Equal(a) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}
	return out
}

func sortByComparator(atoms []Atom, cmp Comparator) []Atom {
	out := make([]Atom, len(atoms))
	copy(out, atoms)
	// Simple insertion sort: sequences inside a matching problem are small
	// and this keeps the comparator contract (a strict Less) the only
	// requirement, matching the teacher's own core/compare.go approach of
	// a hand-rolled stable ordering rather than pulling in a generic sort
	// framework for a handful of elements.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && cmp.Less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func (s AtomSeq) Kind() Kind { return KindAtomSeq }

func (s AtomSeq) Depth() int {
	return maxDepth(s.Atoms...)
}

func (s AtomSeq) IsConstant() bool {
	return allConstant(s.Atoms...)
}

func (s AtomSeq) String() string {
	parts := make([]string, len(s.Atoms))
	for i, a := range s.Atoms {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (s AtomSeq) Equal(other Atom) bool {
	o, ok := other.(AtomSeq)
	if !ok || !s.Props.Equal(o.Props) || len(s.Atoms) != len(o.Atoms) {
		return false
	}
	for i := range s.Atoms {
		if !s.Atoms[i].Equal(o.Atoms[i]) {
			return false
		}
	}
	return true
}

// Len is a convenience wrapper over len(s.Atoms).
func (s AtomSeq) Len() int { return len(s.Atoms) }
