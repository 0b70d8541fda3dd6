package core

// Canon recursively rebuilds an atom tree through the canonicalising
// AtomSeq constructor, so every AtomSeq node in the tree - not just its
// outermost one - is flattened, absorber/identity-collapsed, deduped and
// commutatively sorted according to its own declared properties. It is
// idempotent: Canon(Canon(a, cmp), cmp) always equals Canon(a, cmp).
//
// This is the one operation named only implicitly by spec.md (the
// invariants are stated per-AtomSeq, at construction time) and made
// explicit here because a term built up via NewAtomSeqRaw, via direct
// struct literals, or by substituting into a pattern can contain
// not-yet-canonical AtomSeq nodes anywhere in its structure.
func Canon(a Atom, cmp Comparator) Atom {
	switch v := a.(type) {
	case AtomSeq:
		children := make([]Atom, len(v.Atoms))
		for i, c := range v.Atoms {
			children[i] = Canon(c, cmp)
		}
		return NewAtomSeq(v.Props, children, cmp)
	case Apply:
		return NewApply(Canon(v.Head, cmp), Canon(v.Arg, cmp))
	case Lambda:
		return NewLambda(v.Param, Canon(v.Body, cmp))
	case MapPair:
		return NewMapPair(Canon(v.Left, cmp), Canon(v.Right, cmp))
	case SpecialForm:
		if v.Content == nil {
			return v
		}
		return NewSpecialForm(v.Tag, Canon(v.Content, cmp))
	case Operator:
		params := Canon(v.Params, cmp).(AtomSeq)
		return Operator{Name: v.Name, Type: v.Type, Params: params, Props: v.Props}
	default:
		return a
	}
}
