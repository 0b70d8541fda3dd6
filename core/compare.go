package core

// DefaultComparator is a total order over atoms used to canonicalise
// commutative AtomSeqs when no host-specific ordering is supplied. It
// orders first by Kind, then by a kind-specific key, falling back to
// String() for atom kinds that carry no cheaper key. Grounded on the
// teacher's core/compare.go hand-rolled atom ordering (itself a total order
// over the language's value kinds used to keep Orderless operator
// arguments in one canonical arrangement).
type DefaultComparator struct{}

func (DefaultComparator) Less(a, b Atom) bool {
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return ka < kb
	}
	switch av := a.(type) {
	case Literal:
		bv := b.(Literal)
		return literalLess(av, bv)
	case Variable:
		bv := b.(Variable)
		if av.Name != bv.Name {
			return av.Name < bv.Name
		}
		return !av.Meta && bv.Meta
	case NamedRootType:
		bv := b.(NamedRootType)
		return av.Name < bv.Name
	case OperatorRef:
		bv := b.(OperatorRef)
		return av.Name < bv.Name
	default:
		return a.String() < b.String()
	}
}

func literalLess(a, b Literal) bool {
	if a.LKind != b.LKind {
		return a.LKind < b.LKind
	}
	switch a.LKind {
	case LitInteger:
		return a.Int.Cmp(b.Int) < 0
	case LitFloat:
		if a.Flt.Radix != b.Flt.Radix {
			return a.Flt.Radix < b.Flt.Radix
		}
		if a.Flt.Exponent != b.Flt.Exponent {
			return a.Flt.Exponent < b.Flt.Exponent
		}
		return a.Flt.Significand.Cmp(b.Flt.Significand) < 0
	case LitBoolean:
		return !a.Boolop && b.Boolop
	case LitString:
		return a.Str < b.Str
	case LitSymbol:
		return a.Sym < b.Sym
	case LitBitString:
		return string(a.Bits) < string(b.Bits)
	default:
		return a.String() < b.String()
	}
}
