package core

// AlgProp records the five independent, optional algebraic properties an
// AtomSeq's governing operator may declare: associativity, commutativity,
// idempotency, an absorbing element and an identity element. Each field is
// nil (unspecified), a constant truth/element value, or a variable/
// expression atom whose truth is only known once bound — spec.md §3.
//
// Grounded on the teacher's engine/attribute.go Attribute enum: Associative
// and Commutative are the typed generalisation of exactly that enum's Flat
// and Orderless constants. Idempotent/Absorber/Identity have no teacher
// analogue — cardinal never implements AC matching, only names the
// attributes.
type AlgProp struct {
	Associative Atom
	Commutative Atom
	Idempotent  Atom
	Absorber    Atom
	Identity    Atom
}

// IsTrue reports whether an (possibly nil) AlgProp field is the concrete
// boolean literal true. A variable/expression field is not "true" until
// bound, so it reports false here; matching such a field is handled by
// match.MatchAlgProps, not by canonicalisation.
func IsTrue(a Atom) bool {
	if a == nil {
		return false
	}
	lit, ok := a.(Literal)
	return ok && lit.LKind == LitBoolean && lit.Boolop
}

func (p AlgProp) IsAssociative() bool { return IsTrue(p.Associative) }
func (p AlgProp) IsCommutative() bool { return IsTrue(p.Commutative) }
func (p AlgProp) IsIdempotent() bool  { return IsTrue(p.Idempotent) }

// HasAbsorber reports whether an absorbing element is declared and returns
// it.
func (p AlgProp) HasAbsorber() (Atom, bool) {
	return p.Absorber, p.Absorber != nil
}

// HasIdentity reports whether an identity element is declared and returns
// it.
func (p AlgProp) HasIdentity() (Atom, bool) {
	return p.Identity, p.Identity != nil
}

// WithoutCommutative returns a copy of p with Commutative cleared. Used
// when the AC matcher hands a specific subject permutation down to the
// Associative matcher: the permutation's order must survive, so the
// handed-down AtomSeq must not re-sort on construction (spec.md's Design
// Notes, first Open Question).
func (p AlgProp) WithoutCommutative() AlgProp {
	p.Commutative = nil
	return p
}

func atomEqual(a, b Atom) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Equal compares two AlgProp records field by field via structural atom
// equality; nil fields are only equal to nil fields.
func (p AlgProp) Equal(other AlgProp) bool {
	return atomEqual(p.Associative, other.Associative) &&
		atomEqual(p.Commutative, other.Commutative) &&
		atomEqual(p.Idempotent, other.Idempotent) &&
		atomEqual(p.Absorber, other.Absorber) &&
		atomEqual(p.Identity, other.Identity)
}

// Fields returns the five properties in a fixed order, for code (matching,
// display) that needs to treat them positionally.
func (p AlgProp) Fields() [5]Atom {
	return [5]Atom{p.Associative, p.Commutative, p.Idempotent, p.Absorber, p.Identity}
}

// AlgPropFromFields reconstructs an AlgProp from the fixed positional order used
// by Fields.
func AlgPropFromFields(f [5]Atom) AlgProp {
	return AlgProp{
		Associative: f[0],
		Commutative: f[1],
		Idempotent:  f[2],
		Absorber:    f[3],
		Identity:    f[4],
	}
}
