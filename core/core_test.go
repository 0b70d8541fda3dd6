package core

import "testing"

func TestLiteralEqual(t *testing.T) {
	if !NewIntegerInt64(5).Equal(NewIntegerInt64(5)) {
		t.Fatalf("equal integers should compare equal")
	}
	if NewIntegerInt64(5).Equal(NewIntegerInt64(6)) {
		t.Fatalf("different integers should not compare equal")
	}
	if !NewString("a").Equal(NewString("a")) {
		t.Fatalf("equal strings should compare equal")
	}
	if True.Equal(False) {
		t.Fatalf("true and false must not compare equal")
	}
}

func TestNamedRootTypeMatches(t *testing.T) {
	if !MatchesRootType(RootAny, NewIntegerInt64(1)) {
		t.Fatalf("ANY should match anything")
	}
	if !MatchesRootType(RootInteger, NewIntegerInt64(1)) {
		t.Fatalf("INTEGER should match an integer literal")
	}
	if MatchesRootType(RootInteger, NewString("x")) {
		t.Fatalf("INTEGER should not match a string literal")
	}
}

func TestVariableEqualRespectsMetaAndType(t *testing.T) {
	a := NewVariable("x")
	b := Variable{Name: "x", Meta: true}
	if a.Equal(b) {
		t.Fatalf("a plain variable and a meta-variable of the same name must not be equal")
	}
	typed := NewTypedVariable("x", NewNamedRootType(RootInteger))
	if a.Equal(typed) {
		t.Fatalf("variables with different declared types must not be equal")
	}
}

func TestAlgPropWithoutCommutative(t *testing.T) {
	p := AlgProp{Associative: True, Commutative: True}
	stripped := p.WithoutCommutative()
	if stripped.Commutative != nil {
		t.Fatalf("WithoutCommutative should clear Commutative")
	}
	if !stripped.IsAssociative() {
		t.Fatalf("WithoutCommutative should not disturb Associative")
	}
}

func TestDefaultComparatorOrdersByKindThenValue(t *testing.T) {
	cmp := DefaultComparator{}
	if !cmp.Less(NewIntegerInt64(1), NewIntegerInt64(2)) {
		t.Fatalf("1 should sort before 2")
	}
	if cmp.Less(NewIntegerInt64(2), NewIntegerInt64(1)) {
		t.Fatalf("2 should not sort before 1")
	}
}

func TestCanonIsIdempotent(t *testing.T) {
	props := AlgProp{Commutative: True}
	inner := AtomSeq{Props: props, Atoms: []Atom{NewIntegerInt64(3), NewIntegerInt64(1)}}
	once := Canon(inner, DefaultComparator{})
	twice := Canon(once, DefaultComparator{})
	if !once.Equal(twice) {
		t.Fatalf("Canon should be idempotent: %v != %v", once, twice)
	}
	seq := once.(AtomSeq)
	if seq.Atoms[0].(Literal).Int.Int64() != 1 {
		t.Fatalf("Canon should have sorted the commutative sequence")
	}
}
