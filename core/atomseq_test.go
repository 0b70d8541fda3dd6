package core

import "testing"

func commutativeAssociativeProps() AlgProp {
	return AlgProp{Associative: True, Commutative: True}
}

func TestNewAtomSeqFlattensAssociative(t *testing.T) {
	props := AlgProp{Associative: True}
	inner := NewAtomSeq(props, []Atom{NewIntegerInt64(1), NewIntegerInt64(2)}, nil)
	outer := NewAtomSeq(props, []Atom{inner, NewIntegerInt64(3)}, nil)

	if got, want := outer.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for i, want := range []int64{1, 2, 3} {
		lit, ok := outer.Atoms[i].(Literal)
		if !ok || lit.Int.Int64() != want {
			t.Fatalf("Atoms[%d] = %v, want %d", i, outer.Atoms[i], want)
		}
	}
}

func TestNewAtomSeqCommutativeSort(t *testing.T) {
	props := AlgProp{Commutative: True}
	seq := NewAtomSeq(props, []Atom{NewIntegerInt64(3), NewIntegerInt64(1), NewIntegerInt64(2)}, DefaultComparator{})
	for i, want := range []int64{1, 2, 3} {
		lit := seq.Atoms[i].(Literal)
		if lit.Int.Int64() != want {
			t.Fatalf("Atoms[%d] = %d, want %d", i, lit.Int.Int64(), want)
		}
	}
}

func TestNewAtomSeqIdempotentDedupe(t *testing.T) {
	props := AlgProp{Idempotent: True}
	seq := NewAtomSeq(props, []Atom{NewIntegerInt64(1), NewIntegerInt64(1), NewIntegerInt64(2)}, nil)
	if got, want := seq.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestNewAtomSeqAbsorber(t *testing.T) {
	zero := NewIntegerInt64(0)
	props := AlgProp{Absorber: zero}
	seq := NewAtomSeq(props, []Atom{NewIntegerInt64(5), zero, NewIntegerInt64(7)}, nil)
	if got, want := seq.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if !seq.Atoms[0].Equal(zero) {
		t.Fatalf("Atoms[0] = %v, want the absorber", seq.Atoms[0])
	}
}

func TestNewAtomSeqIdentityDrop(t *testing.T) {
	zero := NewIntegerInt64(0)
	props := AlgProp{Identity: zero}
	seq := NewAtomSeq(props, []Atom{NewIntegerInt64(5), zero, NewIntegerInt64(7)}, nil)
	if got, want := seq.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	allIdentity := NewAtomSeq(props, []Atom{zero, zero}, nil)
	if got, want := allIdentity.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d (identity survives when it would otherwise empty the sequence)", got, want)
	}
}

func TestNewAtomSeqRawSkipsInvariants(t *testing.T) {
	props := commutativeAssociativeProps()
	atoms := []Atom{NewIntegerInt64(3), NewIntegerInt64(1), NewIntegerInt64(1)}
	raw := NewAtomSeqRaw(props, atoms)
	if got, want := raw.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d (raw constructor must not dedupe or sort)", got, want)
	}
	if raw.Atoms[0].(Literal).Int.Int64() != 3 {
		t.Fatalf("raw constructor reordered elements")
	}
}

func TestAtomSeqEqual(t *testing.T) {
	props := AlgProp{Commutative: True}
	a := NewAtomSeq(props, []Atom{NewIntegerInt64(1), NewIntegerInt64(2)}, DefaultComparator{})
	b := NewAtomSeq(props, []Atom{NewIntegerInt64(2), NewIntegerInt64(1)}, DefaultComparator{})
	if !a.Equal(b) {
		t.Fatalf("commutative sequences with the same elements in different input order should canonicalise equal")
	}
}
