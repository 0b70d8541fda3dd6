package core

import "testing"

func TestBindingsAddAndLookup(t *testing.T) {
	b := EmptyBindings()
	b, ok := b.Add("x", NewIntegerInt64(5))
	if !ok {
		t.Fatalf("Add should succeed for a fresh name")
	}
	v, found := b.Lookup("x")
	if !found || !v.Equal(NewIntegerInt64(5)) {
		t.Fatalf("Lookup(x) = %v, %v; want 5, true", v, found)
	}
}

func TestBindingsAddConsistentRebind(t *testing.T) {
	b, _ := EmptyBindings().Add("x", NewIntegerInt64(5))
	b2, ok := b.Add("x", NewIntegerInt64(5))
	if !ok {
		t.Fatalf("rebinding to the same value should succeed")
	}
	if !b2.Equal(b) {
		t.Fatalf("rebinding to the same value should not change the bindings")
	}
}

func TestBindingsAddInconsistentRebindFails(t *testing.T) {
	b, _ := EmptyBindings().Add("x", NewIntegerInt64(5))
	_, ok := b.Add("x", NewIntegerInt64(6))
	if ok {
		t.Fatalf("rebinding to a different value should fail")
	}
}

func TestBindingsAddAnyIsCompatibleWithAnything(t *testing.T) {
	b, _ := EmptyBindings().Add("x", NewNamedRootType(RootAny))
	b2, ok := b.Add("x", NewIntegerInt64(42))
	if !ok {
		t.Fatalf("a prior ANY binding should accept a concrete value")
	}
	v, _ := b2.Lookup("x")
	if !v.Equal(NewIntegerInt64(42)) {
		t.Fatalf("Lookup(x) = %v, want 42 (the more specific value should replace ANY)", v)
	}
}

func TestBindingsDoesNotMutateReceiver(t *testing.T) {
	b := EmptyBindings()
	b2, _ := b.Add("x", NewIntegerInt64(1))
	if _, found := b.Lookup("x"); found {
		t.Fatalf("Add must not mutate the receiver")
	}
	if _, found := b2.Lookup("x"); !found {
		t.Fatalf("Add must return a bindings with the new entry")
	}
}

func TestBindingsMerge(t *testing.T) {
	a, _ := EmptyBindings().Add("x", NewIntegerInt64(1))
	b, _ := EmptyBindings().Add("y", NewIntegerInt64(2))
	merged, ok := a.Merge(b)
	if !ok {
		t.Fatalf("disjoint bindings should merge")
	}
	if merged.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", merged.Len())
	}
}

func TestBindingsMergeConflict(t *testing.T) {
	a, _ := EmptyBindings().Add("x", NewIntegerInt64(1))
	b, _ := EmptyBindings().Add("x", NewIntegerInt64(2))
	_, ok := a.Merge(b)
	if ok {
		t.Fatalf("conflicting bindings should not merge")
	}
}
