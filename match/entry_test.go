package match

import (
	"testing"

	"github.com/client9/matchcore/core"
)

func testContext() Context {
	return Context{Comparator: core.DefaultComparator{}}
}

func mustMatch(t *testing.T, out Outcome) core.Bindings {
	t.Helper()
	b, ok := out.Bindings()
	if !ok {
		t.Fatalf("expected a Match outcome, got %s (%s)", out.Kind(), out.FailInfo())
	}
	return b
}

func TestMatchAtomLiteral(t *testing.T) {
	ctx := testContext()
	out := MatchAtom(ctx, core.NewIntegerInt64(5), core.NewIntegerInt64(5), core.EmptyBindings())
	mustMatch(t, out)

	out = MatchAtom(ctx, core.NewIntegerInt64(5), core.NewIntegerInt64(6), core.EmptyBindings())
	if out.Kind() != OutcomeFail {
		t.Fatalf("expected Fail, got %s", out.Kind())
	}
}

func TestMatchAtomVariableBinds(t *testing.T) {
	ctx := testContext()
	pattern := core.NewVariable("x")
	subject := core.NewIntegerInt64(7)
	out := MatchAtom(ctx, pattern, subject, core.EmptyBindings())
	b := mustMatch(t, out)
	v, ok := b.Lookup("x")
	if !ok || !v.Equal(subject) {
		t.Fatalf("x not bound to subject: %v, %v", v, ok)
	}
}

func TestMatchAtomRepeatedVariableRequiresConsistency(t *testing.T) {
	ctx := testContext()
	x := core.NewVariable("x")
	pattern := core.NewAtomSeq(core.AlgProp{}, []core.Atom{x, x}, nil)
	good := core.NewAtomSeq(core.AlgProp{}, []core.Atom{core.NewIntegerInt64(3), core.NewIntegerInt64(3)}, nil)
	bad := core.NewAtomSeq(core.AlgProp{}, []core.Atom{core.NewIntegerInt64(3), core.NewIntegerInt64(4)}, nil)

	mustMatch(t, MatchAtom(ctx, pattern, good, core.EmptyBindings()))

	out := MatchAtom(ctx, pattern, bad, core.EmptyBindings())
	if out.Kind() != OutcomeFail {
		t.Fatalf("expected Fail for inconsistent repeated variable, got %s", out.Kind())
	}
}

func TestMatchAtomTypedVariable(t *testing.T) {
	ctx := testContext()
	pattern := core.Variable{Name: "x", Type: core.NewNamedRootType(core.RootInteger)}

	out := MatchAtom(ctx, pattern, core.NewIntegerInt64(1), core.EmptyBindings())
	mustMatch(t, out)

	out = MatchAtom(ctx, pattern, core.NewString("nope"), core.EmptyBindings())
	if out.Kind() != OutcomeFail {
		t.Fatalf("expected Fail for wrong-typed subject, got %s", out.Kind())
	}
}

func opProps(assoc, comm bool) core.AlgProp {
	return core.AlgProp{Associative: core.NewBoolean(assoc), Commutative: core.NewBoolean(comm)}
}

func seqApply(name string, props core.AlgProp, atoms ...core.Atom) core.Apply {
	return core.NewOperatorApply(core.NewOperatorRef(name), core.NewAtomSeq(props, atoms, core.DefaultComparator{}))
}

func TestMatchAtomSimpleCommutative(t *testing.T) {
	ctx := testContext()
	props := opProps(false, true)
	x := core.NewVariable("x")
	pattern := seqApply("Plus", props, x, core.NewIntegerInt64(2))
	subject := seqApply("Plus", props, core.NewIntegerInt64(2), core.NewIntegerInt64(3))

	out := MatchAtom(ctx, pattern, subject, core.EmptyBindings())
	if out.Kind() != OutcomeMany {
		t.Fatalf("expected Many for a commutative match, got %s", out.Kind())
	}
	it, _ := out.Iterator()
	found := false
	for it.Next(ctx) {
		v, ok := it.Bindings().Lookup("x")
		if ok && v.Equal(core.NewIntegerInt64(3)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected x bound to 3 among the commutative candidates")
	}
}

func TestMatchAtomAssociativeGrouping(t *testing.T) {
	ctx := testContext()
	props := opProps(true, false)
	rest := core.NewVariable("rest")
	pattern := seqApply("List", props, core.NewIntegerInt64(1), rest)
	subject := seqApply("List", props, core.NewIntegerInt64(1), core.NewIntegerInt64(2), core.NewIntegerInt64(3))

	out := MatchAtom(ctx, pattern, subject, core.EmptyBindings())
	if out.Kind() != OutcomeMany {
		t.Fatalf("expected Many for an associative match, got %s", out.Kind())
	}
	it, _ := out.Iterator()
	if !it.Next(ctx) {
		t.Fatalf("expected at least one grouping to match")
	}
	v, ok := it.Bindings().Lookup("rest")
	if !ok {
		t.Fatalf("rest should be bound")
	}
	app, ok := v.(core.Apply)
	if !ok {
		t.Fatalf("rest = %v, want a multi-element group wrapped in the governing operator", v)
	}
	opRef, args, isOp := app.Operator()
	if !isOp || opRef.Name != "List" || args.Len() != 2 {
		t.Fatalf("rest = %v, want List(2, 3)", v)
	}
}

func TestMatchAtomACRepeatedVariable(t *testing.T) {
	ctx := testContext()
	props := opProps(true, true)
	x := core.NewVariable("x")
	y := core.NewVariable("y")
	pattern := seqApply("Plus", props, x, x, y)
	subject := seqApply("Plus", props, core.NewIntegerInt64(2), core.NewIntegerInt64(2), core.NewIntegerInt64(3))

	out := MatchAtom(ctx, pattern, subject, core.EmptyBindings())
	if out.Kind() != OutcomeMany {
		t.Fatalf("expected Many, got %s", out.Kind())
	}
	it, _ := out.Iterator()
	found := false
	for it.Next(ctx) {
		xv, xok := it.Bindings().Lookup("x")
		yv, yok := it.Bindings().Lookup("y")
		if xok && yok && xv.Equal(core.NewIntegerInt64(2)) && yv.Equal(core.NewIntegerInt64(3)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected x=2, y=3 among the AC candidates")
	}
}

func TestMatchSequenceLengthMismatchFails(t *testing.T) {
	ctx := testContext()
	out := MatchSequence(ctx, []core.Atom{core.NewIntegerInt64(1)}, nil, core.AlgProp{}, nil, core.EmptyBindings())
	if out.Kind() != OutcomeFail {
		t.Fatalf("expected Fail for length mismatch, got %s", out.Kind())
	}
}
