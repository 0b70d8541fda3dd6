package match

import (
	"sort"
	"testing"

	"github.com/client9/matchcore/core"
)

func TestMatchWithResidualLeavesUnclaimedSubjects(t *testing.T) {
	ctx := testContext()
	pattern := []core.Atom{core.NewIntegerInt64(2), core.NewVariable("rest")}
	subject := []core.Atom{core.NewIntegerInt64(1), core.NewIntegerInt64(2), core.NewIntegerInt64(3)}

	it := MatchWithResidual(ctx, pattern, subject, core.EmptyBindings())
	if !it.Next(ctx) {
		t.Fatalf("expected at least one residual candidate")
	}
	res := it.Current()
	if len(res.Residual) != 2 {
		t.Fatalf("got %d residual indices, want 2", len(res.Residual))
	}
	sort.Ints(res.Residual)
	if res.Residual[0] != 0 || res.Residual[1] != 2 {
		t.Fatalf("residual = %v, want [0 2]", res.Residual)
	}
}

func TestMatchWithResidualFailsWhenConstantAbsent(t *testing.T) {
	ctx := testContext()
	pattern := []core.Atom{core.NewIntegerInt64(99)}
	subject := []core.Atom{core.NewIntegerInt64(1), core.NewIntegerInt64(2)}

	it := MatchWithResidual(ctx, pattern, subject, core.EmptyBindings())
	if it.Next(ctx) {
		t.Fatalf("expected no candidates when the constant is absent from the subject")
	}
}

func TestEliminateConstants(t *testing.T) {
	subject := []core.Atom{core.NewIntegerInt64(1), core.NewIntegerInt64(2)}
	if !eliminateConstants([]core.Atom{core.NewIntegerInt64(1), core.NewVariable("x")}, subject) {
		t.Fatalf("expected feasibility when the constant is present")
	}
	if eliminateConstants([]core.Atom{core.NewIntegerInt64(9)}, subject) {
		t.Fatalf("expected infeasibility when the constant is absent")
	}
}

func TestPeelOrWrap(t *testing.T) {
	one := PeelOrWrap(core.AlgProp{}, []core.Atom{core.NewIntegerInt64(1)}, nil)
	if _, ok := one.(core.Literal); !ok {
		t.Fatalf("a single-element group should peel to the bare atom")
	}
	two := PeelOrWrap(core.AlgProp{}, []core.Atom{core.NewIntegerInt64(1), core.NewIntegerInt64(2)}, nil)
	if _, ok := two.(core.AtomSeq); !ok {
		t.Fatalf("a multi-element group with no governing operator should wrap into a bare AtomSeq")
	}

	op := core.NewOperatorRef("f")
	wrapped := PeelOrWrap(core.AlgProp{}, []core.Atom{core.NewIntegerInt64(1), core.NewIntegerInt64(2)}, &op)
	app, ok := wrapped.(core.Apply)
	if !ok {
		t.Fatalf("a multi-element group under a governing operator should wrap into an Apply")
	}
	opRef, args, isOp := app.Operator()
	if !isOp || opRef.Name != "f" || args.Len() != 2 {
		t.Fatalf("wrapped = %v, want f(1, 2)", wrapped)
	}
}

func TestApplyMandatoryBindings(t *testing.T) {
	b, ok := ApplyMandatoryBindings(core.EmptyBindings(), map[string]core.Atom{"x": core.NewIntegerInt64(1)})
	if !ok {
		t.Fatalf("expected mandatory bindings to apply cleanly")
	}
	v, found := b.Lookup("x")
	if !found || !v.Equal(core.NewIntegerInt64(1)) {
		t.Fatalf("x should be bound to 1")
	}
}
