package match

import (
	"testing"

	"github.com/client9/matchcore/core"
)

func bindingsWith(name string, v core.Atom) core.Bindings {
	b, _ := core.EmptyBindings().Add(name, v)
	return b
}

func TestBindChainsOuterAndInner(t *testing.T) {
	ctx := testContext()
	outer := NewSliceIterator([]core.Bindings{bindingsWith("x", core.NewIntegerInt64(1)), bindingsWith("x", core.NewIntegerInt64(2))})
	it := Bind(outer, func(b core.Bindings) Iterator {
		x, _ := b.Lookup("x")
		return NewSliceIterator([]core.Bindings{bindingsWith("y", x)})
	})
	var ys []int64
	for it.Next(ctx) {
		y, _ := it.Bindings().Lookup("y")
		ys = append(ys, y.(core.Literal).Int.Int64())
	}
	if len(ys) != 2 || ys[0] != 1 || ys[1] != 2 {
		t.Fatalf("got %v, want [1 2]", ys)
	}
}

func TestFlatMapFailingBranchIsSkipped(t *testing.T) {
	ctx := testContext()
	src := NewSliceIterator([]core.Bindings{bindingsWith("x", core.NewIntegerInt64(1)), bindingsWith("x", core.NewIntegerInt64(2))})
	it := FlatMap(src, func(b core.Bindings) Outcome {
		x, _ := b.Lookup("x")
		if x.Equal(core.NewIntegerInt64(1)) {
			return Fail("skip 1")
		}
		return MatchOne(b)
	})
	count := 0
	for it.Next(ctx) {
		count++
	}
	if count != 1 {
		t.Fatalf("got %d results, want 1", count)
	}
}

func TestFilterKeepsMatchingOnly(t *testing.T) {
	ctx := testContext()
	src := NewSliceIterator([]core.Bindings{bindingsWith("x", core.NewIntegerInt64(1)), bindingsWith("x", core.NewIntegerInt64(2))})
	it := Filter(src, func(b core.Bindings) bool {
		x, _ := b.Lookup("x")
		return x.Equal(core.NewIntegerInt64(2))
	})
	results := Collect(ctx, it)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestConcatYieldsBothInOrder(t *testing.T) {
	ctx := testContext()
	a := NewSliceIterator([]core.Bindings{bindingsWith("x", core.NewIntegerInt64(1))})
	b := NewSliceIterator([]core.Bindings{bindingsWith("x", core.NewIntegerInt64(2))})
	results := Collect(ctx, Concat(a, b))
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestFromOutcomeVariants(t *testing.T) {
	ctx := testContext()
	if Collect(ctx, FromOutcome(Fail("no"))) != nil {
		t.Fatalf("Fail should adapt to an empty iterator")
	}
	got := Collect(ctx, FromOutcome(MatchOne(bindingsWith("x", core.NewIntegerInt64(1)))))
	if len(got) != 1 {
		t.Fatalf("Match should adapt to a single-candidate iterator")
	}
}
