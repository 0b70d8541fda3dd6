package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/client9/matchcore/core"
)

// Scenario-level tests, one per spec.md §8 end-to-end example. Written
// with testify/require, the pack's scenario-test idiom for multi-step
// assertions, while the package's unit-level tests in the other _test.go
// files stay with plain testing.
func TestScenarioSimpleCommutativeMatch(t *testing.T) {
	ctx := testContext()
	props := opProps(false, true)
	x := core.NewVariable("x")
	pattern := seqApply("Plus", props, core.NewIntegerInt64(1), x)
	subject := seqApply("Plus", props, core.NewIntegerInt64(1), core.NewIntegerInt64(9))

	out := MatchAtom(ctx, pattern, subject, core.EmptyBindings())
	require.Equal(t, OutcomeMany, out.Kind())

	it, ok := out.Iterator()
	require.True(t, ok)
	require.True(t, it.Next(ctx))
	v, found := it.Bindings().Lookup("x")
	require.True(t, found)
	require.True(t, v.Equal(core.NewIntegerInt64(9)))
}

func TestScenarioConstantEliminationUnderAC(t *testing.T) {
	ctx := testContext()
	props := opProps(true, true)

	// No "99" anywhere in the subject, so AC's (unconditional) constant
	// elimination step proves this infeasible before any permutation is
	// tried.
	pattern := seqApply("Plus", props, core.NewIntegerInt64(99), core.NewVariable("rest"))
	subject := seqApply("Plus", props, core.NewIntegerInt64(1), core.NewIntegerInt64(2), core.NewIntegerInt64(3))

	out := MatchAtom(ctx, pattern, subject, core.EmptyBindings())
	require.Equal(t, OutcomeFail, out.Kind())
}

// TestScenarioGroupingUnderAssociative is spec.md §8 scenario 3 verbatim:
// pattern g[A]($a, $b) against subject g[A](1, 2, 3) yields, in grouping
// order, {a -> 1, b -> g(2, 3)} then {a -> g(1, 2), b -> 3}.
func TestScenarioGroupingUnderAssociative(t *testing.T) {
	ctx := testContext()
	props := opProps(true, false)
	a := core.NewVariable("a")
	b := core.NewVariable("b")
	pattern := seqApply("g", props, a, b)
	subject := seqApply("g", props, core.NewIntegerInt64(1), core.NewIntegerInt64(2), core.NewIntegerInt64(3))

	out := MatchAtom(ctx, pattern, subject, core.EmptyBindings())
	require.Equal(t, OutcomeMany, out.Kind())

	it, _ := out.Iterator()

	require.True(t, it.Next(ctx))
	av, _ := it.Bindings().Lookup("a")
	bv, _ := it.Bindings().Lookup("b")
	require.True(t, av.Equal(core.NewIntegerInt64(1)))
	require.True(t, bv.Equal(seqApply("g", props, core.NewIntegerInt64(2), core.NewIntegerInt64(3))))

	require.True(t, it.Next(ctx))
	av, _ = it.Bindings().Lookup("a")
	bv, _ = it.Bindings().Lookup("b")
	require.True(t, av.Equal(seqApply("g", props, core.NewIntegerInt64(1), core.NewIntegerInt64(2))))
	require.True(t, bv.Equal(core.NewIntegerInt64(3)))

	require.False(t, it.Next(ctx))
}

func TestScenarioRepeatedVariableUnderAC(t *testing.T) {
	ctx := testContext()
	props := opProps(true, true)
	x := core.NewVariable("x")
	pattern := seqApply("Plus", props, x, x)
	subject := seqApply("Plus", props, core.NewIntegerInt64(4), core.NewIntegerInt64(4))

	out := MatchAtom(ctx, pattern, subject, core.EmptyBindings())
	require.Equal(t, OutcomeMany, out.Kind())

	it, _ := out.Iterator()
	require.True(t, it.Next(ctx))
	v, found := it.Bindings().Lookup("x")
	require.True(t, found)
	require.True(t, v.Equal(core.NewIntegerInt64(4)))
}

func TestScenarioIdempotentAbsorption(t *testing.T) {
	props := core.AlgProp{Idempotent: core.True}
	seq := core.NewAtomSeq(props, []core.Atom{
		core.NewIntegerInt64(1), core.NewIntegerInt64(1), core.NewIntegerInt64(2),
	}, nil)
	require.Equal(t, 2, seq.Len())

	ctx := testContext()
	pattern := core.NewAtomSeq(props, []core.Atom{core.NewIntegerInt64(1), core.NewIntegerInt64(2)}, nil)
	out := MatchAtom(ctx, pattern, seq, core.EmptyBindings())
	require.Equal(t, OutcomeMatch, out.Kind())
}

func TestScenarioTimeoutAlreadyExpired(t *testing.T) {
	ctx := testContext()
	ctx.Deadline = time.Now().Add(-time.Second) // already expired

	props := opProps(true, true)
	x := core.NewVariable("x")
	pattern := seqApply("Plus", props, x, core.NewVariable("y"), core.NewVariable("z"))
	subject := seqApply("Plus", props, core.NewIntegerInt64(1), core.NewIntegerInt64(2), core.NewIntegerInt64(3))

	out := MatchAtom(ctx, pattern, subject, core.EmptyBindings())
	require.Equal(t, OutcomeFail, out.Kind())
	require.Contains(t, out.FailInfo(), "deadline")
}
