package match

import "github.com/client9/matchcore/core"

// matchAssociative matches pattern against subject by partitioning
// subject into len(pattern) contiguous, non-empty groups (via Grouping)
// and matching each pattern element against its group - peeled to the
// bare atom for a one-element group, wrapped as an application of the
// governing operator op otherwise (spec.md §4.6). Apart from the size
// checks (Match for two empty lists, Fail for an empty pattern or too few
// subject elements) it returns Many, mirroring matchCommutative: more than
// one grouping (or a branching element match within one grouping) may
// succeed.
func matchAssociative(ctx Context, pattern, subject []core.Atom, props core.AlgProp, op *core.OperatorRef, bindings core.Bindings) Outcome {
	p, s := len(pattern), len(subject)
	if p == 0 {
		if s == 0 {
			return MatchOne(bindings)
		}
		return Fail("associative: pattern has no elements but subject is non-empty")
	}
	if s < p {
		return Fail("associative: fewer subject elements than pattern positions")
	}
	it := &associativeIterator{
		ctx:      ctx,
		pattern:  pattern,
		subject:  subject,
		props:    props,
		op:       op,
		grouping: NewGrouping(s, p),
		bindings: bindings,
	}
	return ToOutcome(it)
}

type associativeIterator struct {
	ctx      Context
	pattern  []core.Atom
	subject  []core.Atom
	props    core.AlgProp
	op       *core.OperatorRef
	grouping *Grouping
	cur      Iterator
	bindings core.Bindings

	curBindings core.Bindings
}

func (it *associativeIterator) Next(ctx Context) bool {
	for {
		if ctx.Expired() {
			return false
		}
		if it.cur != nil {
			if it.cur.Next(ctx) {
				it.curBindings = it.cur.Bindings()
				return true
			}
			it.cur = nil
		}
		if !it.grouping.Next() {
			return false
		}
		grouped := make([]core.Atom, len(it.pattern))
		for i, r := range it.grouping.Ranges() {
			grouped[i] = PeelOrWrap(it.props, it.subject[r[0]:r[1]], it.op)
		}
		out := matchPositionalFrom(ctx, it.pattern, grouped, 0, it.bindings)
		switch out.Kind() {
		case OutcomeFail:
			continue
		case OutcomeMatch:
			b, _ := out.Bindings()
			it.curBindings = b
			return true
		case OutcomeMany:
			it.cur, _ = out.Iterator()
		}
	}
}

func (it *associativeIterator) Bindings() core.Bindings { return it.curBindings }
