package match

import "github.com/client9/matchcore/core"

// OutcomeKind tags which of the three variants an Outcome carries.
type OutcomeKind int

const (
	// OutcomeFail means the pattern does not match the subject under any
	// binding.
	OutcomeFail OutcomeKind = iota
	// OutcomeMatch means exactly one binding was found and no further
	// alternatives need to be searched.
	OutcomeMatch
	// OutcomeMany means the caller must enumerate an Iterator to see the
	// (possibly zero, possibly infinite) candidate bindings.
	OutcomeMany
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFail:
		return "Fail"
	case OutcomeMatch:
		return "Match"
	case OutcomeMany:
		return "Many"
	default:
		return "Unknown"
	}
}

// Outcome is the sum type every matcher returns: Fail, a single Match, or
// Many candidate bindings reached only by enumerating an Iterator
// (spec.md §5). It is an immutable value; no method on it mutates state.
type Outcome struct {
	kind     OutcomeKind
	bindings core.Bindings
	iter     Iterator
	failInfo string
}

// Fail builds a Fail outcome carrying a short, human-readable reason.
func Fail(reason string) Outcome {
	return Outcome{kind: OutcomeFail, failInfo: reason}
}

// MatchOne builds a Match outcome carrying exactly one binding.
func MatchOne(b core.Bindings) Outcome {
	return Outcome{kind: OutcomeMatch, bindings: b}
}

// Many builds a Many outcome wrapping an Iterator of candidate bindings.
func Many(it Iterator) Outcome {
	return Outcome{kind: OutcomeMany, iter: it}
}

// Kind reports which variant this Outcome holds.
func (o Outcome) Kind() OutcomeKind { return o.kind }

// Bindings returns the single binding of a Match outcome. The second
// return value is false for Fail and Many outcomes.
func (o Outcome) Bindings() (core.Bindings, bool) {
	if o.kind != OutcomeMatch {
		return core.Bindings{}, false
	}
	return o.bindings, true
}

// Iterator returns the Many outcome's Iterator. The second return value
// is false for Fail and Match outcomes.
func (o Outcome) Iterator() (Iterator, bool) {
	if o.kind != OutcomeMany {
		return nil, false
	}
	return o.iter, true
}

// FailInfo returns the Fail outcome's reason string, or "" otherwise.
func (o Outcome) FailInfo() string {
	if o.kind != OutcomeFail {
		return ""
	}
	return o.failInfo
}

// Iterator is the lazy, single-pass, cooperative enumeration protocol a
// Many outcome exposes: repeated Next calls advance to the next candidate
// binding, returning false once exhausted. Modelled after bufio.Scanner
// and database/sql.Rows rather than a recursive generator, so deep search
// trees (long AtomSeqs under A/AC matching) never grow the Go call stack
// per candidate (spec.md §5's stack-safety requirement).
type Iterator interface {
	// Next advances to the next candidate binding. It returns false when
	// no more candidates remain, or when ctx has expired.
	Next(ctx Context) bool
	// Bindings returns the binding found by the most recent Next call
	// that returned true. Calling it before any successful Next, or after
	// Next has returned false, is undefined.
	Bindings() core.Bindings
}

// emptyIterator yields no candidates.
type emptyIterator struct{}

func (emptyIterator) Next(Context) bool        { return false }
func (emptyIterator) Bindings() core.Bindings { return core.Bindings{} }

// EmptyIterator returns an Iterator with no candidates.
func EmptyIterator() Iterator { return emptyIterator{} }

// singleIterator yields exactly one candidate binding.
type singleIterator struct {
	b    core.Bindings
	done bool
}

func (it *singleIterator) Next(Context) bool {
	if it.done {
		return false
	}
	it.done = true
	return true
}

func (it *singleIterator) Bindings() core.Bindings { return it.b }

// sliceIterator yields a precomputed, finite slice of candidate bindings,
// for callers that already hold every candidate up front.
type sliceIterator struct {
	items []core.Bindings
	pos   int
}

// NewSliceIterator returns an Iterator over a precomputed slice of
// bindings.
func NewSliceIterator(items []core.Bindings) Iterator {
	return &sliceIterator{items: items, pos: -1}
}

func (it *sliceIterator) Next(Context) bool {
	it.pos++
	return it.pos < len(it.items)
}

func (it *sliceIterator) Bindings() core.Bindings {
	return it.items[it.pos]
}

// FromOutcome adapts any Outcome into an Iterator: Fail becomes empty,
// Match becomes a single-candidate Iterator, and Many is unwrapped
// directly. This is the common tail of every combinator below, since
// matcher helpers frequently need to treat a freshly-computed Outcome as
// just another Iterator to chain from.
func FromOutcome(o Outcome) Iterator {
	switch o.kind {
	case OutcomeFail:
		return emptyIterator{}
	case OutcomeMatch:
		return &singleIterator{b: o.bindings}
	case OutcomeMany:
		return o.iter
	default:
		return emptyIterator{}
	}
}

// ToOutcome wraps an Iterator as a Many outcome without consuming it. It
// always returns Many, even for an Iterator that turns out to be empty,
// since emptiness is only known by advancing it. Matchers that only ever
// produce Iterators use this to satisfy the external Outcome-returning
// contract.
func ToOutcome(it Iterator) Outcome {
	return Many(it)
}

// bindIterator is the core engine behind Bind: it holds the outer
// Iterator (src) and, whenever src advances, asks f for the inner
// Iterator to exhaust before pulling the next outer candidate. The
// advance loop is written iteratively (no recursion) so an arbitrarily
// long chain of exhausted inner iterators never grows the call stack.
type bindIterator struct {
	src         Iterator
	f           func(core.Bindings) Iterator
	cur         Iterator
	curBindings core.Bindings
}

// Bind sequences it with, for every binding it yields, the Iterator f
// produces from that binding - the Iterator-level analogue of spec.md's
// "iter ~ f" combinator. Bind(it, f) yields exactly the concatenation, in
// order, of f(b) for every b that it yields.
func Bind(it Iterator, f func(core.Bindings) Iterator) Iterator {
	return &bindIterator{src: it, f: f}
}

func (it *bindIterator) Next(ctx Context) bool {
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
		if !it.src.Next(ctx) {
			return false
		}
		it.cur = it.f(it.src.Bindings())
	}
}

func (it *bindIterator) Bindings() core.Bindings { return it.curBindings }

// FlatMap sequences it with, for every binding it yields, the Outcome g
// produces from that binding - the Iterator-level analogue of spec.md's
// "iter ~> g" combinator. It is Bind composed with FromOutcome.
func FlatMap(it Iterator, g func(core.Bindings) Outcome) Iterator {
	return Bind(it, func(b core.Bindings) Iterator {
		return FromOutcome(g(b))
	})
}

// filterIterator yields only the bindings of it that satisfy keep.
type filterIterator struct {
	src  Iterator
	keep func(core.Bindings) bool
	cur  core.Bindings
}

// Filter restricts it to the bindings satisfying keep, looping
// iteratively past rejected candidates.
func Filter(it Iterator, keep func(core.Bindings) bool) Iterator {
	return &filterIterator{src: it, keep: keep}
}

func (it *filterIterator) Next(ctx Context) bool {
	for {
		if ctx.Expired() {
			return false
		}
		if !it.src.Next(ctx) {
			return false
		}
		b := it.src.Bindings()
		if it.keep(b) {
			it.cur = b
			return true
		}
	}
}

func (it *filterIterator) Bindings() core.Bindings { return it.cur }

// concatIterator chains a fixed sequence of Iterators one after another.
type concatIterator struct {
	rest []Iterator
	cur  Iterator
}

// Concat yields every candidate of each Iterator in order.
func Concat(iters ...Iterator) Iterator {
	if len(iters) == 0 {
		return emptyIterator{}
	}
	return &concatIterator{cur: iters[0], rest: iters[1:]}
}

func (it *concatIterator) Next(ctx Context) bool {
	for {
		if ctx.Expired() {
			return false
		}
		if it.cur.Next(ctx) {
			return true
		}
		if len(it.rest) == 0 {
			return false
		}
		it.cur, it.rest = it.rest[0], it.rest[1:]
	}
}

func (it *concatIterator) Bindings() core.Bindings { return it.cur.Bindings() }

// Collect drains it into a slice, for tests and small finite searches.
// ctx supplies the cancellation/deadline check on every Next call.
func Collect(ctx Context, it Iterator) []core.Bindings {
	var out []core.Bindings
	for it.Next(ctx) {
		out = append(out, it.Bindings())
	}
	return out
}
