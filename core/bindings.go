package core

import (
	"sort"
	"strings"
)

// Bindings is a persistent, value-typed mapping from pattern variable name
// to the atom it is bound to (spec.md §4.2). Every mutating operation
// returns a new Bindings value; the receiver is left untouched, per
// spec.md §5 ("Bindings are treated as persistent values: update returns a
// new value, the old is untouched").
//
// Grounded on the teacher's core/match.go PatternBindings
// (map[string]Expr); the copy-on-write discipline itself is deliberately
// the simple "always copy" version rather than the ref-counted
// mutate-in-place discipline of the teacher's core/bindings.go Captures,
// because Bindings values here are routinely shared across independent
// backtracking branches and a ref-counting scheme would need every branch
// point to remember to call Inc() — a correctness trap this repository
// does not need to accept for the sizes of bindings map involved.
type Bindings struct {
	values map[string]Atom
}

// EmptyBindings returns a Bindings with no entries.
func EmptyBindings() Bindings {
	return Bindings{}
}

// Lookup returns the atom bound to name, if any.
func (b Bindings) Lookup(name string) (Atom, bool) {
	if b.values == nil {
		return nil, false
	}
	a, ok := b.values[name]
	return a, ok
}

func isAnyRootType(a Atom) bool {
	nrt, ok := a.(NamedRootType)
	return ok && nrt.Name == RootAny
}

// Add returns a new Bindings with name bound to value. If name is already
// bound to a structurally-different atom, Add fails (the second return
// value is false) and the receiver is returned unchanged. A prior binding
// to the universal type ANY is treated as compatible with any new value,
// and is replaced by the more specific one (spec.md's Design Notes, second
// Open Question: the richer add_bind semantics).
func (b Bindings) Add(name string, value Atom) (Bindings, bool) {
	if existing, ok := b.Lookup(name); ok {
		if isAnyRootType(existing) {
			return b.set(name, value), true
		}
		if existing.Equal(value) {
			return b, true
		}
		return b, false
	}
	return b.set(name, value), true
}

func (b Bindings) set(name string, value Atom) Bindings {
	out := make(map[string]Atom, len(b.values)+1)
	for k, v := range b.values {
		out[k] = v
	}
	out[name] = value
	return Bindings{values: out}
}

// Merge returns the union of b and other, added entry by entry via Add.
// Two bindings are compatible iff on every shared key they map to
// structurally-equal atoms (spec.md §3); Merge fails as soon as one entry
// of other is incompatible with the accumulated result.
func (b Bindings) Merge(other Bindings) (Bindings, bool) {
	result := b
	for name, value := range other.values {
		var ok bool
		result, ok = result.Add(name, value)
		if !ok {
			return b, false
		}
	}
	return result, true
}

// Names returns the bound variable names in sorted order.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b.values))
	for k := range b.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound variables.
func (b Bindings) Len() int { return len(b.values) }

// Equal reports whether b and other bind exactly the same names to
// structurally-equal atoms.
func (b Bindings) Equal(other Bindings) bool {
	if len(b.values) != len(other.values) {
		return false
	}
	for k, v := range b.values {
		ov, ok := other.values[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (b Bindings) String() string {
	names := b.Names()
	parts := make([]string, len(names))
	for i, n := range names {
		v, _ := b.Lookup(n)
		parts[i] = n + " -> " + v.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
