package core

import "fmt"

// Variable matches atoms subject to an optional guard predicate. Name is
// unique within a matching scope. Meta distinguishes the MetaVariable
// flavour used by higher-level rewriting (spec.md §3: "differs only in
// tag"); the matcher's single-atom match contract treats Meta and ordinary
// variables identically.
//
// Grounded on the teacher's PatternInfo (core/patterns.go): VarName and
// TypeName there become Name and Type here, generalised from a bare type
// name string to a structured Type atom (a NamedRootType or nil) plus an
// arbitrary Guard expression, since spec.md §4.4 requires evaluating a
// guard expression, not just a type-name string comparison.
type Variable struct {
	Type    Atom // nil, or a NamedRootType / other type-constraint atom
	Name    string
	Guard   Atom // nil means "no guard beyond Type"; otherwise evaluated via GuardRewriter
	Tags    []string
	ByName  bool // true when the variable was written as a by-name thunk reference
	Meta    bool // true for MetaVariable
}

func NewVariable(name string) Variable {
	return Variable{Name: name}
}

func NewTypedVariable(name string, typ Atom) Variable {
	return Variable{Name: name, Type: typ}
}

func (v Variable) Kind() Kind {
	if v.Meta {
		return KindMetaVariable
	}
	return KindVariable
}

func (v Variable) Depth() int       { return 0 }
func (v Variable) IsConstant() bool { return false }

func (v Variable) String() string {
	prefix := "$"
	if v.Meta {
		prefix = "$$"
	}
	if v.Type != nil {
		return fmt.Sprintf("%s%s:%s", prefix, v.Name, v.Type.String())
	}
	return prefix + v.Name
}

// Equal compares variables structurally: by name, type, meta-ness and
// by-name flag. Two variables with the same name but different guards are
// still considered structurally different patterns, since the guard is
// part of what the pattern demands.
func (v Variable) Equal(other Atom) bool {
	o, ok := other.(Variable)
	if !ok {
		return false
	}
	if v.Name != o.Name || v.Meta != o.Meta || v.ByName != o.ByName {
		return false
	}
	if (v.Type == nil) != (o.Type == nil) {
		return false
	}
	if v.Type != nil && !v.Type.Equal(o.Type) {
		return false
	}
	if (v.Guard == nil) != (o.Guard == nil) {
		return false
	}
	if v.Guard != nil && !v.Guard.Equal(o.Guard) {
		return false
	}
	return true
}
