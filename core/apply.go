package core

import "fmt"

// Apply is arbitrary application of a head atom to an argument atom. For
// operator applications Head is an OperatorRef and Arg is an AtomSeq, which
// is the shape the A/C/AC matchers operate on; Apply also represents
// ordinary single-argument application for non-operator heads (spec.md
// §3/§4.4).
type Apply struct {
	Head Atom
	Arg  Atom
}

func NewApply(head, arg Atom) Apply {
	return Apply{Head: head, Arg: arg}
}

// NewOperatorApply builds the common case: an operator reference applied
// to an AtomSeq of arguments.
func NewOperatorApply(op OperatorRef, args AtomSeq) Apply {
	return Apply{Head: op, Arg: args}
}

func (a Apply) Kind() Kind { return KindApply }

func (a Apply) Depth() int {
	return maxDepth(a.Head, a.Arg)
}

func (a Apply) IsConstant() bool {
	return allConstant(a.Head, a.Arg)
}

func (a Apply) String() string {
	return fmt.Sprintf("%s%s", a.Head.String(), a.Arg.String())
}

func (a Apply) Equal(other Atom) bool {
	o, ok := other.(Apply)
	return ok && a.Head.Equal(o.Head) && a.Arg.Equal(o.Arg)
}

// Operator reports the operator reference and argument AtomSeq of this
// Apply when it is an operator application, per spec.md §3's
// "for operator applications head is an OperatorRef and arg is an AtomSeq".
func (a Apply) Operator() (OperatorRef, AtomSeq, bool) {
	opRef, okHead := a.Head.(OperatorRef)
	args, okArg := a.Arg.(AtomSeq)
	return opRef, args, okHead && okArg
}
