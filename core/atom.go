// Package core implements the immutable atom model of the matching engine:
// the closed sum of term variants described in the specification, plus the
// bindings map and comparator machinery the matcher consumes.
package core

// Kind tags the concrete variant behind an Atom. It exists so the matcher
// can switch exhaustively on variant the way the teacher's evaluator
// switches on PatternType, without a type-switch at every call site.
type Kind int

const (
	KindLiteral Kind = iota
	KindVariable
	KindMetaVariable
	KindNamedRootType
	KindAtomSeq
	KindOperatorRef
	KindOperator
	KindApply
	KindLambda
	KindMapPair
	KindSpecialForm
	KindBindingsAtom
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindVariable:
		return "Variable"
	case KindMetaVariable:
		return "MetaVariable"
	case KindNamedRootType:
		return "NamedRootType"
	case KindAtomSeq:
		return "AtomSeq"
	case KindOperatorRef:
		return "OperatorRef"
	case KindOperator:
		return "Operator"
	case KindApply:
		return "Apply"
	case KindLambda:
		return "Lambda"
	case KindMapPair:
		return "MapPair"
	case KindSpecialForm:
		return "SpecialForm"
	case KindBindingsAtom:
		return "BindingsAtom"
	default:
		return "Unknown"
	}
}

// Atom is the fundamental interface for every term variant. All
// implementations are immutable and value-equal by structure.
type Atom interface {
	String() string
	Kind() Kind

	// Depth is 1 + the max child depth; leaf atoms (literals, variables,
	// root types, operator references) carry Depth() == 0.
	Depth() int

	// IsConstant reports whether the atom contains no variables anywhere
	// in its structure.
	IsConstant() bool

	Equal(other Atom) bool
}

// IsBindable reports whether a is a plain variable (ordinary or meta).
func IsBindable(a Atom) bool {
	switch a.Kind() {
	case KindVariable, KindMetaVariable:
		return true
	default:
		return false
	}
}

// IsConstant is the free-function form of Atom.IsConstant, provided so
// callers do not need a type assertion when they only have the interface.
func IsConstant(a Atom) bool {
	return a.IsConstant()
}

// Depth is the free-function form of Atom.Depth.
func Depth(a Atom) int {
	return a.Depth()
}

func maxDepth(children ...Atom) int {
	m := -1
	for _, c := range children {
		if d := c.Depth(); d > m {
			m = d
		}
	}
	return m + 1
}

func allConstant(children ...Atom) bool {
	for _, c := range children {
		if !c.IsConstant() {
			return false
		}
	}
	return true
}
