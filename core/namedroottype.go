package core

// NamedRootType is one of the small closed set of root-type symbols a
// Variable's type constraint or a Literal's declared type can reference.
// Grounded on the teacher's MatchesType/IsBuiltinType closed type-name list
// (core/patterns.go), generalised into a first-class atom so it can appear
// directly as a Variable's Type field or be matched structurally.
type NamedRootType struct {
	Name string
}

// The closed set named in spec.md §3.
const (
	RootAny       = "ANY"
	RootBoolean   = "BOOLEAN"
	RootInteger   = "INTEGER"
	RootString    = "STRING"
	RootSymbol    = "SYMBOL"
	RootFloat     = "FLOAT"
	RootBitString = "BITSTRING"
	RootOpRef     = "OPREF"
	RootRSRef     = "RSREF"
	RootTypeOfVar = "^TYPE"
)

var rootTypeNames = map[string]bool{
	RootAny: true, RootBoolean: true, RootInteger: true, RootString: true,
	RootSymbol: true, RootFloat: true, RootBitString: true, RootOpRef: true,
	RootRSRef: true, RootTypeOfVar: true,
}

// IsNamedRootType reports whether name is one of the closed root-type
// symbols.
func IsNamedRootType(name string) bool {
	return rootTypeNames[name]
}

func NewNamedRootType(name string) NamedRootType {
	return NamedRootType{Name: name}
}

func (t NamedRootType) Kind() Kind        { return KindNamedRootType }
func (t NamedRootType) Depth() int        { return 0 }
func (t NamedRootType) IsConstant() bool  { return true }
func (t NamedRootType) String() string    { return t.Name }

func (t NamedRootType) Equal(other Atom) bool {
	o, ok := other.(NamedRootType)
	return ok && o.Name == t.Name
}

// MatchesRootType reports whether the kind of value (as opposed to the
// runtime NamedRootType atom itself) conforms to the given named root
// type. RootAny matches everything.
func MatchesRootType(root string, value Atom) bool {
	if root == "" || root == RootAny {
		return true
	}
	switch root {
	case RootBoolean:
		lit, ok := value.(Literal)
		return ok && lit.LKind == LitBoolean
	case RootInteger:
		lit, ok := value.(Literal)
		return ok && lit.LKind == LitInteger
	case RootString:
		lit, ok := value.(Literal)
		return ok && lit.LKind == LitString
	case RootSymbol:
		lit, ok := value.(Literal)
		return ok && lit.LKind == LitSymbol
	case RootFloat:
		lit, ok := value.(Literal)
		return ok && lit.LKind == LitFloat
	case RootBitString:
		lit, ok := value.(Literal)
		return ok && lit.LKind == LitBitString
	case RootOpRef:
		_, ok := value.(OperatorRef)
		return ok
	case RootRSRef:
		_, ok := value.(SpecialForm)
		return ok && value.(SpecialForm).Tag == "RSRef"
	case RootTypeOfVar:
		_, ok := value.(NamedRootType)
		return ok
	default:
		return false
	}
}
