package core

// OperatorRef is a reference to an operator by name, resolved against an
// external operator library (spec.md §6). The matcher never holds an
// Operator value directly inside a pattern or subject term — only the
// lightweight reference — so that operator declarations can be looked up
// lazily and the library can remain read-only during a match.
type OperatorRef struct {
	Name string
}

func NewOperatorRef(name string) OperatorRef {
	return OperatorRef{Name: name}
}

func (r OperatorRef) Kind() Kind        { return KindOperatorRef }
func (r OperatorRef) Depth() int        { return 0 }
func (r OperatorRef) IsConstant() bool  { return true }
func (r OperatorRef) String() string    { return r.Name }

func (r OperatorRef) Equal(other Atom) bool {
	o, ok := other.(OperatorRef)
	return ok && o.Name == r.Name
}

// Operator is the full declaration an operator library resolves an
// OperatorRef's name to. Grounded on the teacher's
// engine/function_registry.go FunctionDef/FunctionRegistry shape
// (name -> declared metadata), simplified to exactly what spec.md §6 says
// the matcher is allowed to read: the name and the declared AlgProp.
type Operator struct {
	Name   string
	Type   Atom // declared result/parameter type, opaque to the matcher
	Params AtomSeq
	Props  AlgProp
}

func (op Operator) Kind() Kind       { return KindOperator }
func (op Operator) Depth() int       { return 1 + op.Params.Depth() }
func (op Operator) IsConstant() bool { return true }
func (op Operator) String() string   { return op.Name }

func (op Operator) Equal(other Atom) bool {
	o, ok := other.(Operator)
	return ok && o.Name == op.Name
}

// Properties returns the declared AlgProp for this operator, the only
// piece of an Operator's declaration the matcher consults beyond its name.
func (op Operator) Properties() AlgProp { return op.Props }
