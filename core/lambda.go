package core

import "fmt"

// Lambda is used by rewriting layers above the matcher; the matcher treats
// it as an opaque structural atom beyond capture-safe renaming, per
// spec.md §3/§4.4's "neither unification nor higher-order matching on
// lambda bodies" Non-goal.
type Lambda struct {
	Param Variable
	Body  Atom
}

func NewLambda(param Variable, body Atom) Lambda {
	return Lambda{Param: param, Body: body}
}

func (l Lambda) Kind() Kind { return KindLambda }

func (l Lambda) Depth() int {
	return maxDepth(l.Param, l.Body)
}

func (l Lambda) IsConstant() bool {
	return allConstant(l.Param, l.Body)
}

func (l Lambda) String() string {
	return fmt.Sprintf("Lambda(%s, %s)", l.Param.String(), l.Body.String())
}

func (l Lambda) Equal(other Atom) bool {
	o, ok := other.(Lambda)
	return ok && l.Param.Equal(o.Param) && l.Body.Equal(o.Body)
}

// MapPair, SpecialForm and BindingsAtom are opaque to matching beyond
// structural equality (spec.md §3).

type MapPair struct {
	Left  Atom
	Right Atom
}

func NewMapPair(left, right Atom) MapPair {
	return MapPair{Left: left, Right: right}
}

func (m MapPair) Kind() Kind { return KindMapPair }

func (m MapPair) Depth() int {
	return maxDepth(m.Left, m.Right)
}

func (m MapPair) IsConstant() bool {
	return allConstant(m.Left, m.Right)
}

func (m MapPair) String() string {
	return fmt.Sprintf("%s -> %s", m.Left.String(), m.Right.String())
}

func (m MapPair) Equal(other Atom) bool {
	o, ok := other.(MapPair)
	return ok && m.Left.Equal(o.Left) && m.Right.Equal(o.Right)
}

type SpecialForm struct {
	Tag     string
	Content Atom
}

func NewSpecialForm(tag string, content Atom) SpecialForm {
	return SpecialForm{Tag: tag, Content: content}
}

func (f SpecialForm) Kind() Kind { return KindSpecialForm }

func (f SpecialForm) Depth() int {
	if f.Content == nil {
		return 0
	}
	return 1 + f.Content.Depth()
}

func (f SpecialForm) IsConstant() bool {
	return f.Content == nil || f.Content.IsConstant()
}

func (f SpecialForm) String() string {
	if f.Content == nil {
		return fmt.Sprintf("%s()", f.Tag)
	}
	return fmt.Sprintf("%s(%s)", f.Tag, f.Content.String())
}

func (f SpecialForm) Equal(other Atom) bool {
	o, ok := other.(SpecialForm)
	if !ok || o.Tag != f.Tag {
		return false
	}
	if f.Content == nil || o.Content == nil {
		return f.Content == nil && o.Content == nil
	}
	return f.Content.Equal(o.Content)
}

// BindingsAtom embeds a completed Bindings value as a first-class atom, so
// rewriting layers above the matcher can carry a set of bindings as an
// ordinary term (spec.md §3).
type BindingsAtom struct {
	Binds Bindings
}

func NewBindingsAtom(b Bindings) BindingsAtom {
	return BindingsAtom{Binds: b}
}

func (b BindingsAtom) Kind() Kind       { return KindBindingsAtom }
func (b BindingsAtom) Depth() int       { return 0 }
func (b BindingsAtom) IsConstant() bool { return true }
func (b BindingsAtom) String() string   { return b.Binds.String() }

func (b BindingsAtom) Equal(other Atom) bool {
	o, ok := other.(BindingsAtom)
	return ok && b.Binds.Equal(o.Binds)
}
