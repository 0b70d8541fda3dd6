package core

import (
	"fmt"
	"math/big"
)

// LiteralKind identifies which of the closed set of literal value types a
// Literal atom carries.
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitFloat
	LitBitString
	LitString
	LitSymbol
	LitBoolean
)

func (lk LiteralKind) String() string {
	switch lk {
	case LitInteger:
		return "Integer"
	case LitFloat:
		return "Float"
	case LitBitString:
		return "BitString"
	case LitString:
		return "String"
	case LitSymbol:
		return "Symbol"
	case LitBoolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Float holds an arbitrary-radix significand/exponent pair, per spec:
// value = Significand * Radix^Exponent.
type Float struct {
	Significand *big.Float
	Exponent    int
	Radix       int
}

func (f Float) String() string {
	if f.Radix == 10 || f.Radix == 0 {
		return fmt.Sprintf("%se%d", f.Significand.Text('g', -1), f.Exponent)
	}
	return fmt.Sprintf("%s*%d^%d", f.Significand.Text('g', -1), f.Radix, f.Exponent)
}

func (f Float) equal(other Float) bool {
	if f.Exponent != other.Exponent || f.Radix != other.Radix {
		return false
	}
	if f.Significand == nil || other.Significand == nil {
		return f.Significand == other.Significand
	}
	return f.Significand.Cmp(other.Significand) == 0
}

// Literal is an immutable leaf atom: integer, float, bit-string, string,
// symbol, or boolean, per spec.md §3. Exactly one of the typed fields is
// meaningful, selected by LKind.
type Literal struct {
	LKind LiteralKind

	Int    *big.Int
	Flt    Float
	Bits   []byte
	Str    string
	Sym    string
	Boolop bool
}

// Distinguished boolean literals, per spec.md §3.
var (
	True  = Literal{LKind: LitBoolean, Boolop: true}
	False = Literal{LKind: LitBoolean, Boolop: false}
)

func NewInteger(v *big.Int) Literal {
	return Literal{LKind: LitInteger, Int: v}
}

func NewIntegerInt64(v int64) Literal {
	return Literal{LKind: LitInteger, Int: big.NewInt(v)}
}

func NewFloat(significand *big.Float, exponent, radix int) Literal {
	return Literal{LKind: LitFloat, Flt: Float{Significand: significand, Exponent: exponent, Radix: radix}}
}

func NewBitString(bits []byte) Literal {
	cp := make([]byte, len(bits))
	copy(cp, bits)
	return Literal{LKind: LitBitString, Bits: cp}
}

func NewString(s string) Literal {
	return Literal{LKind: LitString, Str: s}
}

func NewSymbolLiteral(name string) Literal {
	return Literal{LKind: LitSymbol, Sym: name}
}

func NewBoolean(b bool) Literal {
	if b {
		return True
	}
	return False
}

func (l Literal) Kind() Kind    { return KindLiteral }
func (l Literal) Depth() int    { return 0 }
func (l Literal) IsConstant() bool { return true }

func (l Literal) String() string {
	switch l.LKind {
	case LitInteger:
		if l.Int == nil {
			return "0"
		}
		return l.Int.String()
	case LitFloat:
		return l.Flt.String()
	case LitBitString:
		return fmt.Sprintf("%x", l.Bits)
	case LitString:
		return fmt.Sprintf("%q", l.Str)
	case LitSymbol:
		return l.Sym
	case LitBoolean:
		if l.Boolop {
			return "true"
		}
		return "false"
	default:
		return "<invalid-literal>"
	}
}

func (l Literal) Equal(other Atom) bool {
	o, ok := other.(Literal)
	if !ok || o.LKind != l.LKind {
		return false
	}
	switch l.LKind {
	case LitInteger:
		if l.Int == nil || o.Int == nil {
			return l.Int == o.Int
		}
		return l.Int.Cmp(o.Int) == 0
	case LitFloat:
		return l.Flt.equal(o.Flt)
	case LitBitString:
		if len(l.Bits) != len(o.Bits) {
			return false
		}
		for i := range l.Bits {
			if l.Bits[i] != o.Bits[i] {
				return false
			}
		}
		return true
	case LitString:
		return l.Str == o.Str
	case LitSymbol:
		return l.Sym == o.Sym
	case LitBoolean:
		return l.Boolop == o.Boolop
	default:
		return false
	}
}
