// Package parse implements the small textual syntax matchdemo accepts on
// the command line: integers, strings, symbols, booleans, $variables,
// $$meta-variables, and Name[arg, arg, ...] operator applications. It is
// a demo convenience, not part of the matching engine itself, written
// fresh in the teacher's hand-rolled recursive-descent style (the
// teacher's own lexer.go/parser.go) rather than ported from it, since the
// surface syntax here is a different, much smaller language purpose-built
// to exercise the atom algebra from a shell prompt.
package parse

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/client9/matchcore/core"
	"github.com/client9/matchcore/internal/oplib"
)

// Parser reads one atom expression from a fixed input string.
type Parser struct {
	input string
	pos   int
	lib   *oplib.Library
}

// New returns a Parser over input, resolving operator properties for
// Name[...] applications against lib (may be nil, in which case such
// applications get an empty AlgProp - no associativity/commutativity).
func New(input string, lib *oplib.Library) *Parser {
	return &Parser{input: input, lib: lib}
}

// Parse parses exactly one atom expression, erroring on trailing
// non-whitespace input.
func Parse(input string, lib *oplib.Library) (core.Atom, error) {
	p := New(input, lib)
	a, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("parse: unexpected trailing input at %d: %q", p.pos, p.input[p.pos:])
	}
	return a, nil
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *Parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) parseAtom() (core.Atom, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("parse: unexpected end of input")
	}
	switch c := p.peek(); {
	case c == '"':
		return p.parseString()
	case c == '$':
		return p.parseVariable()
	case c == '[':
		return p.parseList()
	case c == '-' || unicode.IsDigit(rune(c)):
		return p.parseNumber()
	case isIdentStart(rune(c)):
		return p.parseIdentOrApply()
	default:
		return nil, fmt.Errorf("parse: unexpected character %q at %d", c, p.pos)
	}
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentPart(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }

func (p *Parser) parseString() (core.Atom, error) {
	p.pos++ // opening quote
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != '"' {
		p.pos++
	}
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("parse: unterminated string")
	}
	s := p.input[start:p.pos]
	p.pos++ // closing quote
	return core.NewString(s), nil
}

func (p *Parser) parseVariable() (core.Atom, error) {
	meta := false
	p.pos++ // '$'
	if p.peek() == '$' {
		meta = true
		p.pos++
	}
	start := p.pos
	for p.pos < len(p.input) && isIdentPart(rune(p.input[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("parse: expected variable name at %d", p.pos)
	}
	name := p.input[start:p.pos]
	var typ core.Atom
	if p.peek() == ':' {
		p.pos++
		tstart := p.pos
		for p.pos < len(p.input) && isIdentPart(rune(p.input[p.pos])) {
			p.pos++
		}
		typeName := strings.ToUpper(p.input[tstart:p.pos])
		if !core.IsNamedRootType(typeName) {
			return nil, fmt.Errorf("parse: unknown type %q", typeName)
		}
		typ = core.NewNamedRootType(typeName)
	}
	return core.Variable{Name: name, Meta: meta, Type: typ}, nil
}

func (p *Parser) parseNumber() (core.Atom, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && unicode.IsDigit(rune(p.input[p.pos])) {
		p.pos++
	}
	n, ok := new(big.Int).SetString(p.input[start:p.pos], 10)
	if !ok {
		return nil, fmt.Errorf("parse: invalid integer at %d", start)
	}
	return core.NewInteger(n), nil
}

func (p *Parser) parseIdentOrApply() (core.Atom, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentPart(rune(p.input[p.pos])) {
		p.pos++
	}
	name := p.input[start:p.pos]

	switch name {
	case "true":
		return core.True, nil
	case "false":
		return core.False, nil
	}

	if p.peek() != '[' {
		return core.NewSymbolLiteral(name), nil
	}

	p.pos++ // '['
	var args []core.Atom
	p.skipSpace()
	if p.peek() != ']' {
		for {
			a, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			p.skipSpace()
			if p.peek() == ',' {
				p.pos++
				continue
			}
			break
		}
	}
	p.skipSpace()
	if p.peek() != ']' {
		return nil, fmt.Errorf("parse: expected ']' at %d", p.pos)
	}
	p.pos++

	props := core.AlgProp{}
	if p.lib != nil {
		if op, ok := p.lib.Lookup(name); ok {
			props = op.Props
		}
	}
	seq := core.NewAtomSeq(props, args, core.DefaultComparator{})
	return core.NewOperatorApply(core.NewOperatorRef(name), seq), nil
}

func (p *Parser) parseList() (core.Atom, error) {
	p.pos++ // '['
	var args []core.Atom
	p.skipSpace()
	if p.peek() != ']' {
		for {
			a, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			p.skipSpace()
			if p.peek() == ',' {
				p.pos++
				p.skipSpace()
				continue
			}
			break
		}
	}
	p.skipSpace()
	if p.peek() != ']' {
		return nil, fmt.Errorf("parse: expected ']' at %d", p.pos)
	}
	p.pos++
	return core.NewAtomSeq(core.AlgProp{}, args, nil), nil
}
