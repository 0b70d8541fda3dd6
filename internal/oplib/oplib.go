// Package oplib provides a concrete match.OperatorLibrary backed by a
// small in-memory operator table, the shape matchdemo loads from
// internal/config. Grounded on the teacher's engine/attribute.go
// Flat/Orderless declarations and engine/function_registry.go's
// name-keyed registry, generalised to the matcher's narrower read-only
// Lookup contract.
package oplib

import (
	"github.com/client9/matchcore/core"
	"github.com/client9/matchcore/internal/config"
)

// Library is a read-only, name-keyed table of operator declarations.
type Library struct {
	ops map[string]core.Operator
}

// New builds a Library from the declarations in cfg.
func New(decls []config.OperatorDecl) *Library {
	ops := make(map[string]core.Operator, len(decls))
	for _, d := range decls {
		ops[d.Name] = core.Operator{
			Name: d.Name,
			Props: core.AlgProp{
				Associative: core.NewBoolean(d.Associative),
				Commutative: core.NewBoolean(d.Commutative),
				Idempotent:  core.NewBoolean(d.Idempotent),
			},
		}
	}
	return &Library{ops: ops}
}

// Lookup implements match.OperatorLibrary.
func (l *Library) Lookup(name string) (core.Operator, bool) {
	op, ok := l.ops[name]
	return op, ok
}

// Declare adds or replaces an operator declaration after the Library has
// been built. No matchdemo subcommand calls it; every command builds its
// Library from the config file's declarations.
func (l *Library) Declare(op core.Operator) {
	l.ops[op.Name] = op
}
