package repository

import (
	"fmt"
	"strings"
)

// Patch is a typed column -> value update set, built only from fields that
// were explicitly present in the validated input. Column names always come
// from code, never from request data.
type Patch struct {
	columns []string
	args    []any
}

// Set appends a column assignment to the patch.
func (p *Patch) Set(column string, value any) {
	p.columns = append(p.columns, column)
	p.args = append(p.args, value)
}

// IsEmpty reports whether the patch carries no assignments.
func (p *Patch) IsEmpty() bool {
	return len(p.columns) == 0
}

// Cond is one equality condition of a WHERE clause.
type Cond struct {
	Column string
	Value  any
}

// BuildUpdate renders "UPDATE <table> SET c1 = $1, ... WHERE k1 = $n AND ..."
// with positional args in patch-then-condition order.
func (p *Patch) BuildUpdate(table string, conds ...Cond) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(p.args)+len(conds))

	fmt.Fprintf(&b, "UPDATE %s SET ", table)
	for i, col := range p.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s = $%d", col, i+1)
		args = append(args, p.args[i])
	}

	b.WriteString(" WHERE ")
	for i, c := range conds {
		if i > 0 {
			b.WriteString(" AND ")
		}
		fmt.Fprintf(&b, "%s = $%d", c.Column, len(p.columns)+i+1)
		args = append(args, c.Value)
	}

	return b.String(), args
}
