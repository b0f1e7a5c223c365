package ir

import (
	"fmt"
	"strings"
)

// Dump renders m as a flat textual listing, one operation per line, in the
// style the `ltl2core` CLI subcommand prints (SPEC_FULL.md "CLI"). It is a
// debugging aid, not a format any pass reads back in — spec.md §6 puts
// textual HW-IR parsing out of scope.
func Dump(m *Module) string {
	var b strings.Builder
	names := map[Op]string{}
	next := 0
	nameFor := func(op Op) string {
		if n, ok := names[op]; ok {
			return n
		}
		n := fmt.Sprintf("%%%d", next)
		next++
		names[op] = n
		return n
	}
	operandName := func(v Value) string {
		if v.IsBlockArg() {
			return v.BlockArg().Name
		}
		op := v.DefiningOp()
		return nameFor(op)
	}

	fmt.Fprintf(&b, "module %s(", m.Name)
	for i, p := range m.Ports {
		if i > 0 {
			b.WriteString(", ")
		}
		dir := "in"
		if p.Dir == DirOutput {
			dir = "out"
		}
		fmt.Fprintf(&b, "%s %s: %s", dir, p.Name, p.Typ)
	}
	b.WriteString(") {\n")

	for _, op := range m.Ops {
		b.WriteString("  ")
		if op.Result() != nil {
			fmt.Fprintf(&b, "%s = ", nameFor(op))
		}
		fmt.Fprintf(&b, "%s", op.Kind())
		operands := op.Operands()
		if len(operands) > 0 {
			operandNames := make([]string, len(operands))
			for i, o := range operands {
				if !o.Valid() {
					operandNames[i] = "<none>"
					continue
				}
				operandNames[i] = operandName(o)
			}
			fmt.Fprintf(&b, " %s", strings.Join(operandNames, ", "))
		}
		if op.Result() != nil {
			fmt.Fprintf(&b, " : %s", op.Result())
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}
