// Package fixtures registers small Go-constructed HW-IR modules the CLI and
// test suites drive the two passes over. spec.md §6 puts textual HW-IR
// parsing out of scope, so these stand in for the ".mlir" inputs the
// original tool would read from disk.
package fixtures

import "hwlower/internal/ir"

// Builder constructs a fresh module; fixtures are rebuilt on every call so
// a pass mutating one module's Ops never leaks into another call site.
type Builder func() *ir.Module

var registry = map[string]Builder{
	"oi_assert":           buildOIAssert,
	"noi_assert_3":        buildNOIAssert3,
	"has_been_reset":      buildHasBeenReset,
	"single_and":          buildSingleAnd,
	"register_with_reset": buildRegisterWithReset,
	"wire_inlining":       buildWireInlining,
}

// Names returns the registered fixture names in a stable order, for the
// `hwlower fixtures` subcommand.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, n := range []string{
		"oi_assert", "noi_assert_3", "has_been_reset",
		"single_and", "register_with_reset", "wire_inlining",
	} {
		if _, ok := registry[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

// Build looks up and constructs the named fixture. ok is false if no
// fixture is registered under that name.
func Build(name string) (m *ir.Module, ok bool) {
	b, ok := registry[name]
	if !ok {
		return nil, false
	}
	return b(), true
}

// buildOIAssert is `clock posedge { disable(a |-> b, d) }` — spec.md
// §4.3.2's overlapping-implication shape; disable is mandatory for every
// recognized assert-property shape, so even this simple case carries one.
func buildOIAssert() *ir.Module {
	m := ir.NewModule("oi_assert", []ir.PortInfo{
		{Name: "clock", Dir: ir.DirInput, Typ: ir.ClockType{}},
		{Name: "a", Dir: ir.DirInput, Typ: ir.I1},
		{Name: "b", Dir: ir.DirInput, Typ: ir.I1},
		{Name: "d", Dir: ir.DirInput, Typ: ir.I1},
	})
	clock, a, b, d := m.Arg(0), m.Arg(1), m.Arg(2), m.Arg(3)
	impl := m.LTLImplication(a, b)
	disabled := m.LTLDisable(impl, d)
	clocked := m.LTLClock(disabled, clock, ir.EdgePos)
	m.VerifAssert(clocked, "oi")
	return m
}

// buildNOIAssert3 is `clock posedge { disable(a ##3 true |-> b, d) }` —
// spec.md §4.3.2's non-overlapping-implication shape with a fixed delay of
// 3, disabled by d so the pass also exercises the disable-driven reset of
// the antecedent pipeline and counter.
func buildNOIAssert3() *ir.Module {
	m := ir.NewModule("noi_assert_3", []ir.PortInfo{
		{Name: "clock", Dir: ir.DirInput, Typ: ir.ClockType{}},
		{Name: "a", Dir: ir.DirInput, Typ: ir.I1},
		{Name: "b", Dir: ir.DirInput, Typ: ir.I1},
		{Name: "d", Dir: ir.DirInput, Typ: ir.I1},
	})
	clock, a, b, d := m.Arg(0), m.Arg(1), m.Arg(2), m.Arg(3)
	one := m.Constant(1, 1)
	delay := m.LTLDelay(one, 3, 0)
	concat := m.LTLConcat(a, delay)
	impl := m.LTLImplication(concat, b)
	disabled := m.LTLDisable(impl, d)
	clocked := m.LTLClock(disabled, clock, ir.EdgePos)
	m.VerifAssert(clocked, "noi3")
	return m
}

// buildHasBeenReset exercises verif.has_been_reset end to end, routing its
// result straight to an output port so the lowered register chain shows up
// in both ltl2core and pipeline output. Emitting it to BTOR2 without
// lowering first (the btor2 subcommand) panics, because the output then
// references the unlowered verif.has_been_reset op.
func buildHasBeenReset() *ir.Module {
	m := ir.NewModule("has_been_reset", []ir.PortInfo{
		{Name: "clock", Dir: ir.DirInput, Typ: ir.ClockType{}},
		{Name: "reset", Dir: ir.DirInput, Typ: ir.I1},
		{Name: "out", Dir: ir.DirOutput, Typ: ir.I1},
	})
	clock, reset := m.Arg(0), m.Arg(1)
	hbr := m.HasBeenReset(clock, reset)
	m.Output("out", hbr)
	return m
}

// buildSingleAnd is a pure Core-IR fixture (no LTL pass needed) exercising
// the simplest possible BTOR2 emission: one binary op and one output.
func buildSingleAnd() *ir.Module {
	m := ir.NewModule("single_and", []ir.PortInfo{
		{Name: "clock", Dir: ir.DirInput, Typ: ir.ClockType{}},
		{Name: "a", Dir: ir.DirInput, Typ: ir.IntType{W: 4}},
		{Name: "b", Dir: ir.DirInput, Typ: ir.IntType{W: 4}},
		{Name: "out", Dir: ir.DirOutput, Typ: ir.IntType{W: 4}},
	})
	a, b := m.Arg(1), m.Arg(2)
	and := m.And(a, b)
	m.Output("out", and)
	return m
}

// buildRegisterWithReset exercises BTOR2's reset-mux register transition
// (spec.md §4.4 step 3): a module-level "reset" port wraps every register's
// next-state expression in an ite.
func buildRegisterWithReset() *ir.Module {
	m := ir.NewModule("register_with_reset", []ir.PortInfo{
		{Name: "clock", Dir: ir.DirInput, Typ: ir.ClockType{}},
		{Name: "reset", Dir: ir.DirInput, Typ: ir.I1},
		{Name: "d", Dir: ir.DirInput, Typ: ir.IntType{W: 4}},
		{Name: "q", Dir: ir.DirOutput, Typ: ir.IntType{W: 4}},
	})
	clock, d := m.Arg(0), m.Arg(2)
	reg := m.Reg("q_reg", d, clock, ir.IntType{W: 4})
	m.Output("q", ir.FromOp(reg))
	return m
}

// buildWireInlining exercises the wire-alias path (spec.md §4.4, SPEC_FULL
// supplement #3): a WireOp between a as an input and its output emits no
// line of its own.
func buildWireInlining() *ir.Module {
	m := ir.NewModule("wire_inlining", []ir.PortInfo{
		{Name: "clock", Dir: ir.DirInput, Typ: ir.ClockType{}},
		{Name: "a", Dir: ir.DirInput, Typ: ir.IntType{W: 4}},
		{Name: "out", Dir: ir.DirOutput, Typ: ir.IntType{W: 4}},
	})
	a := m.Arg(1)
	w := m.Wire(a)
	m.Output("out", w)
	return m
}
