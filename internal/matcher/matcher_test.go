package matcher

import (
	"testing"

	"hwlower/internal/ir"
)

func TestOpOfBindsAndRecurses(t *testing.T) {
	m := ir.NewModule("m", []ir.PortInfo{
		{Name: "a", Dir: ir.DirInput, Typ: ir.I1},
		{Name: "b", Dir: ir.DirInput, Typ: ir.I1},
	})
	a, b := m.Arg(0), m.Arg(1)
	impl := m.LTLImplication(a, b)

	var matched *ir.LTLImplicationOp
	var antecedent, consequent ir.Value
	ok := OpOf(&matched, Bool(&antecedent), Bool(&consequent))(impl)
	if !ok {
		t.Fatalf("OpOf did not match an LTLImplicationOp")
	}
	if antecedent != a || consequent != b {
		t.Fatalf("sub-matchers bound wrong operands: got (%v, %v)", antecedent, consequent)
	}
	if matched.Antecedent != a {
		t.Fatalf("OpOf bound the wrong op")
	}
}

func TestOpOfRejectsWrongType(t *testing.T) {
	m := ir.NewModule("m", []ir.PortInfo{{Name: "a", Dir: ir.DirInput, Typ: ir.I1}})
	a := m.Arg(0)
	c := m.Constant(1, 1)
	notImpl := m.LTLDisable(a, c)

	var matched *ir.LTLImplicationOp
	if OpOf(&matched)(notImpl) {
		t.Fatalf("OpOf matched an LTLDisableOp as an LTLImplicationOp")
	}
}

func TestOne(t *testing.T) {
	m := ir.NewModule("m", nil)
	one := m.Constant(1, 1)
	two := m.Constant(4, 2)

	if !One()(one) {
		t.Errorf("One() rejected a constant 1")
	}
	if One()(two) {
		t.Errorf("One() accepted a constant 2")
	}
}

func TestAnyBool(t *testing.T) {
	m := ir.NewModule("m", []ir.PortInfo{
		{Name: "flag", Dir: ir.DirInput, Typ: ir.I1},
		{Name: "word", Dir: ir.DirInput, Typ: ir.IntType{W: 8}},
	})
	if !AnyBool(m.Arg(0)) {
		t.Errorf("AnyBool rejected an i1 value")
	}
	if AnyBool(m.Arg(1)) {
		t.Errorf("AnyBool accepted an i8 value")
	}
}
