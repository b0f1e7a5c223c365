package ir

import "testing"

func TestValueIdentity(t *testing.T) {
	m := NewModule("m", []PortInfo{
		{Name: "a", Dir: DirInput, Typ: IntType{W: 4}},
	})
	v1 := m.Arg(0)
	v2 := m.Arg(0)
	if v1 != v2 {
		t.Fatalf("repeated Arg(0) calls produced non-equal values")
	}

	c1 := m.Constant(4, 5)
	c2 := m.Constant(4, 5)
	if c1 == c2 {
		t.Fatalf("two distinct Constant calls produced equal values, want distinct op identities")
	}
}

func TestBitWidth(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		wantW   int
		wantOK  bool
	}{
		{"i1", I1, 1, true},
		{"i32", IntType{W: 32}, 32, true},
		{"clock", ClockType{}, 0, false},
		{"ltl property", LTLPropertyType{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := BitWidth(tt.typ)
			if w != tt.wantW || ok != tt.wantOK {
				t.Errorf("BitWidth(%v) = (%d, %v), want (%d, %v)", tt.typ, w, ok, tt.wantW, tt.wantOK)
			}
		})
	}
}

func TestResolveThroughAlias(t *testing.T) {
	m := NewModule("m", nil)
	a := m.Constant(4, 1)
	b := m.Constant(4, 2)

	// Simulate a pass replacing a's definition with b, the way
	// internal/ltlcore redirects a converted op's consumers.
	aOp := a.DefiningOp()
	aliasable := aOp.(*ConstantOp)
	aliasable.SetAlias(b)

	if got := Resolve(a); got != b {
		t.Fatalf("Resolve(a) = %v, want %v", got, b)
	}
	if got := a.DefiningOp(); got != b.DefiningOp() {
		t.Fatalf("a.DefiningOp() did not resolve through the alias")
	}
}

func TestBackedgeResolve(t *testing.T) {
	m := NewModule("m", nil)
	be := NewBackedge(I1)
	one := m.Constant(1, 1)
	or := m.Or(be.Value(), one)

	reg := m.Reg("r", or, m.Constant(1, 0), I1)
	be.Set(FromOp(reg))

	if got := Resolve(be.Value()); got != FromOp(reg) {
		t.Fatalf("Resolve(backedge) = %v, want the bound register value", got)
	}
}

func TestModuleAppendErase(t *testing.T) {
	m := NewModule("m", nil)
	c := m.Constant(1, 1)
	if len(m.Ops) != 1 {
		t.Fatalf("expected 1 op after Constant, got %d", len(m.Ops))
	}
	m.Erase(c.DefiningOp())
	if len(m.Ops) != 0 {
		t.Fatalf("expected 0 ops after Erase, got %d", len(m.Ops))
	}
}
