package backedge

import (
	"testing"

	"hwlower/internal/ir"
)

func TestCloseOKWhenAllBound(t *testing.T) {
	m := ir.NewModule("m", nil)
	bb := New()
	be := bb.Get(ir.I1)
	reg := m.Reg("r", be.Value(), m.Constant(1, 0), ir.I1)
	be.Set(ir.FromOp(reg))

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Close panicked with all backedges bound: %v", r)
		}
	}()
	bb.Close()
}

func TestCloseSurfacesUnboundBackedges(t *testing.T) {
	bb := New()
	bb.Get(ir.I1)

	defer func() {
		if recover() == nil {
			t.Fatalf("Close did not panic with an unbound backedge outstanding")
		}
	}()
	bb.Close()
}
