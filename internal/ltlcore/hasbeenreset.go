package ltlcore

import (
	"hwlower/internal/backedge"
	"hwlower/internal/ir"
)

// convertHasBeenReset implements HasBeenResetOpConversion
// (original_source/lib/Conversion/LTLToCore/LTLToCore.cpp): a sticky
// register that latches once Reset has ever been asserted and stays latched
// forever, masked off while Reset is currently asserted.
//
//	reg.next = reg.value | reset
//	result   = reg.value & ~reset
//
// The register has no synthesis reset port of its own (spec.md §4.3.1: "no
// reset port; it must not itself be reset") — only a power-on Initial of 0,
// which is why RegOp keeps Initial distinct from Reset/ResetValue.
func convertHasBeenReset(m *ir.Module, op *ir.VerifHasBeenResetOp) ir.Value {
	one := m.Constant(1, 1)
	zero := m.Zero(1)

	bb := backedge.New()
	edge := bb.Get(ir.I1)
	orReset := m.Or(op.Reset, edge.Value())
	reg := m.Reg("hbr", orReset, op.Clock, ir.I1)
	reg.Initial = zero
	edge.Set(ir.FromOp(reg))
	bb.Close()

	notReset := m.Xor(op.Reset, one)
	return m.And(ir.FromOp(reg), notReset)
}
