// Package ltlcore implements the LTL→Core lowering pass of spec.md §4.3:
// pattern-directed rewriting of clocked LTL assertion shapes (has_been_reset,
// overlapping and non-overlapping implication) into RTL built from Core/SV
// constructs the BTOR2 emitter already understands. Grounded in
// original_source/lib/Conversion/LTLToCore/LTLToCore.cpp's two conversion
// patterns and pass driver.
package ltlcore

import (
	"hwlower/internal/diag"
	"hwlower/internal/ir"
	"hwlower/internal/trace"
)

// Run lowers every verif.has_been_reset and verif.assert op in m, in module
// order, and returns any non-fatal diagnostics produced along the way.
//
// Legality target (spec.md §4.3's runOnOperation): HW/Comb/SV/Seq are
// always legal; LTL ops are legal only if nothing still references them
// (true here by construction, since every match erases the whole matched
// chain); Verif ops are always illegal afterward and are always erased.
// keepUnreferencedLTL mirrors SPEC_FULL.md's config knob of the same name:
// when false, matched-but-unreferenced LTL ops are also swept from the
// module (handy for fixture/test output that should show Core-only IR);
// when true they are left in the op list as harmless dead entries, the way
// a real dialect-conversion legality check would tolerate them.
func Run(m *ir.Module, keepUnreferencedLTL bool, tr *trace.Tracer) []*diag.Diagnostic {
	var diags []*diag.Diagnostic
	tr.Infof("ltlcore: lowering module %q", m.Name)

	// Snapshot the op list before mutating it: Append below inserts ahead of
	// op via the module's insertion point, which can shift elements in place
	// within m.Ops's backing array, and this loop must keep seeing the
	// original module order regardless of where later ops end up.
	ops := append([]ir.Op(nil), m.Ops...)

	var toErase []ir.Op
	for _, op := range ops {
		switch o := op.(type) {
		case *ir.VerifHasBeenResetOp:
			tr.Debugf("ltlcore: converting has_been_reset")
			m.SetInsertionPoint(o)
			result := convertHasBeenReset(m, o)
			m.ResetInsertionPoint()
			o.SetAlias(result)
			toErase = append(toErase, o)

		case *ir.VerifAssertOp:
			tr.Debugf("ltlcore: converting assert %q", o.Label)
			m.SetInsertionPoint(o)
			consumed, matched := convertAssert(m, o)
			m.ResetInsertionPoint()
			if !matched {
				diags = append(diags, diag.Warningf("assert property shape not recognized, leaving unconverted").At(o))
				continue
			}
			toErase = append(toErase, o)
			toErase = append(toErase, consumed...)
		}
	}

	erased := 0
	for _, op := range toErase {
		if keepUnreferencedLTL && op.Kind().IsLTL() {
			continue
		}
		m.Erase(op)
		erased++
	}

	tr.Infof("ltlcore: done, %d diagnostics, %d ops erased", len(diags), erased)
	return diags
}
