package btor2emit

import (
	"hwlower/internal/diag"
	"hwlower/internal/ir"
	"hwlower/internal/trace"
)

// Emit runs the HW→BTOR2 pass over m and returns the resulting BTOR2
// program text plus any non-fatal diagnostics (unsupported-op skips).
//
// The walk has four phases, matching LowerHWtoBTOR2Pass::runOnOperation:
//
//  1. Port lines: every input port becomes a BTOR2 `input` line, except
//     clock-typed ports, which carry no bit-vector representation (spec.md
//     §4.4 step 1). A port named "reset" is remembered for step 4.
//  2. Register state pre-allocation: every RegOp gets its `state` line and
//     LID *before* the general walk, because a register's own output can be
//     referenced by combinational ops constructed earlier in module order
//     (the feedback shape internal/backedge exists for) — without this,
//     those earlier ops would need a LID that doesn't exist yet.
//  3. General walk: every other op is visited in flat module order and
//     emits its line(s), or is silently skipped if unsupported.
//  4. Deferred register transitions: each register's `next` line is
//     emitted last, once every value it might reference has a LID; if the
//     module has a reset port, the transition is wrapped
//     `ite(resetLID, zero, next)` (spec.md §4.4 step 3).
//
// The trailing separator banner matches the original tool's own BTOR2
// output framing.
func Emit(m *ir.Module, tr *trace.Tracer) (string, []*diag.Diagnostic) {
	s := newState()
	var diags []*diag.Diagnostic
	tr.Infof("btor2emit: emitting module %q", m.Name)

	var resetLID int
	hasReset := false
	for _, p := range m.Ports {
		if p.Dir != ir.DirInput {
			continue
		}
		if _, isClock := p.Typ.(ir.ClockType); isClock {
			continue
		}
		w, ok := ir.BitWidth(p.Typ)
		if !ok {
			panic("btor2emit: invalid IR: port " + p.Name + " has neither integer nor clock type")
		}
		lid := s.inputLID(p.Name, w)
		if p.Name == "reset" {
			resetLID, hasReset = lid, true
		}
	}

	var regs []*ir.RegOp
	m.Walk(func(op ir.Op) {
		r, isReg := op.(*ir.RegOp)
		if !isReg {
			return
		}
		w, ok := ir.BitWidth(r.Typ)
		if !ok {
			panic("btor2emit: invalid IR: register " + r.Name + " has non-integer type")
		}
		sort := s.sortLID(w)
		lid := s.emit("state %d %s", sort, r.Name)
		s.setOpLID(r, lid)
		regs = append(regs, r)
	})
	tr.Debugf("btor2emit: pre-allocated %d register state lines", len(regs))

	m.Walk(func(op ir.Op) {
		if _, isReg := op.(*ir.RegOp); isReg {
			return
		}
		if !visitOp(s, op) {
			diags = append(diags, diag.Infof("unsupported operation kind, not emitted").At(op))
		}
	})

	for _, r := range regs {
		w, _ := ir.BitWidth(r.Typ)
		sort := s.sortLID(w)
		nextLID := s.valueLID(r.Next)
		if hasReset {
			zeroLID := s.zeroLID(w)
			nextLID = s.emit("ite %d %d %d %d", sort, resetLID, zeroLID, nextLID)
		}
		s.emit("next %d %d %d", sort, s.opLIDs[r], nextLID)
	}

	s.buf.WriteString("\n===============================\n\n")
	tr.Infof("btor2emit: done, %d diagnostics, final lid %d", len(diags), s.lid)
	return s.Text(), diags
}
