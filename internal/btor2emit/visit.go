package btor2emit

import "hwlower/internal/ir"

// visitOp emits the BTOR2 line(s) for one operation and reports whether the
// op kind was supported. Unsupported kinds (IfOp, AlwaysOp, any leftover
// LTL/Verif op, Backedge) are not an error (spec.md §7: "unsupported-op:
// silently skipped, not an error") — the caller turns a false return into
// an info-level diagnostic, not a failure.
func visitOp(s *state, op ir.Op) bool {
	switch o := op.(type) {
	case *ir.ConstantOp:
		s.setOpLID(op, s.constLID(o.W, o.Val))
		return true

	case *ir.WireOp:
		s.alias(op, o.Input)
		return true

	case *ir.OutputOp:
		s.emit("output %d", s.valueLID(o.Input))
		return true

	case *ir.BinaryOp:
		w, ok := ir.BitWidth(o.Typ)
		if !ok {
			panic("btor2emit: invalid IR: binary op result has non-integer type")
		}
		sort := s.sortLID(w)
		lid := s.emit("%s %d %d %d", o.K.String(), sort, s.valueLID(o.Lhs), s.valueLID(o.Rhs))
		s.setOpLID(op, lid)
		return true

	case *ir.ExtractOp:
		sort := s.sortLID(o.W)
		hi := o.Low + o.W - 1
		lid := s.emit("slice %d %d %d %d", sort, s.valueLID(o.Input), hi, o.Low)
		s.setOpLID(op, lid)
		return true

	case *ir.ICmpOp:
		sort := s.sortLID(1)
		lid := s.emit("%s %d %d %d", o.Pred.Btor2Mnemonic(), sort, s.valueLID(o.Lhs), s.valueLID(o.Rhs))
		s.setOpLID(op, lid)
		return true

	case *ir.MuxOp:
		w, ok := ir.BitWidth(o.T.Type())
		if !ok {
			panic("btor2emit: invalid IR: mux result has non-integer type")
		}
		sort := s.sortLID(w)
		lid := s.emit("ite %d %d %d %d", sort, s.valueLID(o.Cond), s.valueLID(o.T), s.valueLID(o.F))
		s.setOpLID(op, lid)
		return true

	case *ir.ImmediateAssertOp:
		condLID := s.valueLID(o.Expr)
		if o.Enable.Valid() {
			sort1 := s.sortLID(1)
			condLID = s.emit("implies %d %d %d", sort1, s.valueLID(o.Enable), condLID)
		}
		notLID := s.emit("not %d %d", s.sortLID(1), condLID)
		s.emit("bad %d", notLID)
		return true

	case *ir.ImmediateAssumeOp:
		s.emit("constraint %d", s.valueLID(o.Expr))
		return true

	default:
		return false
	}
}
