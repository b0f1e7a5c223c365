package ltlcore

import (
	"fmt"

	"hwlower/internal/backedge"
	"hwlower/internal/ir"
	"hwlower/internal/matcher"
)

// convertAssert implements AssertOpConversionPattern
// (original_source/lib/Conversion/LTLToCore/LTLToCore.cpp): it matches a
// verif.assert whose property is
//
//	ltl.clock(ltl.disable(body, %disableCond), %clock, edge)
//
// i.e. ltl.clock is outermost and a ltl.disable nested directly inside it is
// mandatory for every recognized shape (spec.md §4.3.2 lists all three
// shapes — NOI, OI, and the general case — as `clock(disable(...), clk)`;
// the original rejects a clock with no disable via
// `notifyMatchFailure(op, "Assertion must be disabled!")`). body is then
// matched against, in order:
//
//  1. NOI: `ltl.implication(concat(%a, delay(one(), n, 0)), %b)`.
//  2. OI: `ltl.implication(%a, %b)`.
//  3. General: any other 1-bit signal, asserted as-is.
//
// It rewrites the match into a clocked sv.assert, returning the matched LTL
// ops so the caller can erase them, and false if the property didn't have a
// recognizable shape at all (spec.md §7's shape-mismatch: try the next rule
// / report and skip).
func convertAssert(m *ir.Module, op *ir.VerifAssertOp) (consumed []ir.Op, ok bool) {
	var clockOp *ir.LTLClockOp
	if !matcher.OpOf(&clockOp)(op.Property) {
		return nil, false
	}

	var disableOp *ir.LTLDisableOp
	var disableCond ir.Value
	if !matcher.OpOf(&disableOp, matcher.Any, matcher.Bool(&disableCond))(clockOp.Input) {
		return nil, false
	}
	body := disableOp.Input

	consumed = append(consumed, clockOp, disableOp)

	var cond ir.Value
	var implOp *ir.LTLImplicationOp
	switch {
	case matcher.OpOf(&implOp)(body):
		consumed = append(consumed, implOp)

		var concatOp *ir.LTLConcatOp
		var delayOp *ir.LTLDelayOp
		noiMatches := matcher.OpOf(&concatOp, matcher.Any, matcher.OpOf(&delayOp, matcher.One()))(implOp.Antecedent)
		if noiMatches && len(concatOp.Operands_) == 2 && delayOp.Length == 0 {
			cond = makeNonOverlappingImplication(m, clockOp.Clock, concatOp.Operands_[0], delayOp.Delay, implOp.Consequent, disableCond)
			consumed = append(consumed, concatOp, delayOp)
		} else {
			cond = makeImplication(m, implOp.Antecedent, implOp.Consequent)
		}

	case matcher.AnyBool(body):
		// General assert-property (spec.md §4.3.2 case 3): the disabled
		// body is any 1-bit signal, asserted as-is.
		cond = body

	default:
		return nil, false
	}

	cond = m.Or(disableCond, cond)

	m.Assert(clockOp.Edge, clockOp.Clock, cond, op.Label)
	return consumed, true
}

// makeImplication builds the overlapping-implication condition `!a || b`
// (spec.md §4.3.2 OI).
func makeImplication(m *ir.Module, antecedent, consequent ir.Value) ir.Value {
	notA := m.Xor(antecedent, m.Constant(1, 1))
	return m.Or(notA, consequent)
}

// makeNonOverlappingImplication builds the NOI condition for `a ##n true
// |-> b` (spec.md §4.3.2): an n-stage antecedent pipeline delivering "a held
// n cycles ago", gated by a saturating counter that suppresses the check
// until n clock cycles have actually elapsed (there is no valid n-cycle-old
// history before then, so the pipeline's power-on zero would otherwise read
// as a false negative rather than a vacuous pass). Per spec.md §4.3.2, both
// the pipeline stages and the counter are held at 0 while disableCond is
// high; since RegOp carries no synthesis reset port (DESIGN.md), that reset
// is expressed as a mux on each register's Next input rather than a Reset
// operand, the same encoding has_been_reset uses for its own sticky latch.
// See DESIGN.md for this counter's role as an explicit Open Question
// resolution.
func makeNonOverlappingImplication(m *ir.Module, clock, antecedent ir.Value, n int, consequent, disableCond ir.Value) ir.Value {
	resettable := func(next ir.Value) ir.Value {
		w, _ := ir.BitWidth(next.Type())
		return m.Mux(disableCond, m.Constant(w, 0), next)
	}

	delayed := antecedent
	for i := 0; i < n; i++ {
		reg := m.Reg(fmt.Sprintf("noi_pipe_%d", i), resettable(delayed), clock, ir.I1)
		delayed = ir.FromOp(reg)
	}

	w := bitsFor(n)
	nConst := m.Constant(w, int64(n))

	bb := backedge.New()
	cntEdge := bb.Get(ir.IntType{W: w})
	incremented := m.Add(cntEdge.Value(), m.Constant(w, 1))
	atMax := m.ICmp(ir.PredUge, cntEdge.Value(), nConst)
	nextCount := m.Mux(atMax, cntEdge.Value(), incremented)
	cntReg := m.Reg("noi_counter", resettable(nextCount), clock, ir.IntType{W: w})
	cntEdge.Set(ir.FromOp(cntReg))
	bb.Close()

	filled := m.ICmp(ir.PredUge, ir.FromOp(cntReg), nConst)
	notFilled := m.Xor(filled, m.Constant(1, 1))

	oi := makeImplication(m, delayed, consequent)
	return m.Or(notFilled, oi)
}

// bitsFor returns the narrowest unsigned width that can hold the value n,
// at least 1 (a zero-width integer isn't meaningful as a counter).
func bitsFor(n int) int {
	if n <= 0 {
		return 1
	}
	w := 1
	for (1 << uint(w)) <= n {
		w++
	}
	return w
}
