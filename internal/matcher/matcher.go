// Package matcher implements the pattern matcher combinators spec.md §4.1
// describes (any_bool, op_of<K>, one()) as small composable predicates over
// ir.Value, grounded in original_source/lib/Conversion/LTLToCore/LTLToCore.cpp's
// use of CIRCT's m_Bool/m_One/m_OpWithBind matcher library. A Matcher either
// fails outright or succeeds and, for the op_of form, binds the matched
// operation into an out-pointer the caller supplies — the Go substitute for
// passing a bind-site by reference.
package matcher

import "hwlower/internal/ir"

// Matcher reports whether v has the shape it looks for, binding into
// whatever out-pointer it closed over on success.
type Matcher func(v ir.Value) bool

// AnyBool matches any 1-bit value, binding nothing (spec.md §4.1 any_bool).
func AnyBool(v ir.Value) bool {
	return v.Type() == ir.I1
}

// Bool matches any 1-bit value and binds it into dst.
func Bool(dst *ir.Value) Matcher {
	return func(v ir.Value) bool {
		if v.Type() != ir.I1 {
			return false
		}
		*dst = v
		return true
	}
}

// One matches a constant integer literal 1, unconditionally on width
// (spec.md §4.3.2's NOI pattern: the delay op's operand must be m_One()).
func One() Matcher {
	return func(v ir.Value) bool {
		c, ok := v.DefiningOp().(*ir.ConstantOp)
		return ok && c.Val == 1
	}
}

// Const matches a constant of the given value and binds nothing; used where
// a pattern cares about a specific literal rather than just "some constant".
func Const(val int64) Matcher {
	return func(v ir.Value) bool {
		c, ok := v.DefiningOp().(*ir.ConstantOp)
		return ok && c.Val == val
	}
}

// OpOf matches a value whose defining op is of Go type T, recursively
// applying subs to that op's operands positionally, and binds the matched
// op into dst on success (spec.md §4.1 op_of<K>; CIRCT's m_OpWithBind).
// Fewer subs than operands is fine — trailing operands go unchecked; more
// subs than operands is always a failed match.
func OpOf[T ir.Op](dst *T, subs ...Matcher) Matcher {
	return func(v ir.Value) bool {
		op, ok := v.DefiningOp().(T)
		if !ok {
			return false
		}
		operands := op.Operands()
		if len(subs) > len(operands) {
			return false
		}
		for i, sub := range subs {
			if !sub(operands[i]) {
				return false
			}
		}
		*dst = op
		return true
	}
}

// Any always succeeds without binding; useful as a positional placeholder
// inside OpOf when a sub-operand's shape doesn't matter to the pattern.
func Any(ir.Value) bool { return true }
