// Package ir is the shared IR view the lowering passes operate over: a
// flat, caller-ordered list of operations per module, typed values, and
// ports. It stands in for the slice of the upstream HW/Comb/SV/Seq/LTL/Verif
// dialects this system actually touches — op creation, type queries, and
// operand access are native Go here rather than routed through an external
// IR framework.
package ir

import "fmt"

// Type is the discriminated union from spec.md §3: signless integer of
// some width, clock, LTL property, LTL sequence, or other.
type Type interface {
	String() string
	isType()
}

// IntType is a signless integer of width W.
type IntType struct{ W int }

func (IntType) isType() {}
func (t IntType) String() string { return fmt.Sprintf("i%d", t.W) }

// I1 is the 1-bit integer type, used pervasively for conditions and gates.
var I1 = IntType{W: 1}

// ClockType carries no width; clock-typed ports are skipped during BTOR2
// input emission (spec.md §4.4 step 1).
type ClockType struct{}

func (ClockType) isType()        {}
func (ClockType) String() string { return "clock" }

// LTLPropertyType is the result type of LTL property combinators
// (implication, disable, clock) before lowering.
type LTLPropertyType struct{}

func (LTLPropertyType) isType()        {}
func (LTLPropertyType) String() string { return "!ltl.property" }

// LTLSequenceType is the result type of LTL sequence combinators (concat,
// delay) before lowering.
type LTLSequenceType struct{}

func (LTLSequenceType) isType()        {}
func (LTLSequenceType) String() string { return "!ltl.sequence" }

// OtherType is a catch-all for types this system never interprets the
// bit-width of (e.g. array/memory types the Non-goals exclude).
type OtherType struct{ Name string }

func (OtherType) isType()        {}
func (t OtherType) String() string { return t.Name }

// BitWidth implements bit_width(T) from spec.md §3: defined for integer
// types, undefined (ok=false) otherwise.
func BitWidth(t Type) (width int, ok bool) {
	if it, isInt := t.(IntType); isInt {
		return it.W, true
	}
	return 0, false
}
