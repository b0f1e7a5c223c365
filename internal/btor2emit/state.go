// Package btor2emit implements the HW→BTOR2 emission pass of spec.md §4.4:
// a single-pass walker producing line-oriented BTOR2 bit-vector
// transition-system text, with stable LID allocation, dedup tables for
// sorts/constants/zeros, wire-inlining via an alias table, and deferred
// register-transition emission. Grounded in
// original_source/lib/Dialect/HW/Transforms/LowerHWtoBTOR2.cpp.
package btor2emit

import (
	"fmt"
	"strings"

	"hwlower/internal/ir"
)

type constKey struct {
	W   int
	Val int64
}

// state holds every dedup table and running LID counter LowerHWtoBTOR2Pass
// keeps as private pass state (sortToLIDMap, constToLIDMap, opLIDMap,
// opAliasMap, inputLIDs): stable LID allocation and dedup are the reason
// this is a single struct threaded through emission rather than a set of
// free functions.
type state struct {
	lid int
	buf strings.Builder

	sortLIDs  map[int]int
	constLIDs map[constKey]int
	zeroLIDs  map[int]int
	inputLIDs map[string]int
	opLIDs    map[ir.Op]int
	opAlias   map[ir.Op]ir.Value
}

func newState() *state {
	return &state{
		sortLIDs:  map[int]int{},
		constLIDs: map[constKey]int{},
		zeroLIDs:  map[int]int{},
		inputLIDs: map[string]int{},
		opLIDs:    map[ir.Op]int{},
		opAlias:   map[ir.Op]ir.Value{},
	}
}

// emit writes one BTOR2 line at the next LID and returns that LID.
func (s *state) emit(format string, args ...any) int {
	s.lid++
	fmt.Fprintf(&s.buf, "%d "+format+"\n", append([]any{s.lid}, args...)...)
	return s.lid
}

// sortLID returns the LID of the bitvec sort of the given width, emitting
// its `sort bitvec` line the first time that width is seen (spec.md §4.4:
// "sort: deduplicated by width").
func (s *state) sortLID(w int) int {
	if lid, ok := s.sortLIDs[w]; ok {
		return lid
	}
	lid := s.emit("sort bitvec %d", w)
	s.sortLIDs[w] = lid
	return lid
}

// constLID returns the LID of a (width, value) literal, deduplicated
// independently of zeroLID (spec.md §4.4's separate const/zero tables).
func (s *state) constLID(w int, val int64) int {
	key := constKey{W: w, Val: val}
	if lid, ok := s.constLIDs[key]; ok {
		return lid
	}
	sort := s.sortLID(w)
	lid := s.emit("constd %d %d", sort, val)
	s.constLIDs[key] = lid
	return lid
}

// zeroLID returns the LID of the zero constant of the given width, used
// exclusively by the deferred register reset-mux (spec.md §4.4 step 3),
// deduplicated by width alone.
func (s *state) zeroLID(w int) int {
	if lid, ok := s.zeroLIDs[w]; ok {
		return lid
	}
	sort := s.sortLID(w)
	lid := s.emit("zero %d", sort)
	s.zeroLIDs[w] = lid
	return lid
}

// inputLID emits an `input` line for a module port and records it for
// operand resolution.
func (s *state) inputLID(name string, w int) int {
	sort := s.sortLID(w)
	lid := s.emit("input %d %s", sort, name)
	s.inputLIDs[name] = lid
	return lid
}

func (s *state) setOpLID(op ir.Op, lid int) { s.opLIDs[op] = lid }

// alias records that op's value should be read as target's LID instead of
// emitting a line of its own — the wire-inlining mechanism of spec.md §4.4
// ("wire: no output; record alias").
func (s *state) alias(op ir.Op, target ir.Value) { s.opAlias[op] = target }

// valueLID resolves v to the LID that should appear in a referencing line:
// a module input's LID, a chased-through wire alias, or an already-emitted
// op's own LID. Invalid IR (a reference to an op this pass hasn't assigned
// a LID yet) panics per spec.md §7 rather than returning an error, since it
// can only mean the module-order invariant (spec.md §4.4's "upstream IR
// already lists operations in valid dependency order except register next
// arcs") was violated.
func (s *state) valueLID(v ir.Value) int {
	if v.IsBlockArg() {
		lid, ok := s.inputLIDs[v.BlockArg().Name]
		if !ok {
			panic("btor2emit: invalid IR: reference to port " + v.BlockArg().Name + " before input line was emitted")
		}
		return lid
	}
	op := v.DefiningOp()
	if target, ok := s.opAlias[op]; ok {
		return s.valueLID(target)
	}
	lid, ok := s.opLIDs[op]
	if !ok {
		panic("btor2emit: invalid IR: reference to operation " + op.Kind().String() + " before it was emitted a LID")
	}
	return lid
}

// Text returns the accumulated BTOR2 program text.
func (s *state) Text() string { return s.buf.String() }
