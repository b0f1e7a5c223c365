package btor2emit

import (
	"testing"

	"hwlower/internal/fixtures"
	"hwlower/internal/ir"
	"hwlower/internal/ltlcore"
	"hwlower/internal/trace"
)

// TestLoweredHasBeenResetEmitsWithoutPanic runs the full advertised pipeline
// (ltlcore.Run followed by Emit, as cmd/hwlower/pipeline.go does) rather than
// calling Emit directly on unlowered fixtures: has_been_reset's lowering
// appends its whole replacement chain ahead of the pre-existing output op via
// ir.Module's insertion point (SPEC_FULL.md "Module-walk ordering"
// supplement), and this test checks that ordering end to end with no
// diagnostics from either pass.
func TestLoweredHasBeenResetEmitsWithoutPanic(t *testing.T) {
	m, ok := fixtures.Build("has_been_reset")
	if !ok {
		t.Fatal("fixture has_been_reset not registered")
	}
	if diags := ltlcore.Run(m, false, trace.New(trace.Off)); len(diags) != 0 {
		t.Fatalf("unexpected diagnostics from ltlcore.Run: %v", diags)
	}
	text, diags := Emit(m, trace.New(trace.Off))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics from Emit: %v", diags)
	}
	got := lids(t, text)
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("LIDs not strictly increasing at index %d: %v", i, got)
		}
	}
}

// TestLoweredNOIAssertEmitsWithoutPanic covers the other lowering pass that
// inserts a fresh dependency chain (pipeline registers, counter, sv.assert)
// ahead of ops already present in the module.
func TestLoweredNOIAssertEmitsWithoutPanic(t *testing.T) {
	m, ok := fixtures.Build("noi_assert_3")
	if !ok {
		t.Fatal("fixture noi_assert_3 not registered")
	}
	if diags := ltlcore.Run(m, false, trace.New(trace.Off)); len(diags) != 0 {
		t.Fatalf("unexpected diagnostics from ltlcore.Run: %v", diags)
	}
	text, diags := Emit(m, trace.New(trace.Off))
	// The lowered assert sits in an always envelope, which Emit skips as an
	// unsupported kind with one info diagnostic; nothing else may be reported.
	if len(diags) != 1 || diags[0].Op == nil || diags[0].Op.Kind() != ir.KindAlways {
		t.Fatalf("want exactly one diagnostic, for the skipped always op; got %v", diags)
	}
	got := lids(t, text)
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("LIDs not strictly increasing at index %d: %v", i, got)
		}
	}
}
