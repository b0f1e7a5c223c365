package btor2emit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hwlower/internal/fixtures"
	"hwlower/internal/trace"
)

// stripBanner drops the trailing module separator so the comparison is
// about instruction lines, not the cosmetic framing (spec.md §4.4 item 4).
func stripBanner(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" || strings.HasPrefix(line, "=") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// TestSingleAndMatchesGoldenBTOR2 pins down the BTOR2 output of the
// single_and fixture (a 4-bit AND of two inputs driving an output, with no
// assert) line for line, using go-cmp so a future regression reports a
// structural diff instead of a single t.Errorf.
func TestSingleAndMatchesGoldenBTOR2(t *testing.T) {
	m, ok := fixtures.Build("single_and")
	if !ok {
		t.Fatal("fixture single_and not registered")
	}
	text, diags := Emit(m, trace.New(trace.Off))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	want := []string{
		"1 sort bitvec 4",
		"2 input 1 a",
		"3 input 1 b",
		"4 and 1 2 3",
		"5 output 4",
	}
	got := stripBanner(text)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BTOR2 output mismatch (-want +got):\n%s", diff)
	}
}
