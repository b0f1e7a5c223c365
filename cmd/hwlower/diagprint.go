package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"hwlower/internal/diag"
	"hwlower/internal/fixtures"
	"hwlower/internal/ir"
)

// lookupFixture resolves a fixture by name or returns a cobra-friendly
// error if none is registered under it.
func lookupFixture(name string) (*ir.Module, error) {
	m, ok := fixtures.Build(name)
	if !ok {
		return nil, fmt.Errorf("no such fixture %q (see `hwlower fixtures`)", name)
	}
	return m, nil
}

// printDiagnostics renders each diagnostic severity-colored to stderr,
// matching SPEC_FULL.md's "red errors, yellow warnings" CLI convention.
func printDiagnostics(diags []*diag.Diagnostic) {
	for _, d := range diags {
		switch d.Severity {
		case diag.SeverityError:
			fmt.Fprintln(os.Stderr, color.RedString(d.Error()))
		case diag.SeverityWarning:
			fmt.Fprintln(os.Stderr, color.YellowString(d.Error()))
		default:
			fmt.Fprintln(os.Stderr, d.Error())
		}
	}
}
