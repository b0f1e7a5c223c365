// Package diag holds the error taxonomy of spec.md §7: shape-mismatch
// (pattern match failed, try the next rule), unsupported-op (silently
// skipped, not an error), and invalid-IR (a programmer-visible invariant
// violation). Grounded in itsfuad-Ferret/internal/diagnostics's Diagnostic
// builder, scaled down to what the two passes actually need to report.
package diag

import (
	"fmt"

	"hwlower/internal/ir"
)

// Severity classifies a Diagnostic for rendering (color, exit code).
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single non-fatal finding pinned to an optional op.
type Diagnostic struct {
	Severity Severity
	Message  string
	Op       ir.Op
}

// New starts a Diagnostic at the given severity.
func New(sev Severity, format string, args ...any) *Diagnostic {
	return &Diagnostic{Severity: sev, Message: fmt.Sprintf(format, args...)}
}

// Warningf builds a warning-level diagnostic (spec.md §7's shape-mismatch:
// "this rule doesn't apply, the pass tries the next one" is reported as a
// warning, not a failure, when no rule ultimately matches an op).
func Warningf(format string, args ...any) *Diagnostic {
	return New(SeverityWarning, format, args...)
}

// Infof builds an info-level diagnostic, used for unsupported-op skips
// (spec.md §7: "not an error; the op is simply not emitted").
func Infof(format string, args ...any) *Diagnostic {
	return New(SeverityInfo, format, args...)
}

// At pins the diagnostic to the operation it concerns.
func (d *Diagnostic) At(op ir.Op) *Diagnostic {
	d.Op = op
	return d
}

func (d *Diagnostic) Error() string {
	if d.Op != nil {
		return fmt.Sprintf("%s: %s (%s)", d.Severity, d.Message, d.Op.Kind())
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Invalid panics reporting an invalid-IR invariant violation (spec.md §7):
// a programmer error, not something a caller can recover from, matching
// mndstrmr-psgen/ast.go and blocks.go panicking on malformed input rather
// than threading an error return through every parse/lower step.
func Invalid(format string, args ...any) {
	panic("hwlower: invalid IR: " + fmt.Sprintf(format, args...))
}
