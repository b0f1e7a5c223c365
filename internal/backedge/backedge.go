// Package backedge provides the feedback-loop builder spec.md §9 describes:
// a way to reference a value (typically a register's own output) before the
// operation that defines it has been constructed. Grounded in
// original_source/lib/Conversion/LTLToCore/LTLToCore.cpp's use of
// circt::BackedgeBuilder around the has_been_reset and NOI counter/pipeline
// conversions.
package backedge

import (
	"fmt"

	"hwlower/internal/ir"
)

// Builder tracks every backedge it hands out and panics at Close if any is
// still unbound — the same "did you forget to set it" guard a real
// BackedgeBuilder gives for free, reimplemented here because this IR has no
// use-list to assert against directly.
type Builder struct {
	pending []*ir.Backedge
}

// New creates a Builder scoped to one conversion (callers typically build
// one per matched LTL op, mirroring BackedgeBuilder(rewriter, loc) being
// constructed fresh inside each conversion pattern's matchAndRewrite).
func New() *Builder {
	return &Builder{}
}

// Get allocates a new unbound placeholder value of the given type.
func (b *Builder) Get(typ ir.Type) *ir.Backedge {
	be := ir.NewBackedge(typ)
	b.pending = append(b.pending, be)
	return be
}

// Close verifies every backedge handed out by Get has since been bound via
// Set. Panics listing how many remain unbound — an unbound backedge means a
// conversion pattern built a feedback reference it never closed the loop
// on, which is an invalid-IR programmer error (spec.md §7), not a
// recoverable shape mismatch.
func (b *Builder) Close() {
	unbound := 0
	for _, be := range b.pending {
		if _, ok := isBound(be); !ok {
			unbound++
		}
	}
	if unbound > 0 {
		panic(fmt.Sprintf("backedge: Close called with %d unbound backedge(s) outstanding", unbound))
	}
}

func isBound(be *ir.Backedge) (ir.Value, bool) {
	v := be.Value()
	r := ir.Resolve(v)
	return r, r != v
}
