package ir

// Backedge is a placeholder Value for a feedback edge: a register's own
// output value, referenced before the register itself is constructed
// (spec.md §9 "self-referential registers"). It implements Op so it can be
// wrapped as a Value before being bound, and embeds aliasable so Resolve
// transparently follows it to its eventual binding once Set is called.
//
// A real IR framework resolves this with RAUW (replace all uses of the
// backedge with the final value); this from-scratch IR has no use-list to
// rewrite, so Backedge stays in place forever and Resolve chases the
// indirection instead — see internal/backedge for the builder that
// enforces every Backedge gets bound.
type Backedge struct {
	aliasable
	typ Type
}

// NewBackedge allocates an unbound placeholder of the given type. Exported
// for internal/backedge, which is the only intended caller — pass code
// should go through a backedge.Builder rather than constructing one of
// these directly, so that "every backedge gets bound" is checked in one
// place.
func NewBackedge(typ Type) *Backedge {
	return &Backedge{typ: typ}
}

func (b *Backedge) Kind() Kind        { return KindBackedge }
func (b *Backedge) Operands() []Value { return nil }
func (b *Backedge) Result() Type      { return b.typ }

// Set binds the backedge to its final value. Panics if already bound — see
// aliasable.SetAlias.
func (b *Backedge) Set(v Value) {
	b.SetAlias(v)
}

// Value wraps the backedge as an operand, usable before or after Set.
func (b *Backedge) Value() Value {
	return Value{op: b}
}
