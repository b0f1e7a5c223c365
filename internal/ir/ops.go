package ir

// aliasable is embedded in every concrete Op. It gives each op the ability
// to be redirected to a different value after construction — the
// substitute this flat, use-list-free IR uses in place of RAUW (spec.md §9;
// see also Resolve in value.go and internal/ltlcore, which uses SetAlias to
// redirect consumers of a replaced verif/ltl op without rewriting their
// operands in place).
type aliasable struct {
	alias Value
}

func (a *aliasable) boundValue() (Value, bool) {
	return a.alias, a.alias.Valid()
}

// SetAlias redirects all future reads of this op's value to v. Panics if
// already aliased: an op represents one definition, and rebinding it would
// silently change what earlier-resolved operands now mean.
func (a *aliasable) SetAlias(v Value) {
	if a.alias.Valid() {
		panic("ir: op already aliased")
	}
	a.alias = v
}

// ConstantOp is a literal integer of fixed width (spec.md §4.4 "constant:
// record in the const dedup table keyed by (width, value)").
type ConstantOp struct {
	aliasable
	W   int
	Val int64
}

func (c *ConstantOp) Kind() Kind        { return KindConstant }
func (c *ConstantOp) Operands() []Value { return nil }
func (c *ConstantOp) Result() Type      { return IntType{W: c.W} }

// Constant builds and appends a constant op.
func (m *Module) Constant(w int, val int64) Value {
	return FromOp(m.Append(&ConstantOp{W: w, Val: val}))
}

// Zero builds and appends a constant 0 of width w. The result is an
// ordinary ConstantOp, so the BTOR2 emitter writes it as a `constd` line
// through its general constant table; the emitter's separate `zero` table
// is used only for its own register reset mux.
func (m *Module) Zero(w int) Value {
	return m.Constant(w, 0)
}

// WireOp passes its input through unchanged; it has no BTOR2 output of its
// own and is recorded as an alias of its input (spec.md §4.4, SUPPLEMENTED
// FEATURES #3).
type WireOp struct {
	aliasable
	Input Value
}

func (w *WireOp) Kind() Kind        { return KindWire }
func (w *WireOp) Operands() []Value { return []Value{w.Input} }
func (w *WireOp) Result() Type      { return w.Input.Type() }

func (m *Module) Wire(input Value) Value {
	return FromOp(m.Append(&WireOp{Input: input}))
}

// OutputOp marks a module output port's driving value. It has no result.
type OutputOp struct {
	aliasable
	Name  string
	Input Value
}

func (o *OutputOp) Kind() Kind        { return KindOutput }
func (o *OutputOp) Operands() []Value { return []Value{o.Input} }
func (o *OutputOp) Result() Type      { return nil }

func (m *Module) Output(name string, input Value) *OutputOp {
	op := &OutputOp{Name: name, Input: input}
	m.Append(op)
	return op
}

// BinaryOp covers every two-operand comb/hw op the BTOR2 emitter dispatches
// on by mnemonic (spec.md §4.4's binary-op row); Kind distinguishes the
// mnemonic the same way the upstream visitor's dispatch table does, rather
// than one Go type per operator.
type BinaryOp struct {
	aliasable
	K        Kind
	Lhs, Rhs Value
	Typ      Type
}

func (b *BinaryOp) Kind() Kind        { return b.K }
func (b *BinaryOp) Operands() []Value { return []Value{b.Lhs, b.Rhs} }
func (b *BinaryOp) Result() Type      { return b.Typ }

func (m *Module) binary(k Kind, lhs, rhs Value, typ Type) Value {
	return FromOp(m.Append(&BinaryOp{K: k, Lhs: lhs, Rhs: rhs, Typ: typ}))
}

func (m *Module) Add(lhs, rhs Value) Value  { return m.binary(KindAdd, lhs, rhs, lhs.Type()) }
func (m *Module) Sub(lhs, rhs Value) Value  { return m.binary(KindSub, lhs, rhs, lhs.Type()) }
func (m *Module) Mul(lhs, rhs Value) Value  { return m.binary(KindMul, lhs, rhs, lhs.Type()) }
func (m *Module) DivU(lhs, rhs Value) Value { return m.binary(KindDivU, lhs, rhs, lhs.Type()) }
func (m *Module) DivS(lhs, rhs Value) Value { return m.binary(KindDivS, lhs, rhs, lhs.Type()) }
func (m *Module) ModS(lhs, rhs Value) Value { return m.binary(KindModS, lhs, rhs, lhs.Type()) }
func (m *Module) Shl(lhs, rhs Value) Value  { return m.binary(KindShl, lhs, rhs, lhs.Type()) }
func (m *Module) ShrU(lhs, rhs Value) Value { return m.binary(KindShrU, lhs, rhs, lhs.Type()) }
func (m *Module) ShrS(lhs, rhs Value) Value { return m.binary(KindShrS, lhs, rhs, lhs.Type()) }
func (m *Module) And(lhs, rhs Value) Value  { return m.binary(KindAnd, lhs, rhs, lhs.Type()) }
func (m *Module) Or(lhs, rhs Value) Value   { return m.binary(KindOr, lhs, rhs, lhs.Type()) }
func (m *Module) Xor(lhs, rhs Value) Value  { return m.binary(KindXor, lhs, rhs, lhs.Type()) }

// Concat performs bit concatenation (hw.concat, not ltl.concat): result
// width is the sum of the two operand widths, msb-first.
func (m *Module) Concat(msb, lsb Value) Value {
	wm, _ := BitWidth(msb.Type())
	wl, _ := BitWidth(lsb.Type())
	return m.binary(KindConcat, msb, lsb, IntType{W: wm + wl})
}

// ExtractOp selects a contiguous bit range [Low, Low+W) from Input.
type ExtractOp struct {
	aliasable
	Input Value
	Low   int
	W     int
}

func (e *ExtractOp) Kind() Kind        { return KindExtract }
func (e *ExtractOp) Operands() []Value { return []Value{e.Input} }
func (e *ExtractOp) Result() Type      { return IntType{W: e.W} }

func (m *Module) Extract(input Value, low, w int) Value {
	return FromOp(m.Append(&ExtractOp{Input: input, Low: low, W: w}))
}

// ICmpOp is a 1-bit-result integer comparison (SUPPLEMENTED FEATURES #1:
// the full predicate table, not just the ne->neq remap).
type ICmpOp struct {
	aliasable
	Pred     Predicate
	Lhs, Rhs Value
}

func (c *ICmpOp) Kind() Kind        { return KindICmp }
func (c *ICmpOp) Operands() []Value { return []Value{c.Lhs, c.Rhs} }
func (c *ICmpOp) Result() Type      { return I1 }

func (m *Module) ICmp(pred Predicate, lhs, rhs Value) Value {
	return FromOp(m.Append(&ICmpOp{Pred: pred, Lhs: lhs, Rhs: rhs}))
}

// MuxOp selects T or F by Cond (comb.mux, BTOR2 "ite").
type MuxOp struct {
	aliasable
	Cond, T, F Value
}

func (x *MuxOp) Kind() Kind        { return KindMux }
func (x *MuxOp) Operands() []Value { return []Value{x.Cond, x.T, x.F} }
func (x *MuxOp) Result() Type      { return x.T.Type() }

func (m *Module) Mux(cond, t, f Value) Value {
	return FromOp(m.Append(&MuxOp{Cond: cond, T: t, F: f}))
}

// RegOp is the single register representation this system uses, collapsing
// seq::CompRegOp (produced by LTL→Core) and seq::FirRegOp (consumed by
// BTOR2 emission) — see DESIGN.md for why one Go type suffices: BTOR2
// emission never reads a register's own Reset operand, only the module's
// reset port (spec.md §4.4 step 3), so carrying two op identities with
// different reset representations would add a distinction nothing
// observes. Initial records the power-on value (set by LTL→Core's
// has_been_reset register); no pass in this module reads it and Dump does
// not print it. It is distinct from
// Reset/ResetValue (a synthesis-style synchronous reset this system's
// registers never populate — every register built by LTL→Core passes a
// nil Reset, matching the original's dummy-reset CompRegOp construction)
// and from BTOR2's own reset encoding, which is keyed off the module reset
// port, not any op field.
type RegOp struct {
	aliasable
	Name       string
	Next       Value
	Clock      Value
	Reset      Value
	ResetValue Value
	Initial    Value
	Typ        Type
}

func (r *RegOp) Kind() Kind { return KindReg }
func (r *RegOp) Operands() []Value {
	ops := []Value{r.Next, r.Clock}
	if r.Reset.Valid() {
		ops = append(ops, r.Reset, r.ResetValue)
	}
	return ops
}
func (r *RegOp) Result() Type { return r.Typ }

// Reg builds and appends a register with no synthesis reset port (the shape
// every LTL→Core conversion pattern produces — see HasBeenReset/NOI
// counters in internal/ltlcore).
func (m *Module) Reg(name string, next, clock Value, typ Type) *RegOp {
	op := &RegOp{Name: name, Next: next, Clock: clock, Typ: typ}
	m.Append(op)
	return op
}

// SetNext rebinds a register's Next operand, for a caller that builds the
// register before the value it depends on (which itself may reference this
// register). No pass in this module calls it: the LTL→Core conversions
// build Next first and close the loop through internal/backedge instead.
// RegOp itself needs no back-edge indirection because its own identity (the
// *RegOp pointer) is already what downstream consumers reference as a
// Value via FromOp — only the Next operand, not the register's own result,
// is ever the late-bound piece.
func (r *RegOp) SetNext(next Value) { r.Next = next }

// IfOp is a structural marker recording the enable condition of the sv.If
// block an assert was nested in by the original LTLToCore conversion. This
// system has no region/body list (SUPPLEMENTED FEATURES #4): rather than
// modeling nested regions, the enable condition is threaded directly onto
// the ImmediateAssertOp that would otherwise have needed to walk up to a
// parent op. No Module builder, fixture or test in this module constructs
// an IfOp or sets ImmediateAssertOp.Enable.
type IfOp struct {
	aliasable
	Cond Value
}

func (f *IfOp) Kind() Kind        { return KindIf }
func (f *IfOp) Operands() []Value { return []Value{f.Cond} }
func (f *IfOp) Result() Type      { return nil }

// AlwaysOp wraps a single immediate assert under a clocked event, matching
// spec.md §4.3.2's final `always @(edge) { assert_immediate(...) }`
// envelope. It carries no independent BTOR2 meaning (BTOR2 emission skips
// it as an unsupported kind and visits the nested Assert directly, per
// spec.md §4.4's "unsupported op: skip silently").
type AlwaysOp struct {
	aliasable
	Edge   EdgePolarity
	Clock  Value
	Assert *ImmediateAssertOp
}

func (a *AlwaysOp) Kind() Kind        { return KindAlways }
func (a *AlwaysOp) Operands() []Value { return []Value{a.Clock} }
func (a *AlwaysOp) Result() Type      { return nil }

// ImmediateAssertOp is sv.assert: a boolean expression that must hold,
// optionally gated by an enclosing IfOp's condition (Enable).
type ImmediateAssertOp struct {
	aliasable
	Expr   Value
	Enable Value
	Label  string
}

func (a *ImmediateAssertOp) Kind() Kind        { return KindImmediateAssert }
func (a *ImmediateAssertOp) Operands() []Value { return []Value{a.Expr} }
func (a *ImmediateAssertOp) Result() Type      { return nil }

// Assert builds, appends, and wraps an ImmediateAssertOp in an AlwaysOp
// envelope in one step, mirroring the shape every LTL→Core conversion
// pattern produces (spec.md §4.3.2).
func (m *Module) Assert(edge EdgePolarity, clock, expr Value, label string) *ImmediateAssertOp {
	assertOp := &ImmediateAssertOp{Expr: expr, Label: label}
	always := &AlwaysOp{Edge: edge, Clock: clock, Assert: assertOp}
	m.Append(always)
	m.Append(assertOp)
	return assertOp
}

// ImmediateAssumeOp is sv.assume (spec.md §4.4: "assume: constraint").
type ImmediateAssumeOp struct {
	aliasable
	Expr Value
}

func (a *ImmediateAssumeOp) Kind() Kind        { return KindImmediateAssume }
func (a *ImmediateAssumeOp) Operands() []Value { return []Value{a.Expr} }
func (a *ImmediateAssumeOp) Result() Type      { return nil }

func (m *Module) Assume(expr Value) *ImmediateAssumeOp {
	op := &ImmediateAssumeOp{Expr: expr}
	m.Append(op)
	return op
}

// --- LTL dialect: matched and erased by LTL→Core lowering (spec.md §4.3). ---

// LTLClockOp attaches a clock and edge polarity to a property.
type LTLClockOp struct {
	aliasable
	Input Value
	Clock Value
	Edge  EdgePolarity
}

func (c *LTLClockOp) Kind() Kind        { return KindLTLClock }
func (c *LTLClockOp) Operands() []Value { return []Value{c.Input, c.Clock} }
func (c *LTLClockOp) Result() Type      { return LTLPropertyType{} }

func (m *Module) LTLClock(input, clock Value, edge EdgePolarity) Value {
	return FromOp(m.Append(&LTLClockOp{Input: input, Clock: clock, Edge: edge}))
}

// LTLDisableOp gates a property off while Condition holds.
type LTLDisableOp struct {
	aliasable
	Input     Value
	Condition Value
}

func (d *LTLDisableOp) Kind() Kind        { return KindLTLDisable }
func (d *LTLDisableOp) Operands() []Value { return []Value{d.Input, d.Condition} }
func (d *LTLDisableOp) Result() Type      { return LTLPropertyType{} }

func (m *Module) LTLDisable(input, condition Value) Value {
	return FromOp(m.Append(&LTLDisableOp{Input: input, Condition: condition}))
}

// LTLImplicationOp is `antecedent |-> consequent` (overlapping) in its raw
// form; LTL→Core's NOI pattern further recognizes a delayed-sequence
// antecedent (spec.md §4.3.2's non-overlapping case).
type LTLImplicationOp struct {
	aliasable
	Antecedent Value
	Consequent Value
}

func (i *LTLImplicationOp) Kind() Kind        { return KindLTLImplication }
func (i *LTLImplicationOp) Operands() []Value { return []Value{i.Antecedent, i.Consequent} }
func (i *LTLImplicationOp) Result() Type      { return LTLPropertyType{} }

func (m *Module) LTLImplication(antecedent, consequent Value) Value {
	return FromOp(m.Append(&LTLImplicationOp{Antecedent: antecedent, Consequent: consequent}))
}

// LTLConcatOp concatenates boolean sequences; the NOI pattern recognizes
// concat(antecedent, delay(true, n, 0)) as its delayed-antecedent shape.
type LTLConcatOp struct {
	aliasable
	Operands_ []Value
}

func (c *LTLConcatOp) Kind() Kind        { return KindLTLConcat }
func (c *LTLConcatOp) Operands() []Value { return c.Operands_ }
func (c *LTLConcatOp) Result() Type      { return LTLSequenceType{} }

func (m *Module) LTLConcat(operands ...Value) Value {
	return FromOp(m.Append(&LTLConcatOp{Operands_: operands}))
}

// LTLDelayOp is `##[Delay:Delay+Length] Input` (sequence delay). The NOI
// pattern requires Length == 0 (a fixed, not ranged, delay) and Input a
// constant true (spec.md §4.3.2).
type LTLDelayOp struct {
	aliasable
	Input  Value
	Delay  int
	Length int
}

func (d *LTLDelayOp) Kind() Kind        { return KindLTLDelay }
func (d *LTLDelayOp) Operands() []Value { return []Value{d.Input} }
func (d *LTLDelayOp) Result() Type      { return LTLSequenceType{} }

func (m *Module) LTLDelay(input Value, delay, length int) Value {
	return FromOp(m.Append(&LTLDelayOp{Input: input, Delay: delay, Length: length}))
}

// --- Verif dialect: illegal after LTL→Core lowering. ---

// VerifAssertOp is the top-level clocked property assertion LTL→Core
// rewrites into an AlwaysOp/ImmediateAssertOp pair (spec.md §4.3.2).
type VerifAssertOp struct {
	aliasable
	Property Value
	Label    string
}

func (v *VerifAssertOp) Kind() Kind        { return KindVerifAssert }
func (v *VerifAssertOp) Operands() []Value { return []Value{v.Property} }
func (v *VerifAssertOp) Result() Type      { return nil }

func (m *Module) VerifAssert(property Value, label string) *VerifAssertOp {
	op := &VerifAssertOp{Property: property, Label: label}
	m.Append(op)
	return op
}

// VerifHasBeenResetOp is `verif.has_been_reset(clock, reset)` (spec.md
// §4.3.1): true once Reset has been asserted at least once since start.
type VerifHasBeenResetOp struct {
	aliasable
	Clock Value
	Reset Value
}

func (h *VerifHasBeenResetOp) Kind() Kind        { return KindVerifHasBeenReset }
func (h *VerifHasBeenResetOp) Operands() []Value { return []Value{h.Clock, h.Reset} }
func (h *VerifHasBeenResetOp) Result() Type      { return I1 }

func (m *Module) HasBeenReset(clock, reset Value) Value {
	return FromOp(m.Append(&VerifHasBeenResetOp{Clock: clock, Reset: reset}))
}
