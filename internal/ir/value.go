package ir

// Op is an opaque node in the IR graph (spec.md §3): a kind tag, zero or
// more operand values, and a result type (nil if the op produces no SSA
// value — assert/assume/output are statements, not expressions).
type Op interface {
	Kind() Kind
	Operands() []Value
	Result() Type
}

// Value is either an operation result or a block argument (module port).
// Two values compare equal iff they name the same SSA definition (spec.md
// §3) — enforced here by storing the defining op/block-argument as a
// pointer-identity-comparable field, never copying the underlying op.
type Value struct {
	op  Op
	arg *BlockArgument
}

// BlockArgument is a module port viewed as an SSA value.
type BlockArgument struct {
	Module *Module
	Index  int
	Name   string
	Dir    Direction
	Typ    Type
}

// FromOp wraps an operation's result as a value. Panics if op has no
// result type, since a valueless op cannot be used as an operand.
func FromOp(op Op) Value {
	if op.Result() == nil {
		panic("ir: operation " + op.Kind().String() + " has no result and cannot be used as a value")
	}
	return Value{op: op}
}

// FromArg wraps a block argument as a value.
func FromArg(a *BlockArgument) Value {
	return Value{arg: a}
}

// Type returns the value's type, resolving through any bound back-edges
// (spec.md §4.2/§9 "self-referential registers").
func (v Value) Type() Type {
	if v.arg != nil {
		return v.arg.Typ
	}
	return Resolve(v).definingOpUnresolved().Result()
}

// DefiningOp returns the op that produced this value, or nil if it is a
// block argument. The returned op has already been resolved through any
// back-edge binding.
func (v Value) DefiningOp() Op {
	if v.arg != nil {
		return nil
	}
	return Resolve(v).definingOpUnresolved()
}

func (v Value) definingOpUnresolved() Op {
	return v.op
}

// IsBlockArg reports whether v names a module port rather than an op result.
func (v Value) IsBlockArg() bool { return v.arg != nil }

// BlockArg returns the underlying block argument; nil if v is an op result.
func (v Value) BlockArg() *BlockArgument { return v.arg }

// Valid reports whether v names anything at all; the zero Value is used as
// a sentinel for "no operand" (e.g. a register with no reset port).
func (v Value) Valid() bool { return v.op != nil || v.arg != nil }

// backedgeHolder is implemented by *Backedge (via the embedded aliasable);
// kept private to ir per Go's rule that an interface's unexported methods
// can only be satisfied by types in the same package as the interface —
// see DESIGN.md for why this pushed every op type, not just Backedge, into
// package ir.
type backedgeHolder interface {
	boundValue() (Value, bool)
}

// Resolve follows a value through any bound back-edges to the value that
// actually defines it. It is the IR-level stand-in for the use-list
// rewriting ("replace all uses") a real IR framework performs when a
// back-edge is set — see internal/backedge and spec.md §9.
func Resolve(v Value) Value {
	for {
		if v.arg != nil || v.op == nil {
			return v
		}
		bh, ok := v.op.(backedgeHolder)
		if !ok {
			return v
		}
		bound, isBound := bh.boundValue()
		if !isBound {
			return v
		}
		v = bound
	}
}
