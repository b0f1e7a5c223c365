package ir

// Kind tags an operation's dialect/mnemonic. The BTOR2 visitor (spec.md
// §4.4) reads Kind rather than Go's dynamic type for the binary op family
// (one BinaryOp struct, mnemonic taken from Kind), mirroring the upstream
// TypeSwitch over a handful of op kinds. The LTL pattern matchers select
// ops by Go type (matcher.OpOf) and do not read Kind.
type Kind int

const (
	KindConstant Kind = iota
	KindWire
	KindOutput

	// Comb/HW binary operations (spec.md §4.4 table).
	KindAdd
	KindSub
	KindMul
	KindDivU
	KindDivS
	KindModS
	KindShl
	KindShrU
	KindShrS
	KindAnd
	KindOr
	KindXor
	KindConcat // bit concatenation, distinct from ltl.concat (KindLTLConcat)

	KindExtract
	KindICmp
	KindMux

	KindReg

	// SV-dialect constructs inserted by LTL→Core lowering and consumed by
	// BTOR2 emission.
	KindIf
	KindAlways
	KindImmediateAssert
	KindImmediateAssume

	// LTL dialect, matched and erased by LTL→Core lowering.
	KindLTLClock
	KindLTLDisable
	KindLTLImplication
	KindLTLConcat
	KindLTLDelay

	// Verif dialect, illegal after LTL→Core lowering (spec.md §4.3 legality target).
	KindVerifAssert
	KindVerifHasBeenReset

	// KindBackedge never appears in a finished module; see internal/backedge.
	KindBackedge
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindWire:
		return "wire"
	case KindOutput:
		return "output"
	case KindAdd:
		return "add"
	case KindSub:
		return "sub"
	case KindMul:
		return "mul"
	case KindDivU:
		return "divu"
	case KindDivS:
		return "divs"
	case KindModS:
		return "mods"
	case KindShl:
		return "shl"
	case KindShrU:
		return "shru"
	case KindShrS:
		return "shrs"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindXor:
		return "xor"
	case KindConcat:
		return "concat"
	case KindExtract:
		return "extract"
	case KindICmp:
		return "icmp"
	case KindMux:
		return "mux"
	case KindReg:
		return "reg"
	case KindIf:
		return "if"
	case KindAlways:
		return "always"
	case KindImmediateAssert:
		return "sv.assert"
	case KindImmediateAssume:
		return "sv.assume"
	case KindLTLClock:
		return "ltl.clock"
	case KindLTLDisable:
		return "ltl.disable"
	case KindLTLImplication:
		return "ltl.implication"
	case KindLTLConcat:
		return "ltl.concat"
	case KindLTLDelay:
		return "ltl.delay"
	case KindVerifAssert:
		return "verif.assert"
	case KindVerifHasBeenReset:
		return "verif.has_been_reset"
	case KindBackedge:
		return "backedge"
	default:
		return "unknown"
	}
}

// IsLTL reports whether the kind belongs to the LTL dialect.
func (k Kind) IsLTL() bool {
	switch k {
	case KindLTLClock, KindLTLDisable, KindLTLImplication, KindLTLConcat, KindLTLDelay:
		return true
	}
	return false
}

// IsVerif reports whether the kind belongs to the Verif dialect.
func (k Kind) IsVerif() bool {
	return k == KindVerifAssert || k == KindVerifHasBeenReset
}

// EdgePolarity mirrors ltl::ClockEdge / sv::EventControl (spec.md §4.3.2,
// §9 "Edge polarity").
type EdgePolarity int

const (
	EdgePos EdgePolarity = iota
	EdgeNeg
	EdgeBoth
)

func (e EdgePolarity) String() string {
	switch e {
	case EdgePos:
		return "posedge"
	case EdgeNeg:
		return "negedge"
	case EdgeBoth:
		return "edge"
	default:
		return "unknown"
	}
}

// Predicate is a comb-style integer comparison predicate (supplemented
// feature #1 in SPEC_FULL.md — the full table, not just the ne->neq remap).
type Predicate int

const (
	PredEq Predicate = iota
	PredNe
	PredUlt
	PredUle
	PredUgt
	PredUge
	PredSlt
	PredSle
	PredSgt
	PredSge
)

// Btor2Mnemonic returns the BTOR2 instruction name for the predicate,
// applying the ne->neq rename spec.md §4.4 calls out explicitly.
func (p Predicate) Btor2Mnemonic() string {
	switch p {
	case PredEq:
		return "eq"
	case PredNe:
		return "neq"
	case PredUlt:
		return "ult"
	case PredUle:
		return "ulte"
	case PredUgt:
		return "ugt"
	case PredUge:
		return "ugte"
	case PredSlt:
		return "slt"
	case PredSle:
		return "slte"
	case PredSgt:
		return "sgt"
	case PredSge:
		return "sgte"
	default:
		return "unknown"
	}
}
