package ir

// Direction is a module port's direction.
type Direction int

const (
	DirInput Direction = iota
	DirOutput
)

// PortInfo describes one module port, mirroring hw::PortInfo (spec.md §4.4
// step 1: "each input port becomes an input/state line").
type PortInfo struct {
	Name string
	Dir  Direction
	Typ  Type
}

// Module is the flat, caller-ordered operation list both passes walk.
// There is no nested-region representation: sv.IfOp/sv.AlwaysOp containment
// is threaded explicitly through op fields rather than through a region
// body list (SPEC_FULL.md "Module-walk ordering" supplement). Ops is never
// reordered once appended — spec.md §4.4's walk assumes upstream order is
// already valid except for register next-arcs — so a pass that replaces an
// op already consumed earlier in the list must insert the replacement's
// dependency chain via SetInsertionPoint rather than a plain Append, or a
// later-but-earlier-positioned consumer ends up referencing an op with no
// LID yet.
type Module struct {
	Name  string
	Ports []PortInfo
	Ops   []Op

	args     []*BlockArgument
	insertAt int
}

// NewModule constructs a module with the given ports. Block arguments are
// allocated once up front so repeated calls to Arg return the identical
// *BlockArgument (spec.md §3's "two values compare equal iff they name the
// same SSA definition" invariant).
func NewModule(name string, ports []PortInfo) *Module {
	m := &Module{Name: name, Ports: ports, insertAt: -1}
	m.args = make([]*BlockArgument, len(ports))
	for i, p := range ports {
		m.args[i] = &BlockArgument{Module: m, Index: i, Name: p.Name, Dir: p.Dir, Typ: p.Typ}
	}
	return m
}

// SetInsertionPoint redirects subsequent Append calls to just before op,
// mirroring MLIR's OpBuilder::setInsertionPoint(op). A conversion pattern
// uses this so the ops it builds to replace op land immediately ahead of it
// in module order, rather than at the end of the module — the position an
// existing, earlier-placed consumer of op's result may already occupy
// (SPEC_FULL.md "Module-walk ordering" supplement). No-op if op is absent.
func (m *Module) SetInsertionPoint(op Op) {
	for i, o := range m.Ops {
		if o == op {
			m.insertAt = i
			return
		}
	}
}

// ResetInsertionPoint returns Append to appending at the end of the module.
func (m *Module) ResetInsertionPoint() {
	m.insertAt = -1
}

// Arg returns the i'th port as an SSA value.
func (m *Module) Arg(i int) Value {
	return FromArg(m.args[i])
}

// ArgNamed looks up a port by name. Panics if absent: a pass asking for a
// port that doesn't exist is a programmer error, not a shape mismatch.
func (m *Module) ArgNamed(name string) Value {
	for _, a := range m.args {
		if a.Name == name {
			return FromArg(a)
		}
	}
	panic("ir: module " + m.Name + " has no port named " + name)
}

// Append adds op at the current insertion point (the end of the module,
// unless SetInsertionPoint is active) and returns it, mirroring
// OpBuilder::create inserting at the builder's insertion point.
func (m *Module) Append(op Op) Op {
	if m.insertAt < 0 {
		m.Ops = append(m.Ops, op)
		return op
	}
	m.Ops = append(m.Ops, nil)
	copy(m.Ops[m.insertAt+1:], m.Ops[m.insertAt:])
	m.Ops[m.insertAt] = op
	m.insertAt++
	return op
}

// Replace swaps old for replacement at old's position in the op list. No
// pass in this module calls it (LTL→Core redirects consumers with SetAlias
// and removes matched ops with Erase); unlike MLIR's RAUW this does not
// rewrite other operands
// that reference old — callers must route through a back-edge (see
// internal/backedge) or have never let old escape as an operand value.
func (m *Module) Replace(old Op, replacement Op) {
	for i, op := range m.Ops {
		if op == old {
			m.Ops[i] = replacement
			return
		}
	}
}

// Erase removes op from the module's operation list. No-op if op is absent.
func (m *Module) Erase(op Op) {
	out := m.Ops[:0]
	for _, o := range m.Ops {
		if o != op {
			out = append(out, o)
		}
	}
	m.Ops = out
}

// Walk visits every operation in module order, matching the flat module
// walk spec.md §4.4 step 2 describes.
func (m *Module) Walk(visit func(Op)) {
	for _, op := range m.Ops {
		visit(op)
	}
}
