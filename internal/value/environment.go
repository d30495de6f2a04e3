package value

// Env is a stack frame: an ordered set of name->value bindings plus a
// pointer to an optional parent frame. Lookup is nearest-wins. Writes
// distinguish three operations per spec.md §4.3:
//
//   - DefineLocal: always creates/overwrites in the current frame (Let
//     bindings, lambda/PN-block parameter binding).
//   - SetLocal: `set!`'s actual rule, confirmed against
//     original_source/src/interpreter/stack_frame.c's
//     stack_frame_set_variable — it only ever searches and writes the
//     frame it is given, never an enclosing one (see DESIGN.md).
//   - DefineGlobal: walks to the root frame and defines there (`define`,
//     include guards).
type Env struct {
	bindings map[string]Value
	parent   *Env
}

// NewEnv creates a new empty root environment.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]Value)}
}

// Child creates a new environment whose parent is e.
func (e *Env) Child() *Env {
	return &Env{bindings: make(map[string]Value), parent: e}
}

// Get looks up a variable, walking from e to the root.
func (e *Env) Get(name string) (Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// DefineLocal creates or overwrites a binding in e's own frame.
func (e *Env) DefineLocal(name string, v Value) {
	e.bindings[name] = v
}

// SetLocal is the `set!` write rule: write in e's own frame only, creating
// the binding if it is not already present there.
func (e *Env) SetLocal(name string, v Value) {
	e.bindings[name] = v
}

// DefineGlobal walks to the root frame and defines name there.
func (e *Env) DefineGlobal(name string, v Value) {
	e.Global().bindings[name] = v
}

// Global returns the root frame of the chain.
func (e *Env) Global() *Env {
	frame := e
	for frame.parent != nil {
		frame = frame.parent
	}
	return frame
}

// Clone makes a deep-enough copy for Procedure capture snapshots: a fresh
// frame holding the same bindings (values themselves are not re-cloned,
// since captured values are treated as shared-immutable once snapshotted),
// with the same parent pointer.
func (e *Env) Clone() *Env {
	bindings := make(map[string]Value, len(e.bindings))
	for k, v := range e.bindings {
		bindings[k] = v
	}
	return &Env{bindings: bindings, parent: e.parent}
}

// Snapshot builds a fresh frame, parented at root, containing only the
// named bindings looked up (nearest-wins) from e — the capture-list
// semantics a Lambda/PNBlock/Automaton uses when it is interpreted
// (spec.md §4.4): "Captures are deep-copied into a fresh frame."
func (e *Env) Snapshot(names []string, root *Env) *Env {
	snap := &Env{bindings: make(map[string]Value, len(names)), parent: root}
	for _, name := range names {
		if v, ok := e.Get(name); ok {
			snap.bindings[name] = v.Clone()
		}
	}
	return snap
}
