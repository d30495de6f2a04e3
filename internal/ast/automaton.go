package ast

import "fmt"

// HeadOpKind is one per-tape head operation kind.
type HeadOpKind byte

const (
	HeadMoveLeft HeadOpKind = iota
	HeadMoveRight
	HeadWrite
	HeadNop
)

// HeadOp is one tape's operation within a Transition; WriteValue is only
// set when Kind is HeadWrite.
type HeadOp struct {
	Kind       HeadOpKind
	WriteValue Node
}

func (h HeadOp) String() string {
	switch h.Kind {
	case HeadMoveLeft:
		return "<-"
	case HeadMoveRight:
		return "->"
	case HeadWrite:
		return fmt.Sprintf(".%s", h.WriteValue)
	default:
		return "nop"
	}
}

// Action is the discrete outcome of a firing Transition.
type Action byte

const (
	ActionHalt Action = iota
	ActionAccept
	ActionReject
	ActionContinue
)

// Transition is one row of a State's transition table. NextStateIndex is
// only meaningful when Action is ActionContinue; the parser has already
// resolved the target (an integer state index, or one of
// self/next/halt/accept/reject) — "self" resolves to the owning state's own
// index and "next" to index+1; halt/accept/reject set Action instead.
// States carry no names, so a target cannot name another state.
type Transition struct {
	Condition      Node
	HeadOps        []HeadOp
	Output         Node
	NextStateIndex int
	Action         Action
}

// State is one row of an Automaton's state list.
type State struct {
	BaseMachine Node
	Output      Node
	Transitions []Transition
}

// Automaton is a first-class multi-tape Turing machine expression. Compiled
// is populated lazily by pkg/automaton on first interpretation — an
// idempotent populate-then-read cache (spec.md §3.2, §4.6). It is typed as
// interface{} here for the same reason Procedure.Node is: pkg/automaton
// depends on internal/ast, so ast cannot depend back on pkg/automaton.
type Automaton struct {
	baseNode
	Tapes    int
	Captures []string
	States   []State

	Compiled interface{}
}

func NewAutomaton(pos Pos, tapes int, captures []string, states []State) *Automaton {
	return &Automaton{baseNode: baseNode{pos}, Tapes: tapes, Captures: captures, States: states}
}

func (a *Automaton) String() string {
	return fmt.Sprintf("(automaton %d tapes, %d states)", a.Tapes, len(a.States))
}
