package domain

import (
	"sort"
	"strings"
)

// Reserved state names.
const (
	StateBegin = "BEGIN"
	StateEnd   = "END"
	StateError = "ERROR"
)

// Unconditional is the condition label of a transition that is always taken.
const Unconditional = "_"

// CodeDelimiter separates the description, question code and variable parts of a state identifier.
const CodeDelimiter = "__"

// Machine names one of the two state machines declared by a notation.
type Machine string

const (
	MachineFlow      Machine = "flow"
	MachineAlignment Machine = "alignment"
)

// Machines lists the state machines in validation order.
var Machines = []Machine{MachineFlow, MachineAlignment}

// Transitions maps a condition label to a target state.
type Transitions map[string]string

// Targets returns the transition targets ordered by condition label.
func (t Transitions) Targets() []string {
	conditions := make([]string, 0, len(t))
	for c := range t {
		conditions = append(conditions, c)
	}
	sort.Strings(conditions)

	targets := make([]string, 0, len(conditions))
	for _, c := range conditions {
		targets = append(targets, t[c])
	}
	return targets
}

// StateMachine maps a state name to its outgoing transitions.
// A well-formed machine contains the BEGIN state; END and ERROR are terminals.
type StateMachine map[string]Transitions

// HasBegin reports whether the machine declares the BEGIN state.
func (m StateMachine) HasBegin() bool {
	_, ok := m[StateBegin]
	return ok
}

// States returns the declared state names in sorted order.
func (m StateMachine) States() []string {
	states := make([]string, 0, len(m))
	for s := range m {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

// IsTerminal reports whether state is one of the reserved terminals END or ERROR.
func IsTerminal(state string) bool {
	return state == StateEnd || state == StateError
}

// QuestionReference is a question code embedded in a state identifier using the
// <description>__<code> or <description>__<code>__for_<variable> convention.
type QuestionReference struct {
	State    string
	Code     string
	Variable string
}

// ParseQuestionReference extracts the question code from a state identifier.
// It returns false when the identifier carries no code.
func ParseQuestionReference(state string) (QuestionReference, bool) {
	parts := strings.Split(state, CodeDelimiter)
	if len(parts) < 2 || parts[1] == "" {
		return QuestionReference{}, false
	}
	ref := QuestionReference{State: state, Code: parts[1]}
	if len(parts) > 2 {
		ref.Variable = strings.TrimPrefix(parts[2], "for_")
	}
	return ref, true
}

// VariableReference is one {{ path | filter }} occurrence in a notation body.
type VariableReference struct {
	Path   string
	Filter string
	Line   int
}

// Root returns the part of the path before the first dot.
func (v VariableReference) Root() string {
	root, _, _ := strings.Cut(v.Path, ".")
	return root
}

// Dotted reports whether the path is a dotted reference such as entity.name.
func (v VariableReference) Dotted() bool {
	return strings.Contains(v.Path, ".")
}
