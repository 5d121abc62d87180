package validator

import (
	"fmt"
	"strings"

	"github.com/neon-law-foundation/notation/pkg/domain"
)

// StateMachine checks one machine: BEGIN must exist, END must be reachable from
// it, and cycles are reported as warnings. Without BEGIN no further analysis runs.
func StateMachine(machine domain.Machine, m domain.StateMachine) ([]domain.ValidationError, []domain.ValidationWarning) {
	if !m.HasBegin() {
		return []domain.ValidationError{{
			Type:       domain.ErrorMissingBeginState,
			Field:      string(machine),
			Message:    fmt.Sprintf("%s has no BEGIN state", machine),
			Suggestion: "Add a BEGIN state that transitions to the first question",
		}}, nil
	}

	var errs []domain.ValidationError
	if !Reachable(m)[domain.StateEnd] {
		errs = append(errs, domain.ValidationError{
			Type:       domain.ErrorNoEndState,
			Field:      string(machine),
			Message:    fmt.Sprintf("%s never reaches END from BEGIN", machine),
			Suggestion: "Route at least one transition path to END",
		})
	}

	var warnings []domain.ValidationWarning
	for _, cycle := range Cycles(m) {
		warnings = append(warnings, domain.ValidationWarning{
			Type:    domain.WarningPotentialInfiniteLoop,
			Message: fmt.Sprintf("%s contains a cycle: %s", machine, strings.Join(cycle, " -> ")),
		})
	}
	return errs, warnings
}

// Reachable returns every state visited by a breadth-first walk from BEGIN.
// Terminals are recorded but never expanded; targets that are not declared
// states are dead ends.
func Reachable(m domain.StateMachine) map[string]bool {
	visited := map[string]bool{domain.StateBegin: true}
	queue := []string{domain.StateBegin}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if domain.IsTerminal(current) {
			continue
		}
		for _, target := range m[current].Targets() {
			if !visited[target] {
				visited[target] = true
				queue = append(queue, target)
			}
		}
	}
	return visited
}

type color int

const (
	white color = iota // unvisited
	gray               // on the stack
	black              // finished
)

type frame struct {
	state   string
	targets []string
	next    int
}

// Cycles walks the machine depth-first from BEGIN with an explicit stack and
// returns one path per state that is re-entered while still on the stack.
// Each path starts and ends with the re-entered state.
func Cycles(m domain.StateMachine) [][]string {
	colors := map[string]color{domain.StateBegin: gray}
	stack := []*frame{{state: domain.StateBegin, targets: m[domain.StateBegin].Targets()}}
	reported := make(map[string]bool)
	var cycles [][]string

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.targets) {
			colors[top.state] = black
			stack = stack[:len(stack)-1]
			continue
		}

		target := top.targets[top.next]
		top.next++
		if domain.IsTerminal(target) {
			continue
		}

		switch colors[target] {
		case gray:
			if !reported[target] {
				reported[target] = true
				cycles = append(cycles, cyclePath(stack, target))
			}
		case white:
			colors[target] = gray
			stack = append(stack, &frame{state: target, targets: m[target].Targets()})
		}
	}
	return cycles
}

func cyclePath(stack []*frame, reentered string) []string {
	var path []string
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].state == reentered {
			for _, f := range stack[i:] {
				path = append(path, f.state)
			}
			break
		}
	}
	return append(path, reentered)
}
