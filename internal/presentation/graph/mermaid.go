package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/neon-law-foundation/notation/pkg/domain"
)

// Overlay contains analysis results to visualize on the graph.
type Overlay struct {
	// Unreachable states are not visited from BEGIN.
	Unreachable []string
	// Cyclic states are re-entered while still on a path from BEGIN.
	Cyclic []string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a state machine.
// It applies semantic styling:
// - BEGIN: ((Circle))
// - END / ERROR: (((Double circle)))
// - Question state (carries a code): [/Parallelogram/]
// - Default: [Rectangle]
// Unconditional transitions are unlabeled; terminals referenced but not declared
// are still drawn. It also applies overlay styles if provided.
func GenerateMermaid(m domain.StateMachine, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	drawn := make(map[string]bool)
	for _, state := range m.States() {
		writeNode(&sb, state)
		drawn[state] = true
	}
	for _, terminal := range []string{domain.StateEnd, domain.StateError} {
		if !drawn[terminal] && references(m, terminal) {
			writeNode(&sb, terminal)
		}
	}

	for _, state := range m.States() {
		transitions := m[state]
		conditions := make([]string, 0, len(transitions))
		for c := range transitions {
			conditions = append(conditions, c)
		}
		sort.Strings(conditions)

		for _, cond := range conditions {
			arrow := "-->"
			if cond != domain.Unconditional {
				// Escape double quotes in condition for Mermaid label
				arrow = fmt.Sprintf("-- \"%s\" -->", strings.ReplaceAll(cond, "\"", "'"))
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(state), arrow, sanitizeMermaidID(transitions[cond])))
		}
	}

	if overlay != nil && (len(overlay.Unreachable) > 0 || len(overlay.Cyclic) > 0) {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef unreachable fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4 4,color:#000;\n")
		sb.WriteString("    classDef cyclic fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")
		writeClass(&sb, overlay.Unreachable, "unreachable")
		writeClass(&sb, overlay.Cyclic, "cyclic")
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, state string) {
	opener, closer := "[", "]"
	switch {
	case state == domain.StateBegin:
		opener, closer = "((", "))"
	case domain.IsTerminal(state):
		opener, closer = "(((", ")))"
	default:
		if _, ok := domain.ParseQuestionReference(state); ok {
			opener, closer = "[/", "/]"
		}
	}
	sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(state), opener, state, closer))
}

func writeClass(sb *strings.Builder, states []string, class string) {
	seen := make(map[string]bool)
	for _, s := range states {
		safeID := sanitizeMermaidID(s)
		if !seen[safeID] && safeID != "" {
			seen[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", safeID, class))
		}
	}
}

func references(m domain.StateMachine, target string) bool {
	for _, transitions := range m {
		for _, t := range transitions {
			if t == target {
				return true
			}
		}
	}
	return false
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	if s == "end" {
		// "end" is a Mermaid keyword
		s = "end_"
	}
	return s
}
