package graph_test

import (
	"strings"
	"testing"

	"github.com/neon-law-foundation/notation/internal/presentation/graph"
	"github.com/neon-law-foundation/notation/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		machine  domain.StateMachine
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name:    "BEGIN Shape",
			machine: domain.StateMachine{"BEGIN": {"_": "END"}},
			contains: []string{
				"BEGIN((\"BEGIN\"))",
				"END(((\"END\")))",
				"BEGIN --> END",
			},
		},
		{
			name:    "Question State Shape",
			machine: domain.StateMachine{"BEGIN": {"_": "q1__name"}, "q1__name": {"_": "END"}},
			contains: []string{
				"q1__name[/\"q1__name\"/]",
			},
		},
		{
			name:     "Plain State Shape",
			machine:  domain.StateMachine{"BEGIN": {"_": "intro"}, "intro": {"_": "END"}},
			contains: []string{"intro[\"intro\"]"},
			excludes: []string{"ERROR"},
		},
		{
			name: "ID Sanitization",
			machine: domain.StateMachine{
				"BEGIN":       {"_": "step-one.md"},
				"step-one.md": {"_": "end"},
			},
			contains: []string{
				"step_one_md[\"step-one.md\"]",
				"step_one_md --> end_",
			},
		},
		{
			name: "Condition Labels And Escaping",
			machine: domain.StateMachine{
				"BEGIN":       {"_": "sr__approve"},
				"sr__approve": {"Approve": "END", `say "no"`: "ERROR"},
			},
			contains: []string{
				`sr__approve -- "Approve" --> END`,
				`sr__approve -- "say 'no'" --> ERROR`,
				"ERROR(((\"ERROR\")))",
			},
		},
		{
			name:    "Overlay",
			machine: domain.StateMachine{"BEGIN": {"_": "a"}, "a": {"_": "a"}, "island": {"_": "END"}},
			overlay: &graph.Overlay{Unreachable: []string{"island", "END"}, Cyclic: []string{"a", "a"}},
			contains: []string{
				"classDef unreachable",
				"class island unreachable;",
				"class END unreachable;",
				"class a cyclic;",
			},
		},
		{
			name:     "Empty Overlay Adds No Styles",
			machine:  domain.StateMachine{"BEGIN": {"_": "END"}},
			overlay:  &graph.Overlay{},
			excludes: []string{"classDef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.machine, tt.overlay)
			if !strings.HasPrefix(got, "graph TD\n") {
				t.Errorf("GenerateMermaid() missing header:\n%v", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnexpected substring: %v", got, unwanted)
				}
			}
			if strings.Count(got, "class a cyclic;") > 1 {
				t.Errorf("GenerateMermaid() styled a state twice:\n%v", got)
			}
		})
	}
}

func TestGenerateMermaid_Deterministic(t *testing.T) {
	m := domain.StateMachine{
		"BEGIN": {"_b": "b", "_a": "a"},
		"a":     {"_": "END"},
		"b":     {"_": "END"},
	}
	first := graph.GenerateMermaid(m, nil)
	for i := 0; i < 10; i++ {
		if got := graph.GenerateMermaid(m, nil); got != first {
			t.Fatalf("GenerateMermaid() output changed between calls:\n%v\n---\n%v", first, got)
		}
	}
}
