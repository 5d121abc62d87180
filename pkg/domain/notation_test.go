package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseQuestionReference(t *testing.T) {
	tests := []struct {
		state  string
		want   QuestionReference
		wantOK bool
	}{
		{state: "q1__name", want: QuestionReference{State: "q1__name", Code: "name"}, wantOK: true},
		{state: "sr__approve", want: QuestionReference{State: "sr__approve", Code: "approve"}, wantOK: true},
		{
			state:  "ask__email__for_client",
			want:   QuestionReference{State: "ask__email__for_client", Code: "email", Variable: "client"},
			wantOK: true,
		},
		{state: "plain_state", wantOK: false},
		{state: "trailing__", wantOK: false},
		{state: "BEGIN", wantOK: false},
		{state: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			got, ok := ParseQuestionReference(tt.state)
			if ok != tt.wantOK {
				t.Fatalf("ParseQuestionReference(%q) ok = %v, want %v", tt.state, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseQuestionReference(%q) = %+v, want %+v", tt.state, got, tt.want)
			}
		})
	}
}

func TestStateMachine(t *testing.T) {
	m := StateMachine{
		"q2__email": {"_": "END"},
		"BEGIN":     {"_yes": "q2__email", "_": "q1__name", "_no": "ERROR"},
		"q1__name":  {"_": "END"},
	}

	if !m.HasBegin() {
		t.Error("HasBegin() = false, want true")
	}
	if got, want := m.States(), []string{"BEGIN", "q1__name", "q2__email"}; !reflect.DeepEqual(got, want) {
		t.Errorf("States() = %v, want %v", got, want)
	}
	if got, want := m["BEGIN"].Targets(), []string{"q1__name", "ERROR", "q2__email"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Targets() = %v, want %v", got, want)
	}
	if (StateMachine{"a": {}}).HasBegin() {
		t.Error("HasBegin() = true for a machine without BEGIN")
	}
}

func TestIsTerminal(t *testing.T) {
	for state, want := range map[string]bool{"END": true, "ERROR": true, "BEGIN": false, "end": false} {
		if got := IsTerminal(state); got != want {
			t.Errorf("IsTerminal(%q) = %v, want %v", state, got, want)
		}
	}
}

func TestVariableReference(t *testing.T) {
	dotted := VariableReference{Path: "entity.name"}
	if dotted.Root() != "entity" || !dotted.Dotted() {
		t.Errorf("entity.name: Root() = %q, Dotted() = %v", dotted.Root(), dotted.Dotted())
	}
	plain := VariableReference{Path: "total"}
	if plain.Root() != "total" || plain.Dotted() {
		t.Errorf("total: Root() = %q, Dotted() = %v", plain.Root(), plain.Dotted())
	}
}

func TestValidationResponse_JSON(t *testing.T) {
	res := ValidationResponse{
		Valid: false,
		Errors: []ValidationError{
			{Type: ErrorMissingFrontmatter, Message: "document must start with ---", Line: 1},
		},
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"valid":false,"errors":[{"type":"missing_frontmatter","message":"document must start with ---","line":1}]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestNewSchemaValidationResult(t *testing.T) {
	ok := NewSchemaValidationResult(nil)
	if !ok.IsValid || ok.Errors == nil {
		t.Errorf("NewSchemaValidationResult(nil) = %+v, want valid with empty errors", ok)
	}
	data, _ := json.Marshal(ok)
	if string(data) != `{"isValid":true,"errors":[]}` {
		t.Errorf("Marshal = %s", data)
	}

	bad := NewSchemaValidationResult([]string{"changes: required"})
	if bad.IsValid {
		t.Error("IsValid = true with errors present")
	}
}
