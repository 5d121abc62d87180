package jsonfield_test

import (
	"testing"

	"github.com/neon-law-foundation/notation/pkg/jsonfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuestionMap(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		errors []string
	}{
		{
			name: "Valid",
			text: `{"BEGIN": {"_": "q1__name", "_yes": "END", "_no": "ERROR", "Approve": "anything goes"}, "q1__name": {"_": "END"}}`,
		},
		{
			name: "Empty Target",
			text: `{"BEGIN": {"_": ""}}`,
		},
		{
			name:   "Missing BEGIN",
			text:   `{"q1": {"_": "END"}}`,
			errors: []string{"BEGIN: required"},
		},
		{
			name:   "BEGIN Not Object",
			text:   `{"BEGIN": "q1"}`,
			errors: []string{"BEGIN: expected object, got string"},
		},
		{
			name:   "Top Level Array",
			text:   `[]`,
			errors: []string{"root: expected object, got array"},
		},
		{
			name: "Bad Targets Reported Per Key",
			text: `{"BEGIN": {"_": "next state", "_b": 3, "_c": "END"}}`,
			errors: []string{
				`BEGIN._: value "next state" does not match ^(\w*|END|ERROR)$`,
				`BEGIN._b: expected string, got number`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := jsonfield.ValidateQuestionMap(tt.text)
			assert.Equal(t, len(tt.errors) == 0, res.IsValid)
			if len(tt.errors) == 0 {
				assert.Empty(t, res.Errors)
				return
			}
			assert.Equal(t, tt.errors, res.Errors)
		})
	}
}

func TestValidateQuestionMap_OnlyConditionsAreChecked(t *testing.T) {
	// Targets of non-"_" conditions and other states are left to the engine's
	// state machine checks.
	res := jsonfield.ValidateQuestionMap(`{"BEGIN": {"_": "a", "Yes": 5}, "a": 7}`)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestValidateQuestionMap_InvalidJSON(t *testing.T) {
	for _, text := range []string{"", "{", "{\"BEGIN\": {}}}", "\xff\xfe"} {
		res := jsonfield.ValidateQuestionMap(text)
		assert.False(t, res.IsValid)
		require.Len(t, res.Errors, 1, "parse failures yield a single error for %q", text)
		assert.Contains(t, res.Errors[0], "invalid JSON")
	}
}
