package jsonfield

import (
	"regexp"

	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/neon-law-foundation/notation/pkg/schema"
)

// stateTarget matches the targets allowed for "_"-prefixed conditions of BEGIN.
var stateTarget = regexp.MustCompile(`^(\w*|END|ERROR)$`)

var questionMapSchema = schema.Object(schema.Schema{
	domain.StateBegin: schema.Object(nil,
		schema.KeysWithPrefix(domain.Unconditional, schema.Pattern(stateTarget)),
	),
}, schema.Required(domain.StateBegin))

// ValidateQuestionMap validates a question-map field: an object whose BEGIN value is
// an object, where every "_"-prefixed key maps to a state identifier or terminal.
func ValidateQuestionMap(text string) domain.SchemaValidationResult {
	return validateAgainst(questionMapSchema, text)
}
