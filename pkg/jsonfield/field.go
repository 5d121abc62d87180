package jsonfield

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/neon-law-foundation/notation/pkg/schema"
)

// Kind names a JSON field shape.
type Kind string

const (
	KindQuestionMap      Kind = "question_map"
	KindDocumentMappings Kind = "document_mappings"
	KindChangelog        Kind = "changelog"
)

// Validator validates raw JSON text for one field kind.
type Validator func(text string) domain.SchemaValidationResult

// decode parses text into generic JSON values. The returned message is empty on success.
func decode(text string) (any, string) {
	if !utf8.ValidString(text) {
		return nil, "invalid JSON: input is not valid UTF-8"
	}
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, fmt.Sprintf("invalid JSON: %v", err)
	}
	return value, ""
}

// validateAgainst decodes text and checks it against typ.
func validateAgainst(typ schema.Type, text string) domain.SchemaValidationResult {
	value, parseErr := decode(text)
	if parseErr != "" {
		return domain.NewSchemaValidationResult([]string{parseErr})
	}
	return domain.NewSchemaValidationResult(schema.Messages(schema.Check(typ, value, "")))
}

// decodeValid unmarshals text into out after it passed validate.
func decodeValid(validate Validator, text string, out any) error {
	if res := validate(text); !res.IsValid {
		return &InvalidError{Errors: res.Errors}
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decode field: %w", err)
	}
	return nil
}

// InvalidError is returned by the typed decoders when the text does not validate.
type InvalidError struct {
	Errors []string
}

func (e *InvalidError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0]
	}
	return fmt.Sprintf("%d schema violations: %s (and %d more)", len(e.Errors), e.Errors[0], len(e.Errors)-1)
}
