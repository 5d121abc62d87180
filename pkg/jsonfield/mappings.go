package jsonfield

import (
	"encoding/json"

	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/neon-law-foundation/notation/pkg/schema"
)

// Point is an (x, y) coordinate on a PDF page.
type Point [2]float64

// Placement locates one form field on a PDF page.
type Placement struct {
	Page       int   `json:"page"`
	UpperRight Point `json:"upper_right"`
	LowerRight Point `json:"lower_right"`
	UpperLeft  Point `json:"upper_left"`
	LowerLeft  Point `json:"lower_left"`
}

// UnmarshalJSON reads page as any whole JSON number, so 3, 3.0 and 3e0 agree
// with the schema's integer check.
func (p *Placement) UnmarshalJSON(data []byte) error {
	type plain Placement
	aux := struct {
		Page float64 `json:"page"`
		*plain
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Page = int(aux.Page)
	return nil
}

// DocumentMappings maps a form field name to its placement.
type DocumentMappings map[string]Placement

var point = schema.Array(schema.Float(), 2)

var documentMappingsSchema = schema.Map(schema.Object(schema.Schema{
	"page":        schema.Int(),
	"upper_right": point,
	"lower_right": point,
	"upper_left":  point,
	"lower_left":  point,
}, schema.RequireAll()))

// ValidateDocumentMappings validates a document-mappings field. Every field object
// needs an integer page and four corners given as arrays of exactly two numbers.
func ValidateDocumentMappings(text string) domain.SchemaValidationResult {
	return validateAgainst(documentMappingsSchema, text)
}

// DecodeDocumentMappings validates text and returns the typed placements.
func DecodeDocumentMappings(text string) (DocumentMappings, error) {
	var m DocumentMappings
	if err := decodeValid(ValidateDocumentMappings, text, &m); err != nil {
		return nil, err
	}
	return m, nil
}
