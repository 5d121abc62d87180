/*
Package jsonfield validates the JSON-encoded fields that the persistence layer
stores next to notations and answers.

Three independent kinds are supported:

  - question_map: a state machine literal whose BEGIN state routes "_"-prefixed
    conditions to state identifiers or the END/ERROR terminals.
  - document_mappings: PDF form field placements (page plus four corner points).
  - changelog: an audit trail of {action, timestamp, user_id} entries.

Every validator takes raw JSON text and returns a domain.SchemaValidationResult.
Shape violations are accumulated with their path (e.g. "changes[2].user_id: required");
only a parse failure produces a single generic error. The shapes themselves are
described once with package schema.

Storage layers wrap field values in Field and call Guard immediately before
committing a write:

	err := jsonfield.Guard(
	    jsonfield.Field{Kind: jsonfield.KindDocumentMappings, Text: mappings},
	    jsonfield.Field{Kind: jsonfield.KindChangelog, Text: changelog},
	)
	if err != nil {
	    return err // abort the write; err lists every violation
	}
*/
package jsonfield
