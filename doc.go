/*
Package notation validates notation documents: legal-workflow templates written as a YAML
frontmatter block followed by a Markdown body.

A notation declares two state machines, flow and alignment, whose states may reference
questions by code (state__code). The Engine checks a document in stages and accumulates every
finding instead of stopping at the first one.

# Checks

  - Admission: size limit and UTF-8 validity.
  - Frontmatter: the document must open with a --- fenced YAML mapping.
  - Structure: code, title, description, flow and alignment are required; title is at most
    255 characters; respondent_type, when present, is org or org_and_person.
  - State machines: BEGIN must exist and END must be reachable from it; cycles are reported
    as warnings.
  - Questions: every referenced question code must exist in the QuestionRegistry.
  - Variables: {{ path | filter }} interpolations in the body are checked for unsupported
    filters and undefined roots (warnings).
  - Uniqueness: the code must not already be used by a stored notation.

Registries are optional. Without a question registry references are not resolved, and without
a notation registry uniqueness is not checked.

# Usage

	engine := notation.New(
		notation.WithQuestionRegistry(memory.NewQuestionRegistry("client_name")),
		notation.WithNotationRegistry(memory.NewNotationRegistry()),
		notation.WithLogger(logging.New(slog.LevelInfo)),
	)

	res, err := engine.Validate(ctx, document, notation.WithWarnings())
	if err != nil {
		// ctx ended before validation completed
	}
	for _, e := range res.Errors {
		fmt.Println(e.Line, e.Type, e.Message)
	}

JSON fields stored next to a notation (question maps, document mappings and changelogs) are
validated with Engine.ValidateField or directly through package jsonfield.
*/
package notation
