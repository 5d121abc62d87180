// Package validator implements the document-level checks of a notation:
// frontmatter structure, state machine shape, question references and
// template variable usage. Every check accumulates findings; none stop at the
// first problem.
package validator
