package domain

import "errors"

// ErrMissingFrontmatter is returned when the first line of a document is not the "---" delimiter.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// ErrUnclosedFrontmatter is returned when no closing "---" delimiter follows the opening one.
var ErrUnclosedFrontmatter = errors.New("unclosed frontmatter")

// ErrYAMLSyntax is returned when the frontmatter is not valid YAML.
var ErrYAMLSyntax = errors.New("invalid yaml")

// ErrNotAnObject is returned when the frontmatter is valid YAML but not a mapping.
var ErrNotAnObject = errors.New("frontmatter is not a mapping")

// ErrInvalidStateMachine is returned when a flow or alignment value is not a mapping of mappings.
var ErrInvalidStateMachine = errors.New("invalid state machine")

// ErrDocumentTooLarge is returned when a document exceeds the configured size limit.
var ErrDocumentTooLarge = errors.New("document exceeds maximum allowed size")

// ErrInvalidEncoding is returned when a document is not valid UTF-8.
var ErrInvalidEncoding = errors.New("document contains invalid UTF-8 sequences")

// ErrRegistryUnavailable wraps failures of the question or notation registries.
var ErrRegistryUnavailable = errors.New("registry unavailable")

// ErrUnknownFieldKind is returned when a JSON field kind has no registered validator.
var ErrUnknownFieldKind = errors.New("unknown field kind")
