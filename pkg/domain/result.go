package domain

// Error types reported in ValidationError.Type.
const (
	ErrorMissingFrontmatter  = "missing_frontmatter"
	ErrorUnclosedFrontmatter = "unclosed_frontmatter"
	ErrorYAMLSyntax          = "yaml_syntax"
	ErrorNotAnObject         = "not_an_object"
	ErrorInvalidEncoding     = "invalid_encoding"
	ErrorDocumentTooLarge    = "document_too_large"
	ErrorMissingField        = "missing_field"
	ErrorInvalidFieldValue   = "invalid_field_value"
	ErrorFieldTooLong        = "field_too_long"
	ErrorMissingBeginState   = "missing_begin_state"
	ErrorNoEndState          = "no_end_state"
	ErrorInvalidStateMachine = "invalid_state_machine"
	ErrorMissingQuestion     = "missing_question"
	ErrorDuplicateCode       = "duplicate_code"
	ErrorRegistryUnavailable = "registry_unavailable"
)

// Warning types reported in ValidationWarning.Type.
const (
	WarningPotentialInfiniteLoop = "potential_infinite_loop"
	WarningUnsupportedFilter     = "unsupported_filter"
	WarningUndefinedVariable     = "undefined_variable"
)

// ValidationError is a problem that makes a notation invalid.
type ValidationError struct {
	Type       string `json:"type"`
	Field      string `json:"field,omitempty"`
	Message    string `json:"message"`
	Line       int    `json:"line,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidationWarning is an advisory finding that does not affect validity.
type ValidationWarning struct {
	Type     string `json:"type"`
	Variable string `json:"variable,omitempty"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
}

// ValidationResponse aggregates every finding of one validation call.
// Warnings are only populated when the caller opted in.
type ValidationResponse struct {
	Valid    bool                `json:"valid"`
	Errors   []ValidationError   `json:"errors"`
	Warnings []ValidationWarning `json:"warnings,omitempty"`
}

// SchemaValidationResult is the outcome of validating one JSON field.
type SchemaValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// NewSchemaValidationResult builds a result whose validity follows from errs.
func NewSchemaValidationResult(errs []string) SchemaValidationResult {
	if errs == nil {
		errs = []string{}
	}
	return SchemaValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
