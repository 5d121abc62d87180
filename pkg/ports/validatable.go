package ports

import "github.com/neon-law-foundation/notation/pkg/domain"

// Validatable is implemented by values that must be checked by the storage layer
// immediately before a write commits. A result that is not valid aborts the write.
type Validatable interface {
	Validate() domain.SchemaValidationResult
}
