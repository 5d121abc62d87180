package jsonfield

import (
	"fmt"
	"sort"
	"sync"

	"github.com/neon-law-foundation/notation/pkg/domain"
)

// Registry manages the available field validators.
type Registry struct {
	mu         sync.RWMutex
	validators map[Kind]Validator
}

// NewRegistry creates a registry preloaded with the built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{
		validators: make(map[Kind]Validator),
	}
	r.Register(KindQuestionMap, ValidateQuestionMap)
	r.Register(KindDocumentMappings, ValidateDocumentMappings)
	r.Register(KindChangelog, ValidateChangelog)
	return r
}

// Register adds a validator to the registry.
// If a validator with the same kind exists, it is overwritten.
func (r *Registry) Register(kind Kind, fn Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[kind] = fn
}

// Validate looks up a validator by kind and runs it.
// Returns an error wrapping domain.ErrUnknownFieldKind if the kind is not registered.
func (r *Registry) Validate(kind Kind, text string) (domain.SchemaValidationResult, error) {
	r.mu.RLock()
	fn, ok := r.validators[kind]
	r.mu.RUnlock()

	if !ok {
		return domain.SchemaValidationResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownFieldKind, kind)
	}
	return fn(text), nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.validators))
	for k := range r.validators {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

var defaultRegistry = NewRegistry()

// Validate runs the built-in validator for kind.
func Validate(kind Kind, text string) (domain.SchemaValidationResult, error) {
	return defaultRegistry.Validate(kind, text)
}

// Kinds lists the built-in kinds.
func Kinds() []Kind {
	return defaultRegistry.Kinds()
}
