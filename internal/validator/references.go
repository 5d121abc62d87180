package validator

import (
	"context"
	"fmt"
	"sort"

	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/neon-law-foundation/notation/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// DefaultLookupConcurrency bounds parallel Exists calls when the registry has no batch lookup.
const DefaultLookupConcurrency = 4

// QuestionReferences returns one reference per distinct question code in m,
// ordered by code. State keys other than BEGIN and transition targets other
// than END and ERROR are inspected; the first referencing state in sorted
// order is kept.
func QuestionReferences(m domain.StateMachine) []domain.QuestionReference {
	byCode := make(map[string]domain.QuestionReference)
	add := func(state string) {
		ref, ok := domain.ParseQuestionReference(state)
		if !ok {
			return
		}
		if _, seen := byCode[ref.Code]; !seen {
			byCode[ref.Code] = ref
		}
	}

	for _, state := range m.States() {
		if state != domain.StateBegin {
			add(state)
		}
		for _, target := range m[state].Targets() {
			if !domain.IsTerminal(target) {
				add(target)
			}
		}
	}

	refs := make([]domain.QuestionReference, 0, len(byCode))
	for _, ref := range byCode {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Code < refs[j].Code })
	return refs
}

// Resolver checks question codes against a registry.
type Resolver struct {
	registry    ports.QuestionRegistry
	concurrency int
}

// NewResolver creates a resolver. A concurrency below 1 uses DefaultLookupConcurrency.
func NewResolver(registry ports.QuestionRegistry, concurrency int) *Resolver {
	if concurrency < 1 {
		concurrency = DefaultLookupConcurrency
	}
	return &Resolver{registry: registry, concurrency: concurrency}
}

// Missing returns the codes the registry does not know, in input order.
// Registries implementing ports.BatchQuestionRegistry are queried once; others
// are queried per code through a bounded errgroup. Any lookup failure is
// returned wrapped in domain.ErrRegistryUnavailable.
func (r *Resolver) Missing(ctx context.Context, codes []string) ([]string, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	found := make([]bool, len(codes))
	if batch, ok := r.registry.(ports.BatchQuestionRegistry); ok {
		exists, err := batch.ExistsAll(ctx, codes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrRegistryUnavailable, err)
		}
		for i, code := range codes {
			found[i] = exists[code]
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.concurrency)
		for i, code := range codes {
			g.Go(func() error {
				ok, err := r.registry.Exists(gctx, code)
				if err != nil {
					return fmt.Errorf("lookup question %q: %w", code, err)
				}
				found[i] = ok
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrRegistryUnavailable, err)
		}
	}

	var missing []string
	for i, code := range codes {
		if !found[i] {
			missing = append(missing, code)
		}
	}
	return missing, nil
}

// Resolve reports one missing_question error per unknown code referenced by m.
func (r *Resolver) Resolve(ctx context.Context, machine domain.Machine, m domain.StateMachine) ([]domain.ValidationError, error) {
	refs := QuestionReferences(m)
	codes := make([]string, len(refs))
	states := make(map[string]string, len(refs))
	for i, ref := range refs {
		codes[i] = ref.Code
		states[ref.Code] = ref.State
	}

	missing, err := r.Missing(ctx, codes)
	if err != nil {
		return nil, err
	}

	errs := make([]domain.ValidationError, 0, len(missing))
	for _, code := range missing {
		errs = append(errs, domain.ValidationError{
			Type:       domain.ErrorMissingQuestion,
			Field:      string(machine),
			Message:    fmt.Sprintf("question %q referenced by state %q does not exist", code, states[code]),
			Suggestion: fmt.Sprintf("Create question %q or correct the state identifier", code),
		})
	}
	return errs, nil
}

// RegistryUnavailable converts a registry failure into a validation error for field.
func RegistryUnavailable(field string, err error) domain.ValidationError {
	return domain.ValidationError{
		Type:       domain.ErrorRegistryUnavailable,
		Field:      field,
		Message:    fmt.Sprintf("cannot evaluate %s: %v", field, err),
		Suggestion: "Retry once the registry is reachable",
	}
}
