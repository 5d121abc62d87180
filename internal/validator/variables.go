package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/neon-law-foundation/notation/pkg/domain"
)

// SupportedFilters lists the filters a body may apply to a variable.
var SupportedFilters = []string{"currency", "date", "lowercase", "uppercase"}

// KnownRoots lists the variable roots that are always available.
var KnownRoots = []string{"entity", "org", "person"}

var interpolation = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// Variables extracts every {{ path | filter }} occurrence from body, whose first
// line is firstLine in the original document. Interpolations do not span lines.
func Variables(body string, firstLine int) []domain.VariableReference {
	var refs []domain.VariableReference
	for i, line := range strings.Split(body, "\n") {
		for _, m := range interpolation.FindAllStringSubmatch(line, -1) {
			parts := strings.Split(m[1], "|")
			ref := domain.VariableReference{
				Path: strings.TrimSpace(parts[0]),
				Line: firstLine + i,
			}
			if ref.Path == "" {
				continue
			}
			if len(parts) > 1 {
				ref.Filter = strings.TrimSpace(parts[1])
			}
			refs = append(refs, ref)
		}
	}
	return refs
}

// AnalyzeVariables flags unsupported filters and undotted variables outside the
// known roots. Dotted paths are assumed to be question answers and are not resolved.
func AnalyzeVariables(refs []domain.VariableReference) []domain.ValidationWarning {
	var warnings []domain.ValidationWarning
	for _, ref := range refs {
		if ref.Filter != "" && !slices.Contains(SupportedFilters, ref.Filter) {
			warnings = append(warnings, domain.ValidationWarning{
				Type:     domain.WarningUnsupportedFilter,
				Variable: ref.Path,
				Message: fmt.Sprintf("filter %q applied to %s is not supported (supported: %s)",
					ref.Filter, ref.Path, strings.Join(SupportedFilters, ", ")),
				Line: ref.Line,
			})
		}
		if !ref.Dotted() && !slices.Contains(KnownRoots, ref.Root()) {
			warnings = append(warnings, domain.ValidationWarning{
				Type:     domain.WarningUndefinedVariable,
				Variable: ref.Path,
				Message: fmt.Sprintf("variable %s is not defined; use %s or a dotted question path",
					ref.Path, strings.Join(KnownRoots, ", ")),
				Line: ref.Line,
			})
		}
	}
	return warnings
}
