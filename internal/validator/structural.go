package validator

import (
	"fmt"
	"strings"

	"github.com/neon-law-foundation/notation/internal/compiler"
	"github.com/neon-law-foundation/notation/internal/dto"
	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/neon-law-foundation/notation/pkg/schema"
)

// MaxTitleLength is the longest accepted title, in characters.
const MaxTitleLength = 255

// RespondentTypes lists the accepted respondent_type values.
var RespondentTypes = []string{"org", "org_and_person"}

var (
	titleLength    = schema.MaxLength(MaxTitleLength)
	respondentType = schema.Enum(RespondentTypes...)
)

// Structural checks the top-level frontmatter fields. It returns the accepted
// values as a dto.Frontmatter together with every violation found; a rejected
// field is left at its zero value.
func Structural(fm *compiler.Frontmatter) (dto.Frontmatter, []domain.ValidationError) {
	var errs []domain.ValidationError
	accepted := make(map[string]any)

	for _, name := range []string{"code", "title", "description"} {
		s, err := requiredString(fm, name)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		accepted[name] = s
	}

	if title, ok := accepted["title"]; ok {
		if violations := schema.Check(titleLength, title, "title"); len(violations) > 0 {
			errs = append(errs, domain.ValidationError{
				Type:       domain.ErrorFieldTooLong,
				Field:      "title",
				Message:    violations[0].Error(),
				Line:       fm.Line("title"),
				Suggestion: fmt.Sprintf("Shorten the title to %d characters or fewer", MaxTitleLength),
			})
			delete(accepted, "title")
		}
	}

	if v, ok := fm.Values["respondent_type"]; ok && v != nil {
		if violations := schema.Check(respondentType, v, "respondent_type"); len(violations) > 0 {
			errs = append(errs, domain.ValidationError{
				Type:       domain.ErrorInvalidFieldValue,
				Field:      "respondent_type",
				Message:    violations[0].Error(),
				Line:       fm.Line("respondent_type"),
				Suggestion: "Use one of: " + strings.Join(RespondentTypes, ", "),
			})
		} else {
			accepted["respondent_type"] = v
		}
	}

	for _, machine := range domain.Machines {
		name := string(machine)
		if v := fm.Values[name]; v != nil {
			accepted[name] = v
			continue
		}
		errs = append(errs, domain.ValidationError{
			Type:       domain.ErrorMissingField,
			Field:      name,
			Message:    fmt.Sprintf("%s is required", name),
			Line:       fm.Line(name),
			Suggestion: fmt.Sprintf("Add a %s state machine with a BEGIN state", name),
		})
	}

	for k, v := range fm.Values {
		if _, known := accepted[k]; !known && !isReserved(k) {
			accepted[k] = v
		}
	}

	out, err := dto.Decode(accepted)
	if err != nil {
		errs = append(errs, domain.ValidationError{
			Type:    domain.ErrorInvalidFieldValue,
			Message: err.Error(),
		})
	}
	return out, errs
}

// requiredString returns the trimmed value of a required string field.
func requiredString(fm *compiler.Frontmatter, name string) (string, *domain.ValidationError) {
	v, present := fm.Values[name]
	switch s := v.(type) {
	case string:
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed, nil
		}
		return "", &domain.ValidationError{
			Type:       domain.ErrorMissingField,
			Field:      name,
			Message:    fmt.Sprintf("%s must not be empty", name),
			Line:       fm.Line(name),
			Suggestion: fmt.Sprintf("Provide a value for %s", name),
		}
	case nil:
		msg := fmt.Sprintf("%s is required", name)
		if present {
			msg = fmt.Sprintf("%s must not be empty", name)
		}
		return "", &domain.ValidationError{
			Type:       domain.ErrorMissingField,
			Field:      name,
			Message:    msg,
			Line:       fm.Line(name),
			Suggestion: fmt.Sprintf("Add a non-empty %s field to the frontmatter", name),
		}
	default:
		return "", &domain.ValidationError{
			Type:       domain.ErrorInvalidFieldValue,
			Field:      name,
			Message:    fmt.Sprintf("%s must be a string", name),
			Line:       fm.Line(name),
			Suggestion: fmt.Sprintf("Quote the %s value", name),
		}
	}
}

func isReserved(key string) bool {
	switch key {
	case "code", "title", "description", "respondent_type", "flow", "alignment":
		return true
	}
	return false
}
