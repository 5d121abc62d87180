package jsonfield

import (
	"fmt"
	"strings"

	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/neon-law-foundation/notation/pkg/ports"
)

// Field is a JSON-encoded column value about to be written.
type Field struct {
	Kind Kind
	Text string
}

var _ ports.Validatable = Field{}

// Validate runs the built-in validator for the field kind. Unknown kinds are invalid.
func (f Field) Validate() domain.SchemaValidationResult {
	res, err := Validate(f.Kind, f.Text)
	if err != nil {
		return domain.NewSchemaValidationResult([]string{err.Error()})
	}
	return res
}

// CommitError lists the violations that aborted a write, prefixed by field kind where known.
type CommitError struct {
	Errors []string
}

func (e *CommitError) Error() string {
	return "write rejected: " + strings.Join(e.Errors, "; ")
}

// Guard validates every value and returns a *CommitError if any is invalid.
// Storage layers call it immediately before committing; a non-nil error must abort the write.
func Guard(values ...ports.Validatable) error {
	var errs []string
	for _, v := range values {
		res := v.Validate()
		if res.IsValid {
			continue
		}
		prefix := ""
		if f, ok := v.(Field); ok {
			prefix = string(f.Kind) + ": "
		}
		for _, msg := range res.Errors {
			errs = append(errs, fmt.Sprintf("%s%s", prefix, msg))
		}
	}
	if len(errs) > 0 {
		return &CommitError{Errors: errs}
	}
	return nil
}
