package schema

import "fmt"

// Checker is implemented by composite types that report nested violations,
// each qualified with its own path.
type Checker interface {
	Check(value any, path string) []error
}

// Check validates value against t and returns one *ValidationError per violation.
// Paths use dots for object keys and brackets for indexes (e.g. "changes[0].action");
// the empty path denotes the root value.
func Check(t Type, value any, path string) []error {
	if c, ok := t.(Checker); ok {
		return c.Check(value, path)
	}
	if err := t.Validate(value); err != nil {
		return []error{violation(path, err.Error(), value)}
	}
	return nil
}

// Messages flattens violations into path-qualified strings.
func Messages(errs []error) []string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func violation(path, reason string, value any) error {
	return &ValidationError{Key: path, Reason: reason, Value: value}
}

func aggregate(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &AggregateError{Errors: errs}
}

func keyPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
