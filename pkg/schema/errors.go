package schema

import "fmt"

// RootKey names the root value in messages.
const RootKey = "root"

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Key    string // Path of the field; empty for the root value
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	key := e.Key
	if key == "" {
		key = RootKey
	}
	return fmt.Sprintf("%s: %s", key, e.Reason)
}

// AggregateError represents multiple validation failures. Composite types
// return it from Validate.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}
