package schema

import (
	"fmt"
	"reflect"
)

// Type defines the contract for field validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "int", "number").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// IntType validates integer values.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		return nil
	case float64:
		// Accept floats that are whole numbers (from JSON unmarshaling)
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %s", describe(value))
	}
}

// FloatType validates numeric values.
type FloatType struct{}

func (t *FloatType) Name() string { return "number" }

func (t *FloatType) Validate(value any) error {
	switch value.(type) {
	case float32, float64, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected number, got %s", describe(value))
	}
}

// AnyType accepts every value, including null. It is used for fields whose
// presence matters but whose shape does not.
type AnyType struct{}

func (t *AnyType) Name() string { return "any" }

func (t *AnyType) Validate(any) error { return nil }

// SliceType validates slices of a specific element type, optionally of an exact length.
type SliceType struct {
	elemType Type
	length   int
}

func (t *SliceType) Name() string {
	if t.length >= 0 {
		return fmt.Sprintf("[%s;%d]", t.elemType.Name(), t.length)
	}
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(value any) error {
	return aggregate(t.Check(value, ""))
}

// Check reports a shape violation of the slice itself, or one violation per
// invalid element qualified with its index.
func (t *SliceType) Check(value any, path string) []error {
	rv := reflect.ValueOf(value)
	if value == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return []error{violation(path, fmt.Sprintf("expected array, got %s", describe(value)), value)}
	}
	if t.length >= 0 && rv.Len() != t.length {
		return []error{violation(path, fmt.Sprintf("expected exactly %d elements, got %d", t.length, rv.Len()), value)}
	}

	var errs []error
	for i := 0; i < rv.Len(); i++ {
		errs = append(errs, Check(t.elemType, rv.Index(i).Interface(), indexPath(path, i))...)
	}
	return errs
}

// --- Factory Functions ---

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// Float creates a numeric type validator.
func Float() Type { return &FloatType{} }

// Any creates a validator that accepts every value.
func Any() Type { return &AnyType{} }

// Slice creates a slice type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType, length: -1}
}

// Array creates a slice type validator that also requires exactly length elements.
func Array(elemType Type, length int) Type {
	return &SliceType{elemType: elemType, length: length}
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
