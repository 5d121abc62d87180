package schema

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"
)

// Schema is a map of field names to their expected types.
// Example: {"page": Int(), "corners": Array(Float(), 2), "tags": Slice(MaxLength(16))}
type Schema map[string]Type

// ObjectType validates string-keyed mappings against a Schema.
type ObjectType struct {
	fields   Schema
	required []string
	prefixed []prefixRule
}

type prefixRule struct {
	prefix string
	typ    Type
}

// ObjectOption configures an ObjectType.
type ObjectOption func(*ObjectType)

// Required marks fields that must be present.
func Required(fields ...string) ObjectOption {
	return func(t *ObjectType) {
		t.required = append(t.required, fields...)
	}
}

// RequireAll marks every field of the schema as required.
func RequireAll() ObjectOption {
	return func(t *ObjectType) {
		for _, name := range sortedKeys(t.fields) {
			if !slices.Contains(t.required, name) {
				t.required = append(t.required, name)
			}
		}
	}
}

// KeysWithPrefix validates every key starting with prefix against typ.
func KeysWithPrefix(prefix string, typ Type) ObjectOption {
	return func(t *ObjectType) {
		t.prefixed = append(t.prefixed, prefixRule{prefix: prefix, typ: typ})
	}
}

// Object creates a mapping validator. Keys not named by fields are allowed.
func Object(fields Schema, opts ...ObjectOption) Type {
	t := &ObjectType{fields: fields}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *ObjectType) Name() string { return "object" }

func (t *ObjectType) Validate(value any) error {
	return aggregate(t.Check(value, ""))
}

// Check reports missing required fields first, then violations of present
// fields in key order, then violations of prefixed keys.
func (t *ObjectType) Check(value any, path string) []error {
	m, ok := value.(map[string]any)
	if !ok {
		return []error{violation(path, fmt.Sprintf("expected object, got %s", describe(value)), value)}
	}

	var errs []error
	for _, name := range t.required {
		if _, exists := m[name]; !exists {
			errs = append(errs, violation(keyPath(path, name), "required", nil))
		}
	}
	for _, name := range sortedKeys(t.fields) {
		if v, exists := m[name]; exists {
			errs = append(errs, Check(t.fields[name], v, keyPath(path, name))...)
		}
	}
	for _, rule := range t.prefixed {
		for _, key := range sortedKeys(m) {
			if strings.HasPrefix(key, rule.prefix) {
				errs = append(errs, Check(rule.typ, m[key], keyPath(path, key))...)
			}
		}
	}
	return errs
}

// MapType validates that every value of a string-keyed mapping has the element type.
type MapType struct {
	elemType Type
}

// Map creates a validator for mappings with arbitrary keys and uniform values.
func Map(elemType Type) Type {
	return &MapType{elemType: elemType}
}

func (t *MapType) Name() string { return fmt.Sprintf("{%s}", t.elemType.Name()) }

func (t *MapType) Validate(value any) error {
	return aggregate(t.Check(value, ""))
}

func (t *MapType) Check(value any, path string) []error {
	m, ok := value.(map[string]any)
	if !ok {
		return []error{violation(path, fmt.Sprintf("expected object, got %s", describe(value)), value)}
	}
	var errs []error
	for _, key := range sortedKeys(m) {
		errs = append(errs, Check(t.elemType, m[key], keyPath(path, key))...)
	}
	return errs
}

// EnumType validates that a string is one of a fixed set of values.
type EnumType struct {
	values []string
}

// Enum creates a validator that accepts only the listed strings.
func Enum(values ...string) Type {
	return &EnumType{values: values}
}

func (t *EnumType) Name() string { return "enum(" + strings.Join(t.values, "|") + ")" }

func (t *EnumType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %s", describe(value))
	}
	if !slices.Contains(t.values, s) {
		return fmt.Errorf("must be one of %s, got %q", strings.Join(t.values, ", "), s)
	}
	return nil
}

// PatternType validates that a string matches a regular expression.
type PatternType struct {
	re *regexp.Regexp
}

// Pattern creates a validator for strings matching re.
func Pattern(re *regexp.Regexp) Type {
	return &PatternType{re: re}
}

func (t *PatternType) Name() string { return "pattern(" + t.re.String() + ")" }

func (t *PatternType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %s", describe(value))
	}
	if !t.re.MatchString(s) {
		return fmt.Errorf("value %q does not match %s", s, t.re.String())
	}
	return nil
}

// MaxLengthType validates that a string has at most max characters.
type MaxLengthType struct {
	max int
}

// MaxLength creates a validator for strings of at most max characters.
func MaxLength(max int) Type {
	return &MaxLengthType{max: max}
}

func (t *MaxLengthType) Name() string { return fmt.Sprintf("string(<=%d)", t.max) }

func (t *MaxLengthType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %s", describe(value))
	}
	if n := utf8.RuneCountInString(s); n > t.max {
		return fmt.Errorf("must be at most %d characters, got %d", t.max, n)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
