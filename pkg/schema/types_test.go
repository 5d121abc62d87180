package schema

import (
	"regexp"
	"testing"
)

func TestScalarTypes(t *testing.T) {
	tests := []struct {
		typ     Type
		value   any
		wantErr bool
	}{
		{Int(), 42, false},
		{Int(), int64(42), false},
		{Int(), float64(42), false}, // whole number from JSON
		{Int(), float64(42.5), true},
		{Int(), "42", true},
		{Float(), 3.14, false},
		{Float(), 42, false},
		{Float(), "3.14", true},
		{Float(), true, true},
		{Any(), nil, false},
		{Any(), map[string]any{}, false},
	}

	for _, tt := range tests {
		err := tt.typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s.Validate(%v) error = %v, wantErr %v", tt.typ.Name(), tt.value, err, tt.wantErr)
		}
	}
}

func TestSliceType(t *testing.T) {
	typ := Slice(Float())
	if typ.Name() != "[number]" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "[number]")
	}

	tests := []struct {
		value   any
		wantErr bool
	}{
		{[]float64{1, 2}, false},
		{[]any{1.0, 2}, false},
		{[]any{}, false},
		{[]any{1.0, "a"}, true},
		{"not a slice", true},
		{nil, true},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestArrayType_Length(t *testing.T) {
	typ := Array(Float(), 2)
	if typ.Name() != "[number;2]" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "[number;2]")
	}

	errs := Check(typ, []any{1.0, 2.0, 3.0}, "corner")
	if len(errs) != 1 {
		t.Fatalf("Check() = %d errors, want 1", len(errs))
	}
	if got := errs[0].Error(); got != "corner: expected exactly 2 elements, got 3" {
		t.Errorf("Error() = %q", got)
	}

	errs = Check(typ, []any{1.0, "x"}, "corner")
	if len(errs) != 1 || errs[0].Error() != "corner[1]: expected number, got string" {
		t.Errorf("Check() = %v", errs)
	}
}

func TestEnumType(t *testing.T) {
	typ := Enum("org", "org_and_person")

	if err := typ.Validate("org"); err != nil {
		t.Errorf("Validate(org) error = %v", err)
	}
	if err := typ.Validate("person"); err == nil {
		t.Error("Validate(person) should fail")
	}
	if err := typ.Validate(1); err == nil {
		t.Error("Validate(1) should fail")
	}
}

func TestPatternType(t *testing.T) {
	typ := Pattern(regexp.MustCompile(`^(\w*|END|ERROR)$`))

	for _, ok := range []string{"", "END", "ERROR", "q1__name"} {
		if err := typ.Validate(ok); err != nil {
			t.Errorf("Validate(%q) error = %v", ok, err)
		}
	}
	for _, bad := range []string{"next state", "a-b"} {
		if err := typ.Validate(bad); err == nil {
			t.Errorf("Validate(%q) should fail", bad)
		}
	}
}

func TestMaxLengthType(t *testing.T) {
	typ := MaxLength(3)

	if err := typ.Validate("abc"); err != nil {
		t.Errorf("Validate(abc) error = %v", err)
	}
	// Runes, not bytes.
	if err := typ.Validate("äöü"); err != nil {
		t.Errorf("Validate(äöü) error = %v", err)
	}
	if err := typ.Validate("abcd"); err == nil {
		t.Error("Validate(abcd) should fail")
	}
}
