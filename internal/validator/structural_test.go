package validator

import (
	"strings"
	"testing"

	"github.com/neon-law-foundation/notation/internal/compiler"
	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, yaml string) *compiler.Frontmatter {
	t.Helper()
	fm, err := compiler.NewParser().Parse(yaml, 2)
	require.NoError(t, err)
	return fm
}

const validHeader = `code: t1
title: "T"
description: "D"
respondent_type: org_and_person
flow:
  BEGIN: {_: q1__name}
  q1__name: {_: END}
alignment:
  BEGIN: {_: sr__approve}
  sr__approve: {Approve: END}
`

func TestStructural_Valid(t *testing.T) {
	out, errs := Structural(parse(t, validHeader))
	assert.Empty(t, errs)
	assert.Equal(t, "t1", out.Code)
	assert.Equal(t, "T", out.Title)
	assert.Equal(t, "org_and_person", out.RespondentType)
	assert.NotNil(t, out.Flow)
	assert.NotNil(t, out.Alignment)
}

func TestStructural_CollectsEveryViolation(t *testing.T) {
	yaml := "code: \"   \"\ntitle: " + strings.Repeat("x", 256) + "\ndescription: [a]\nrespondent_type: person\nflow: {BEGIN: {_: END}}\n"

	out, errs := Structural(parse(t, yaml))

	type finding struct{ typ, field string }
	var got []finding
	for _, e := range errs {
		got = append(got, finding{e.Type, e.Field})
	}
	assert.Equal(t, []finding{
		{domain.ErrorMissingField, "code"},
		{domain.ErrorInvalidFieldValue, "description"},
		{domain.ErrorFieldTooLong, "title"},
		{domain.ErrorInvalidFieldValue, "respondent_type"},
		{domain.ErrorMissingField, "alignment"},
	}, got)

	assert.Empty(t, out.Code)
	assert.Empty(t, out.Title)
	assert.NotNil(t, out.Flow, "flow is still handed on when other fields fail")
}

func TestStructural_Lines(t *testing.T) {
	_, errs := Structural(parse(t, "code: t1\ntitle: T\ndescription: D\nrespondent_type: nobody\nflow: {BEGIN: {_: END}}\nalignment: {BEGIN: {_: END}}\n"))
	require.Len(t, errs, 1)
	assert.Equal(t, 5, errs[0].Line)
	assert.Contains(t, errs[0].Message, "org, org_and_person")
}

func TestStructural_MissingFields(t *testing.T) {
	_, errs := Structural(parse(t, "title:\n"))

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		assert.Equal(t, domain.ErrorMissingField, e.Type)
		assert.NotEmpty(t, e.Suggestion)
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"code", "title", "description", "flow", "alignment"}, fields)
}

func TestStructural_TitleLengthCountsCharacters(t *testing.T) {
	fm := parse(t, validHeader)
	fm.Values["title"] = strings.Repeat("é", MaxTitleLength)
	_, errs := Structural(fm)
	assert.Empty(t, errs)

	fm.Values["title"] = strings.Repeat("é", MaxTitleLength+1)
	_, errs = Structural(fm)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.ErrorFieldTooLong, errs[0].Type)
}

func TestStructural_ExtraKeysPassThrough(t *testing.T) {
	out, errs := Structural(parse(t, validHeader+"owner: legal\n"))
	require.Empty(t, errs)
	assert.Equal(t, map[string]any{"owner": "legal"}, out.Extra)
}
