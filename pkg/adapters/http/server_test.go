package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/neon-law-foundation/notation"
	apihttp "github.com/neon-law-foundation/notation/pkg/adapters/http"
	"github.com/neon-law-foundation/notation/pkg/adapters/memory"
	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const retainer = `---
code: retainer
title: Retainer Agreement
description: Engagement letter for new clients
respondent_type: org
flow:
  BEGIN:
    _: ask__client_name
  ask__client_name:
    _: END
alignment:
  BEGIN:
    _: END
---
Dear {{ person.name }}, your fee is {{ total | percent }}.
`

func newHandler(t *testing.T, opts ...apihttp.Option) http.Handler {
	t.Helper()
	engine := notation.New(
		notation.WithQuestionRegistry(memory.NewQuestionRegistry("client_name")),
		notation.WithNotationRegistry(memory.NewNotationRegistry()),
	)
	h, err := apihttp.NewHandler(engine, opts...)
	require.NoError(t, err)
	return h
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestValidateNotation_Markdown(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/v1/notations/validate", "text/markdown", retainer)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(apihttp.ValidationIDHeader))

	var res domain.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings, "warnings are opt-in")
}

func TestValidateNotation_JSONWithWarnings(t *testing.T) {
	h := newHandler(t)
	body, err := json.Marshal(apihttp.DocumentRequest{Document: retainer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/notations/validate?include_warnings=true", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apihttp.ValidationIDHeader, "req-42")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(apihttp.ValidationIDHeader))

	var res domain.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Valid)
	require.Len(t, res.Warnings, 2)
	assert.Equal(t, domain.WarningUnsupportedFilter, res.Warnings[0].Type)
	assert.Equal(t, "total", res.Warnings[0].Variable)
}

func TestValidateNotation_Invalid(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/v1/notations/validate", "text/plain", "title: no fences\n")
	require.Equal(t, http.StatusOK, w.Code)

	var res domain.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, domain.ErrorMissingFrontmatter, res.Errors[0].Type)
	assert.Equal(t, 1, res.Errors[0].Line)
}

func TestValidateNotation_BadQueryParameter(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/v1/notations/validate?include_warnings=maybe", "text/plain", retainer)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res apihttp.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "include_warnings")
}

func TestValidateNotation_BadJSON(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/v1/notations/validate", "application/json", "{")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateNotation_BodyTooLarge(t *testing.T) {
	h := newHandler(t, apihttp.WithMaxBodySize(16))

	w := do(t, h, http.MethodPost, "/v1/notations/validate", "text/plain", retainer)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderGraph(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/v1/notations/graph", "text/markdown", retainer)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res apihttp.GraphResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "flow", res.Machine)
	assert.Contains(t, res.Mermaid, "graph TD")
	assert.Contains(t, res.Mermaid, "ask__client_name")
}

func TestRenderGraph_UnknownMachine(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/v1/notations/graph?machine=workflow", "text/markdown", retainer)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderGraph_Unprocessable(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/v1/notations/graph", "text/markdown", "no frontmatter")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFields(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodGet, "/v1/fields", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var kinds apihttp.FieldKinds
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &kinds))
	assert.Contains(t, kinds.Kinds, "question_map")

	w = do(t, h, http.MethodPost, "/v1/fields/question_map/validate", "application/json", `{"BEGIN": {"_": "END"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res domain.SchemaValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.IsValid)

	w = do(t, h, http.MethodPost, "/v1/fields/question_map/validate", "application/json", `[]`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.IsValid)
	assert.NotEmpty(t, res.Errors)

	w = do(t, h, http.MethodPost, "/v1/fields/unknown/validate", "application/json", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouting(t *testing.T) {
	h := newHandler(t)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/v1/nothing", "", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodGet, "/v1/notations/validate", "", "").Code)

	w := do(t, h, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), notation.Version)

	w = do(t, h, http.MethodGet, "/openapi.yaml", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/v1/notations/validate")
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	engine := notation.New(notation.WithMetrics(reg))
	h, err := apihttp.NewHandler(engine, apihttp.WithGatherer(reg))
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/v1/notations/validate", "text/markdown", retainer).Code)

	w := do(t, h, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "notation_validations_total")
}
