package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/neon-law-foundation/notation/internal/config"
	"github.com/neon-law-foundation/notation/internal/logging"
	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `---
code: lease
title: Lease
description: Commercial lease
respondent_type: org
flow:
  BEGIN:
    _: ask__tenant
  ask__tenant:
    _: END
alignment:
  BEGIN:
    _: END
---
Tenant: {{ org.name }}
`

func TestOpenRegistries_Memory(t *testing.T) {
	dir := t.TempDir()
	questions := filepath.Join(dir, "questions.yaml")
	notations := filepath.Join(dir, "notations.yaml")
	require.NoError(t, os.WriteFile(questions, []byte("- tenant\n"), 0o644))
	require.NoError(t, os.WriteFile(notations, []byte("- lease\n"), 0o644))

	cfg := config.Defaults()
	cfg.QuestionsFile = questions
	cfg.NotationsFile = notations

	regs, err := OpenRegistries(context.Background(), cfg)
	require.NoError(t, err)
	defer regs.Close()

	engine := NewEngine(cfg, logging.NewNop(), regs, prometheus.NewRegistry())
	res, err := engine.Validate(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, domain.ErrorDuplicateCode, res.Errors[0].Type)
}

func TestOpenRegistries_MemoryWithoutSeeds(t *testing.T) {
	regs, err := OpenRegistries(context.Background(), config.Defaults())
	require.NoError(t, err)
	assert.Nil(t, regs.Questions)
	assert.Nil(t, regs.Notations)
	assert.NoError(t, regs.Close())

	res, err := NewEngine(config.Defaults(), logging.NewNop(), regs, nil).Validate(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestOpenRegistries_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	_, err := mr.SAdd("notation:questions", "tenant")
	require.NoError(t, err)

	cfg := config.Defaults()
	cfg.Registry = config.RegistryRedis
	cfg.RedisURL = "redis://" + mr.Addr()

	regs, err := OpenRegistries(context.Background(), cfg)
	require.NoError(t, err)
	defer regs.Close()

	res, err := NewEngine(cfg, logging.NewNop(), regs, nil).Validate(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, res.Valid, "%v", res.Errors)
}

func TestOpenRegistries_Errors(t *testing.T) {
	cfg := config.Defaults()
	cfg.Registry = "sqlite"
	_, err := OpenRegistries(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown registry backend")

	cfg = config.Defaults()
	cfg.QuestionsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = OpenRegistries(context.Background(), cfg)
	assert.Error(t, err)
}

func TestReadDocument(t *testing.T) {
	got, err := ReadDocument(StdinPath, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	path := filepath.Join(t.TempDir(), "n.md")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o644))
	got, err = ReadDocument(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from file", got)

	_, err = ReadDocument(filepath.Join(t.TempDir(), "none.md"), nil)
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "lease.md", domain.ValidationResponse{Valid: true, Errors: []domain.ValidationError{}}))
	assert.Contains(t, buf.String(), "lease.md")
	assert.NotContains(t, buf.String(), "## Errors")

	buf.Reset()
	require.NoError(t, WriteReport(&buf, "lease.md", domain.ValidationResponse{
		Errors: []domain.ValidationError{{Type: domain.ErrorMissingField, Field: "title", Message: "title is required"}},
	}))
	assert.Contains(t, buf.String(), "## Errors")
	assert.Contains(t, buf.String(), "title is required")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]bool{"valid": true}))
	assert.Equal(t, "{\n  \"valid\": true\n}\n", buf.String())
}
