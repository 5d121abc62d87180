package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunQuestionRegistryContract runs a suite of tests to verify that a QuestionRegistry
// implementation adheres to the defined interface contract. seed must register the
// given codes in the backend under test.
func RunQuestionRegistryContract(t *testing.T, registry QuestionRegistry, seed func(codes ...string)) {
	ctx := context.Background()
	seed("name", "email", "date_of_birth")

	t.Run("Exists", func(t *testing.T) {
		ok, err := registry.Exists(ctx, "name")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Missing", func(t *testing.T) {
		ok, err := registry.Exists(ctx, "favourite_colour")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Case Sensitive", func(t *testing.T) {
		ok, err := registry.Exists(ctx, "NAME")
		require.NoError(t, err)
		assert.False(t, ok, "codes are matched exactly")
	})

	batch, ok := registry.(BatchQuestionRegistry)
	if !ok {
		return
	}

	t.Run("ExistsAll", func(t *testing.T) {
		found, err := batch.ExistsAll(ctx, []string{"name", "email", "missing"})
		require.NoError(t, err)
		assert.True(t, found["name"])
		assert.True(t, found["email"])
		assert.False(t, found["missing"])
	})

	t.Run("ExistsAll Empty", func(t *testing.T) {
		found, err := batch.ExistsAll(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

// RunNotationRegistryContract verifies a NotationRegistry implementation. seed must
// record one persisted notation with the given code each time it is called.
func RunNotationRegistryContract(t *testing.T, registry NotationRegistry, seed func(code string)) {
	ctx := context.Background()
	seed("retainer")
	seed("retainer")
	seed("nda")

	t.Run("Count Existing", func(t *testing.T) {
		n, err := registry.CountByCode(ctx, "retainer")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = registry.CountByCode(ctx, "nda")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Count Missing", func(t *testing.T) {
		n, err := registry.CountByCode(ctx, "unused")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
