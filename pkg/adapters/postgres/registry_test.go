package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/neon-law-foundation/notation/pkg/adapters/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) (*postgres.Registry, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return postgres.New(db), mock
}

func TestRegistry_Exists(t *testing.T) {
	registry, mock := newRegistry(t)
	query := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM questions WHERE code = $1)`)

	mock.ExpectQuery(query).WithArgs("name").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(query).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := registry.Exists(context.Background(), "name")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = registry.Exists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_ExistsAll(t *testing.T) {
	registry, mock := newRegistry(t)
	codes := []string{"name", "email", "missing"}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT code FROM questions WHERE code = ANY($1)`)).
		WithArgs(pq.Array(codes)).
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("name").AddRow("email"))

	found, err := registry.ExistsAll(context.Background(), codes)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"name": true, "email": true, "missing": false}, found)
}

func TestRegistry_ExistsAll_Empty(t *testing.T) {
	registry, _ := newRegistry(t)

	found, err := registry.ExistsAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRegistry_CountByCode(t *testing.T) {
	registry, mock := newRegistry(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM notations WHERE code = $1`)).
		WithArgs("retainer").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := registry.CountByCode(context.Background(), "retainer")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRegistry_QueryFailure(t *testing.T) {
	registry, mock := newRegistry(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(boom)
	mock.ExpectQuery(`SELECT code FROM questions`).WillReturnError(boom)

	_, err := registry.CountByCode(context.Background(), "retainer")
	assert.ErrorIs(t, err, boom)

	_, err = registry.ExistsAll(context.Background(), []string{"name"})
	assert.ErrorIs(t, err, boom)
}

func TestRegistry_Migrate(t *testing.T) {
	registry, mock := newRegistry(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS questions`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, registry.Migrate(context.Background()))
}

func TestOpen_InvalidDSN(t *testing.T) {
	_, err := postgres.Open("postgres://%zz")
	assert.Error(t, err)
}
