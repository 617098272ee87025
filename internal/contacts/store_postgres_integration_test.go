//go:build integration

package contacts_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safesignal/internal/contacts"
	"safesignal/internal/domain"
	"safesignal/pkg/platform/sentinel"
	"safesignal/pkg/testutil/containers"
)

func TestPostgresStore(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()

	db, err := sql.Open("postgres", pg.DSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := contacts.NewPostgresStore(db)
	require.NoError(t, store.EnsureSchema(ctx))
	// Schema creation is idempotent.
	require.NoError(t, store.EnsureSchema(ctx))

	t.Run("create assigns increasing ids and list follows id order", func(t *testing.T) {
		mom, err := store.Create(ctx, domain.Contact{Name: "Mom", Phone: "+1-555-0101", Relation: "Mother"})
		require.NoError(t, err)
		dad, err := store.Create(ctx, domain.Contact{Name: "Dad", Phone: "+1-555-0102", Relation: "Father"})
		require.NoError(t, err)
		assert.Greater(t, dad.ID, mom.ID)

		list, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, mom, list[0])
		assert.Equal(t, dad, list[1])
	})

	t.Run("delete removes the row and unknown ids are not found", func(t *testing.T) {
		list, err := store.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, list)

		require.NoError(t, store.Delete(ctx, list[0].ID))
		err = store.Delete(ctx, list[0].ID)
		assert.True(t, errors.Is(err, sentinel.ErrNotFound))

		remaining, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, remaining, len(list)-1)
	})

	t.Run("deleted ids are never reassigned", func(t *testing.T) {
		created, err := store.Create(ctx, domain.Contact{Name: "Neighbor", Phone: "+1-555-0103"})
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, created.ID))

		next, err := store.Create(ctx, domain.Contact{Name: "Aunt", Phone: "+1-555-0104"})
		require.NoError(t, err)
		assert.Greater(t, next.ID, created.ID)
	})
}
