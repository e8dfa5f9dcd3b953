package vault

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "vault.db")
	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_MissingKeyReturnsNil(t *testing.T) {
	r := setupRepo(t)

	v, err := r.Get(context.Background(), TokenKey)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteRepository_SetGetOverwrite(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, TokenKey, []byte("tok-1")))
	v, err := r.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-1"), v)

	require.NoError(t, r.Set(ctx, TokenKey, []byte("tok-2")))
	v, err = r.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-2"), v)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, TokenKey, []byte("tok")))
	require.NoError(t, r.Delete(ctx, TokenKey))

	v, err := r.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Nil(t, v)

	// deleting a missing key is not an error
	require.NoError(t, r.Delete(ctx, TokenKey))
}

func TestSQLiteRepository_Clear(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, TokenKey, []byte("tok")))
	require.NoError(t, r.Set(ctx, "other", []byte("x")))
	require.NoError(t, r.Clear(ctx))

	v, err := r.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestOpen_IdempotentMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "vault.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
