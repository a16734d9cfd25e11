package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messenger-service/internal/db"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	database, err := db.Connect("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestCreateUserAndLogin(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, "dmitry", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	found, err := repo.GetByCredentials(ctx, "dmitry", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByCredentials(ctx, "dmitry", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = repo.GetByCredentials(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepo(database)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, "dmitry", "secret")
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, "dmitry", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int
	require.NoError(t, database.Get(&count, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 1, count)
}

func TestSearchUsersSubstring(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"alexey", "alexander", "maria"} {
		_, err := repo.CreateUser(ctx, name, "123456")
		require.NoError(t, err)
	}

	found, err := repo.SearchUsers(ctx, "ale")
	require.NoError(t, err)
	require.Len(t, found, 2)

	// case-sensitive: pinned via PRAGMA case_sensitive_like
	found, err = repo.SearchUsers(ctx, "ALE")
	require.NoError(t, err)
	assert.Empty(t, found)

	// empty fragment matches everyone
	found, err = repo.SearchUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, found, 3)

	// fragment may match anywhere, not just the prefix
	found, err = repo.SearchUsers(ctx, "xand")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alexander", found[0].Username)
}

func TestSearchUsersCaseSensitiveAcrossPooledConnections(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepo(database)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, "alexey", "123456")
	require.NoError(t, err)

	// drop every idle connection so the next query runs on a fresh one; the
	// collation must hold there too, not just on the connection that opened
	database.SetMaxIdleConns(0)

	found, err := repo.SearchUsers(ctx, "ALE")
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = repo.SearchUsers(ctx, "ale")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alexey", found[0].Username)
}

func TestGetByUsername(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, "ivan", "123456")
	require.NoError(t, err)

	found, err := repo.GetByUsername(ctx, "ivan")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByUsername(ctx, "Ivan")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = repo.CreateUser(ctx, "alexey", "123456")
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, "maria", "123456")
	require.NoError(t, err)

	users, err = repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
