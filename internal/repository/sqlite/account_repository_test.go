package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"game-catalog/internal/domain"
	"game-catalog/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAccountRepo(t *testing.T) repository.AccountRepository {
	t.Helper()
	repo := NewAccountRepository(newTestDB(t))
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestAccountRepo(t)

	account := &domain.Account{
		Username:     "alice",
		Email:        "alice@example.com",
		FullName:     "Alice A",
		PasswordHash: "hashed",
	}
	id, err := repo.Create(ctx, account)
	require.NoError(t, err)
	require.NotZero(t, id)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", byName.Username)
	require.Equal(t, "alice@example.com", byName.Email)
	require.Equal(t, "Alice A", byName.FullName)
	require.Equal(t, "hashed", byName.PasswordHash)
	require.False(t, byName.Disabled)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, byName.Username, byID.Username)
}

func TestAccountRepository_LookupIsExactMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestAccountRepo(t)

	_, err := repo.Create(ctx, &domain.Account{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.GetByUsername(ctx, "Alice")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAccountRepository_DuplicateUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestAccountRepo(t)

	_, err := repo.Create(ctx, &domain.Account{Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Account{Username: "alice", PasswordHash: "h2"})
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestAccountRepo(t)

	_, err := repo.Create(ctx, &domain.Account{Username: "alice", Email: "same@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Account{Username: "bob", Email: "same@example.com", PasswordHash: "h"})
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestAccountRepository_EmptyEmailsDoNotCollide(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestAccountRepo(t)

	_, err := repo.Create(ctx, &domain.Account{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Account{Username: "bob", PasswordHash: "h"})
	require.NoError(t, err)

	bob, err := repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, bob.Email)
}

func TestAccountRepository_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestAccountRepo(t)

	_, err := repo.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, 12345)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAccountRepository_DisabledRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestAccountRepo(t)

	_, err := repo.Create(ctx, &domain.Account{Username: "alice", PasswordHash: "h", Disabled: true})
	require.NoError(t, err)

	account, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, account.Disabled)
}
