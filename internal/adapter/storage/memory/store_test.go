package memory

import (
	"context"
	"testing"
	"time"

	"game-economy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPlayerAccountRepo_CommitMakesWritesVisible(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewPlayerAccountRepo(store)
	key := domain.AccountKey{Player: uuid.New(), Currency: "dollar"}

	tx, err := store.Begin(ctx)
	require.NoError(t, err)

	created, err := repo.Create(ctx, tx, domain.NewPlayerAccount(key, dec("100"), time.Now()))
	require.NoError(t, err)
	assert.True(t, created)

	// Pending writes are visible through the tx only.
	got, err := repo.GetForUpdate(ctx, tx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Balance.Equal(dec("100")))

	outside, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, outside)

	require.NoError(t, repo.UpdateBalance(ctx, tx, key, dec("40")))
	require.NoError(t, tx.Commit(ctx))

	stored, err := repo.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Balance.Equal(dec("40")))
	assert.Equal(t, int64(1), stored.Version, "each update bumps the version")

	// Rollback after Commit is a no-op.
	assert.NoError(t, tx.Rollback(ctx))
	stored, _ = repo.Get(ctx, key)
	assert.True(t, stored.Balance.Equal(dec("40")))
}

func TestPlayerAccountRepo_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewPlayerAccountRepo(store)
	key := domain.AccountKey{Player: uuid.New(), Currency: "dollar"}

	tx, _ := store.Begin(ctx)
	_, err := repo.Create(ctx, tx, domain.NewPlayerAccount(key, dec("5"), time.Now()))
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = repo.GetForUpdate(ctx, tx, key)
	assert.ErrorIs(t, err, ErrTxDone)
	assert.ErrorIs(t, tx.Commit(ctx), ErrTxDone)
}

func TestPlayerAccountRepo_CreateConflict(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewPlayerAccountRepo(store)
	key := domain.AccountKey{Player: uuid.New(), Currency: "dollar"}

	tx, _ := store.Begin(ctx)
	created, _ := repo.Create(ctx, tx, domain.NewPlayerAccount(key, decimal.Zero, time.Now()))
	require.True(t, created)
	created, err := repo.Create(ctx, tx, domain.NewPlayerAccount(key, decimal.Zero, time.Now()))
	require.NoError(t, err)
	assert.False(t, created)
	require.NoError(t, tx.Commit(ctx))

	tx2, _ := store.Begin(ctx)
	created, err = repo.Create(ctx, tx2, domain.NewPlayerAccount(key, decimal.Zero, time.Now()))
	require.NoError(t, err)
	assert.False(t, created)
}

func TestPlayerAccountRepo_UpdateMissingAccount(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewPlayerAccountRepo(store)

	tx, _ := store.Begin(ctx)
	err := repo.UpdateBalance(ctx, tx, domain.AccountKey{Player: uuid.New()}, dec("1"))
	assert.Error(t, err)
}

func TestPlayerAccountRepo_Exists(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewPlayerAccountRepo(store)
	player := uuid.New()

	tx, _ := store.Begin(ctx)
	_, _ = repo.Create(ctx, tx, domain.NewPlayerAccount(domain.AccountKey{Player: player, World: "nether", Currency: "gem"}, decimal.Zero, time.Now()))
	require.NoError(t, tx.Commit(ctx))

	ok, err := repo.Exists(ctx, player, "nether")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = repo.Exists(ctx, player, domain.GlobalWorld)
	assert.False(t, ok)
}

type foreignTx struct{ pgx.Tx }

func TestRepos_RejectForeignTx(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := NewPlayerAccountRepo(store).GetForUpdate(ctx, &foreignTx{}, domain.AccountKey{})
	assert.Error(t, err)

	_, err = NewBankRepo(store).GetForUpdate(ctx, &foreignTx{}, "treasury")
	assert.Error(t, err)
}

func TestBankRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewBankRepo(store)
	owner := uuid.New()

	created, err := repo.Create(ctx, &domain.Bank{Name: "vault", Owner: owner})
	require.NoError(t, err)
	assert.True(t, created)
	created, _ = repo.Create(ctx, &domain.Bank{Name: "vault"})
	assert.False(t, created)
	_, _ = repo.Create(ctx, &domain.Bank{Name: "alpha"})

	banks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, "alpha", banks[0].Name)
	assert.Equal(t, "vault", banks[1].Name)

	key := domain.BankKey{Name: "vault", Currency: "dollar"}
	tx, _ := store.Begin(ctx)
	require.NoError(t, repo.UpsertBalance(ctx, tx, key, dec("12.5")))
	pending, err := repo.GetBalanceForUpdate(ctx, tx, key)
	require.NoError(t, err)
	assert.True(t, pending.Balance.Equal(dec("12.5")))
	require.NoError(t, tx.Commit(ctx))

	bb, err := repo.GetBalance(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, bb)
	assert.True(t, bb.Balance.Equal(dec("12.5")))

	deleted, err := repo.Delete(ctx, "vault")
	require.NoError(t, err)
	assert.True(t, deleted)

	bb, _ = repo.GetBalance(ctx, key)
	assert.Nil(t, bb, "balances are removed with their bank")

	deleted, _ = repo.Delete(ctx, "vault")
	assert.False(t, deleted)
}

func TestBankRepo_CommitFailsForDeletedBank(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewBankRepo(store)
	_, _ = repo.Create(ctx, &domain.Bank{Name: "vault"})

	tx, _ := store.Begin(ctx)
	require.NoError(t, repo.UpsertBalance(ctx, tx, domain.BankKey{Name: "vault", Currency: "dollar"}, dec("1")))
	_, _ = repo.Delete(ctx, "vault")

	assert.Error(t, tx.Commit(ctx))
	bb, _ := repo.GetBalance(ctx, domain.BankKey{Name: "vault", Currency: "dollar"})
	assert.Nil(t, bb)
}

func TestStore_HealthChecker(t *testing.T) {
	store := NewStore()
	assert.Equal(t, "memory", store.Name())
	assert.NoError(t, store.Ping(context.Background()))
}
