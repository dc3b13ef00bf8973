package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"game-economy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountColumns() []string {
	return []string{"player_id", "world", "currency", "balance", "version", "created_at", "updated_at"}
}

func newTestAccount() *domain.PlayerAccount {
	now := time.Now().UTC().Truncate(time.Microsecond)
	key := domain.AccountKey{Player: uuid.New(), World: "nether", Currency: "dollar"}
	return domain.NewPlayerAccount(key, decimal.RequireFromString("100.50"), now)
}

func accountRow(a *domain.PlayerAccount) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumns()).AddRow(
		a.PlayerID, a.World, a.Currency, a.Balance.String(), a.Version, a.CreatedAt, a.UpdatedAt,
	)
}

func TestPlayerAccountRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectQuery("SELECT .+ FROM player_accounts WHERE player_id").
		WithArgs(a.PlayerID, a.World, a.Currency).
		WillReturnRows(accountRow(a))

	result, err := repo.Get(context.Background(), a.Key())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.Key(), result.Key())
	assert.True(t, result.Balance.Equal(decimal.RequireFromString("100.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerAccountRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerAccountRepo(mock)
	key := domain.AccountKey{Player: uuid.New(), Currency: "dollar"}

	mock.ExpectQuery("SELECT .+ FROM player_accounts WHERE player_id").
		WithArgs(key.Player, key.World, key.Currency).
		WillReturnRows(pgxmock.NewRows(accountColumns()))

	result, err := repo.Get(context.Background(), key)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerAccountRepo_Get_BadBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectQuery("SELECT .+ FROM player_accounts").
		WithArgs(a.PlayerID, a.World, a.Currency).
		WillReturnRows(pgxmock.NewRows(accountColumns()).AddRow(
			a.PlayerID, a.World, a.Currency, "NaN?", int64(0), a.CreatedAt, a.UpdatedAt))

	_, err = repo.Get(context.Background(), a.Key())
	assert.Error(t, err)
}

func TestPlayerAccountRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerAccountRepo(mock)
	a := newTestAccount()
	a.Version = 7

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM player_accounts WHERE player_id .+ FOR UPDATE").
		WithArgs(a.PlayerID, a.World, a.Currency).
		WillReturnRows(accountRow(a))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetForUpdate(context.Background(), tx, a.Key())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.PlayerID, result.PlayerID)
	assert.Equal(t, int64(7), result.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerAccountRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO player_accounts .+ ON CONFLICT").
		WithArgs(a.PlayerID, a.World, a.Currency, "100.5", a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO player_accounts").
		WithArgs(a.PlayerID, a.World, a.Currency, "100.5", a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), tx, a)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(context.Background(), tx, a)
	require.NoError(t, err)
	assert.False(t, created, "conflicting insert reports an existing account")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerAccountRepo_UpdateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerAccountRepo(mock)
	key := domain.AccountKey{Player: uuid.New(), Currency: "gem"}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE player_accounts SET balance = \$1::numeric, version = version \+ 1`).
		WithArgs("42.125", key.Player, key.World, key.Currency).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, key, decimal.RequireFromString("42.125"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerAccountRepo_UpdateBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerAccountRepo(mock)
	key := domain.AccountKey{Player: uuid.New(), Currency: "gem"}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE player_accounts SET balance").
		WithArgs("1", key.Player, key.World, key.Currency).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, key, decimal.NewFromInt(1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "player account not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerAccountRepo_Exists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerAccountRepo(mock)
	player := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(player, "").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(player, "nether").
		WillReturnError(errors.New("timeout"))

	exists, err := repo.Exists(context.Background(), player, "")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.Exists(context.Background(), player, "nether")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
