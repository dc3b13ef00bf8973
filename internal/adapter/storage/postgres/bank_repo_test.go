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

func newTestBank(name string) *domain.Bank {
	return &domain.Bank{
		Name:      name,
		Owner:     uuid.New(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func bankRows(banks ...*domain.Bank) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"name", "owner", "created_at"})
	for _, b := range banks {
		rows.AddRow(b.Name, b.Owner, b.CreatedAt)
	}
	return rows
}

func bankBalanceRows(key domain.BankKey, balance string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"bank_name", "currency", "balance", "updated_at"}).
		AddRow(key.Name, key.Currency, balance, time.Now().UTC())
}

func TestBankRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)
	b := newTestBank("guild_treasury")

	mock.ExpectExec("INSERT INTO banks .+ ON CONFLICT").
		WithArgs(b.Name, b.Owner, b.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO banks").
		WithArgs(b.Name, b.Owner, b.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)

	mock.ExpectExec("DELETE FROM banks WHERE name").
		WithArgs("vault").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM banks WHERE name").
		WithArgs("vault").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), "vault")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), "vault")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)
	b := newTestBank("vault")

	mock.ExpectQuery("SELECT .+ FROM banks WHERE name").
		WithArgs("vault").
		WillReturnRows(bankRows(b))
	mock.ExpectQuery("SELECT .+ FROM banks WHERE name").
		WithArgs("missing").
		WillReturnRows(bankRows())

	result, err := repo.Get(context.Background(), "vault")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, b.Owner, result.Owner)

	result, err = repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM banks ORDER BY name").
		WillReturnRows(bankRows(newTestBank("alpha"), newTestBank("beta")))

	banks, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, "alpha", banks[0].Name)
	assert.Equal(t, "beta", banks[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepo_List_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM banks").WillReturnError(errors.New("db down"))

	_, err = NewBankRepo(mock).List(context.Background())
	assert.Error(t, err)
}

func TestBankRepo_GetBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)
	key := domain.BankKey{Name: "vault", Currency: "dollar"}

	mock.ExpectQuery("SELECT .+ FROM bank_balances WHERE bank_name").
		WithArgs(key.Name, key.Currency).
		WillReturnRows(bankBalanceRows(key, "1500.75"))

	bb, err := repo.GetBalance(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, bb)
	assert.True(t, bb.Balance.Equal(decimal.RequireFromString("1500.75")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepo_ForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)
	b := newTestBank("vault")
	key := domain.BankKey{Name: "vault", Currency: "gem"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM banks WHERE name .+ FOR UPDATE").
		WithArgs("vault").
		WillReturnRows(bankRows(b))
	mock.ExpectQuery("SELECT .+ FROM bank_balances WHERE bank_name .+ FOR UPDATE").
		WithArgs(key.Name, key.Currency).
		WillReturnRows(pgxmock.NewRows([]string{"bank_name", "currency", "balance", "updated_at"}))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	bank, err := repo.GetForUpdate(context.Background(), tx, "vault")
	require.NoError(t, err)
	require.NotNil(t, bank)

	bb, err := repo.GetBalanceForUpdate(context.Background(), tx, key)
	require.NoError(t, err)
	assert.Nil(t, bb, "a currency never deposited has no row")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepo_UpsertBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)
	key := domain.BankKey{Name: "vault", Currency: "gem"}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bank_balances .+ ON CONFLICT .+ DO UPDATE").
		WithArgs(key.Name, key.Currency, "12.5").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpsertBalance(context.Background(), tx, key, decimal.RequireFromString("12.50"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
