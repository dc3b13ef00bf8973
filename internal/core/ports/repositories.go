package ports

import (
	"context"

	"game-economy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// PlayerAccountRepository defines persistence operations for player balances.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
// Lookups return nil, nil when the account does not exist.
type PlayerAccountRepository interface {
	Get(ctx context.Context, key domain.AccountKey) (*domain.PlayerAccount, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, key domain.AccountKey) (*domain.PlayerAccount, error)
	// Create inserts the account. It returns false if the key already exists.
	Create(ctx context.Context, tx pgx.Tx, account *domain.PlayerAccount) (bool, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, key domain.AccountKey, balance decimal.Decimal) error
	// Exists reports whether the player holds any balance in world.
	Exists(ctx context.Context, player uuid.UUID, world string) (bool, error)
}

// BankRepository defines persistence operations for banks and their balances.
type BankRepository interface {
	// Create inserts the bank. It returns false if the name is taken.
	Create(ctx context.Context, bank *domain.Bank) (bool, error)
	// Delete removes the bank and its balances. It returns false if the bank did not exist.
	Delete(ctx context.Context, name string) (bool, error)
	Get(ctx context.Context, name string) (*domain.Bank, error)
	List(ctx context.Context) ([]domain.Bank, error)
	GetBalance(ctx context.Context, key domain.BankKey) (*domain.BankBalance, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, name string) (*domain.Bank, error)
	GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, key domain.BankKey) (*domain.BankBalance, error)
	UpsertBalance(ctx context.Context, tx pgx.Tx, key domain.BankKey, balance decimal.Decimal) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
