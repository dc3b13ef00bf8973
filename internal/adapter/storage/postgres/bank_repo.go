package postgres

import (
	"context"
	"errors"
	"fmt"

	"game-economy/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	bankColumns        = `name, owner, created_at`
	bankBalanceColumns = `bank_name, currency, balance::text, updated_at`
)

// BankRepo implements ports.BankRepository.
type BankRepo struct {
	pool Pool
}

// NewBankRepo creates a new BankRepo.
func NewBankRepo(pool Pool) *BankRepo {
	return &BankRepo{pool: pool}
}

// Create inserts the bank unless the name is taken.
func (r *BankRepo) Create(ctx context.Context, b *domain.Bank) (bool, error) {
	query := `INSERT INTO banks (name, owner, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, b.Name, b.Owner, b.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert bank: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes the bank; its balances go with it (ON DELETE CASCADE).
func (r *BankRepo) Delete(ctx context.Context, name string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM banks WHERE name = $1`, name)
	if err != nil {
		return false, fmt.Errorf("delete bank: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Get fetches a bank by name without locking.
func (r *BankRepo) Get(ctx context.Context, name string) (*domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE name = $1`

	b := &domain.Bank{}
	err := r.pool.QueryRow(ctx, query, name).Scan(&b.Name, &b.Owner, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank: %w", err)
	}
	return b, nil
}

// List returns all banks ordered by name.
func (r *BankRepo) List(ctx context.Context) ([]domain.Bank, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bankColumns+` FROM banks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	defer rows.Close()

	var banks []domain.Bank
	for rows.Next() {
		var b domain.Bank
		if err := rows.Scan(&b.Name, &b.Owner, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		banks = append(banks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate banks: %w", err)
	}
	return banks, nil
}

// GetBalance fetches one currency balance of a bank without locking.
func (r *BankRepo) GetBalance(ctx context.Context, key domain.BankKey) (*domain.BankBalance, error) {
	query := `SELECT ` + bankBalanceColumns + ` FROM bank_balances WHERE bank_name = $1 AND currency = $2`

	bb, err := scanBankBalance(r.pool.QueryRow(ctx, query, key.Name, key.Currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank balance: %w", err)
	}
	return bb, nil
}

// GetForUpdate locks the bank row so it cannot be deleted mid-transaction.
// This MUST be called within a transaction.
func (r *BankRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, name string) (*domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE name = $1 FOR UPDATE`

	b := &domain.Bank{}
	err := tx.QueryRow(ctx, query, name).Scan(&b.Name, &b.Owner, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank for update: %w", err)
	}
	return b, nil
}

// GetBalanceForUpdate fetches one currency balance with pessimistic locking.
// This MUST be called within a transaction.
func (r *BankRepo) GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, key domain.BankKey) (*domain.BankBalance, error) {
	query := `SELECT ` + bankBalanceColumns + `
		FROM bank_balances WHERE bank_name = $1 AND currency = $2 FOR UPDATE`

	bb, err := scanBankBalance(tx.QueryRow(ctx, query, key.Name, key.Currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank balance for update: %w", err)
	}
	return bb, nil
}

// UpsertBalance writes one currency balance of a bank within a transaction.
func (r *BankRepo) UpsertBalance(ctx context.Context, tx pgx.Tx, key domain.BankKey, balance decimal.Decimal) error {
	query := `INSERT INTO bank_balances (bank_name, currency, balance, updated_at)
		VALUES ($1, $2, $3::numeric, NOW())
		ON CONFLICT (bank_name, currency) DO UPDATE SET balance = EXCLUDED.balance, updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, key.Name, key.Currency, balance.String()); err != nil {
		return fmt.Errorf("upsert bank balance: %w", err)
	}
	return nil
}

func scanBankBalance(row pgx.Row) (*domain.BankBalance, error) {
	bb := &domain.BankBalance{}
	var balance string
	if err := row.Scan(&bb.BankName, &bb.Currency, &balance, &bb.UpdatedAt); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse balance %q: %w", balance, err)
	}
	bb.Balance = amount
	return bb, nil
}
