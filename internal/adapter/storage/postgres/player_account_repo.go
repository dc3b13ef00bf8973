package postgres

import (
	"context"
	"errors"
	"fmt"

	"game-economy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Balances travel as text so NUMERIC precision is never squeezed through a float.
const playerAccountColumns = `player_id, world, currency, balance::text, version, created_at, updated_at`

// PlayerAccountRepo implements ports.PlayerAccountRepository.
type PlayerAccountRepo struct {
	pool Pool
}

// NewPlayerAccountRepo creates a new PlayerAccountRepo.
func NewPlayerAccountRepo(pool Pool) *PlayerAccountRepo {
	return &PlayerAccountRepo{pool: pool}
}

// Get fetches an account without locking.
func (r *PlayerAccountRepo) Get(ctx context.Context, key domain.AccountKey) (*domain.PlayerAccount, error) {
	query := `SELECT ` + playerAccountColumns + `
		FROM player_accounts WHERE player_id = $1 AND world = $2 AND currency = $3`

	a, err := scanPlayerAccount(r.pool.QueryRow(ctx, query, key.Player, key.World, key.Currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get player account: %w", err)
	}
	return a, nil
}

// GetForUpdate fetches an account with pessimistic locking.
// This MUST be called within a transaction.
func (r *PlayerAccountRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, key domain.AccountKey) (*domain.PlayerAccount, error) {
	query := `SELECT ` + playerAccountColumns + `
		FROM player_accounts WHERE player_id = $1 AND world = $2 AND currency = $3 FOR UPDATE`

	a, err := scanPlayerAccount(tx.QueryRow(ctx, query, key.Player, key.World, key.Currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get player account for update: %w", err)
	}
	return a, nil
}

// Create inserts the account unless its key already exists.
func (r *PlayerAccountRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.PlayerAccount) (bool, error) {
	query := `INSERT INTO player_accounts (player_id, world, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6)
		ON CONFLICT (player_id, world, currency) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		a.PlayerID, a.World, a.Currency, a.Balance.String(), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert player account: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateBalance sets the account balance and bumps its version within a
// transaction.
func (r *PlayerAccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, key domain.AccountKey, balance decimal.Decimal) error {
	query := `UPDATE player_accounts SET balance = $1::numeric, version = version + 1, updated_at = NOW()
		WHERE player_id = $2 AND world = $3 AND currency = $4`

	tag, err := tx.Exec(ctx, query, balance.String(), key.Player, key.World, key.Currency)
	if err != nil {
		return fmt.Errorf("update player balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("player account not found: %s", key)
	}
	return nil
}

// Exists reports whether the player holds a balance in any currency of world.
func (r *PlayerAccountRepo) Exists(ctx context.Context, player uuid.UUID, world string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM player_accounts WHERE player_id = $1 AND world = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, player, world).Scan(&exists); err != nil {
		return false, fmt.Errorf("check player account: %w", err)
	}
	return exists, nil
}

func scanPlayerAccount(row pgx.Row) (*domain.PlayerAccount, error) {
	a := &domain.PlayerAccount{}
	var balance string
	if err := row.Scan(&a.PlayerID, &a.World, &a.Currency, &balance, &a.Version, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse balance %q: %w", balance, err)
	}
	a.Balance = amount
	return a, nil
}
