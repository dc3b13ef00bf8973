package memory

import (
	"context"
	"fmt"
	"time"

	"game-economy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PlayerAccountRepo implements ports.PlayerAccountRepository over a Store.
type PlayerAccountRepo struct {
	store *Store
}

// NewPlayerAccountRepo creates a new PlayerAccountRepo.
func NewPlayerAccountRepo(store *Store) *PlayerAccountRepo {
	return &PlayerAccountRepo{store: store}
}

func (r *PlayerAccountRepo) Get(ctx context.Context, key domain.AccountKey) (*domain.PlayerAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	a, ok := r.store.accounts[key]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// GetForUpdate returns the account as seen by tx.
func (r *PlayerAccountRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, key domain.AccountKey) (*domain.PlayerAccount, error) {
	mt, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	if a, ok := mt.accounts[key]; ok {
		return &a, nil
	}
	return r.Get(ctx, key)
}

func (r *PlayerAccountRepo) Create(ctx context.Context, tx pgx.Tx, account *domain.PlayerAccount) (bool, error) {
	mt, err := asTx(tx)
	if err != nil {
		return false, err
	}
	key := account.Key()
	if _, ok := mt.accounts[key]; ok {
		return false, nil
	}
	existing, err := r.Get(ctx, key)
	if err != nil || existing != nil {
		return false, err
	}
	mt.accounts[key] = *account
	return true, nil
}

func (r *PlayerAccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, key domain.AccountKey, balance decimal.Decimal) error {
	account, err := r.GetForUpdate(ctx, tx, key)
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("account %s not found", key)
	}
	account.Balance = balance
	account.Version++
	account.UpdatedAt = time.Now().UTC()

	mt, _ := asTx(tx)
	mt.accounts[key] = *account
	return nil
}

func (r *PlayerAccountRepo) Exists(ctx context.Context, player uuid.UUID, world string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for key := range r.store.accounts {
		if key.Player == player && key.World == world {
			return true, nil
		}
	}
	return false, nil
}
