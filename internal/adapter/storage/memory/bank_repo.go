package memory

import (
	"context"
	"sort"
	"time"

	"game-economy/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BankRepo implements ports.BankRepository over a Store.
type BankRepo struct {
	store *Store
}

// NewBankRepo creates a new BankRepo.
func NewBankRepo(store *Store) *BankRepo {
	return &BankRepo{store: store}
}

func (r *BankRepo) Create(ctx context.Context, bank *domain.Bank) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.banks[bank.Name]; ok {
		return false, nil
	}
	r.store.banks[bank.Name] = *bank
	return true, nil
}

// Delete removes the bank together with its balances.
func (r *BankRepo) Delete(ctx context.Context, name string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.banks[name]; !ok {
		return false, nil
	}
	delete(r.store.banks, name)
	for key := range r.store.bankBalances {
		if key.Name == name {
			delete(r.store.bankBalances, key)
		}
	}
	return true, nil
}

func (r *BankRepo) Get(ctx context.Context, name string) (*domain.Bank, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	b, ok := r.store.banks[name]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// List returns all banks ordered by name.
func (r *BankRepo) List(ctx context.Context) ([]domain.Bank, error) {
	r.store.mu.RLock()
	banks := make([]domain.Bank, 0, len(r.store.banks))
	for _, b := range r.store.banks {
		banks = append(banks, b)
	}
	r.store.mu.RUnlock()

	sort.Slice(banks, func(i, j int) bool { return banks[i].Name < banks[j].Name })
	return banks, nil
}

func (r *BankRepo) GetBalance(ctx context.Context, key domain.BankKey) (*domain.BankBalance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	bb, ok := r.store.bankBalances[key]
	if !ok {
		return nil, nil
	}
	return &bb, nil
}

func (r *BankRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, name string) (*domain.Bank, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	return r.Get(ctx, name)
}

func (r *BankRepo) GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, key domain.BankKey) (*domain.BankBalance, error) {
	mt, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	if bb, ok := mt.bankBalances[key]; ok {
		return &bb, nil
	}
	return r.GetBalance(ctx, key)
}

func (r *BankRepo) UpsertBalance(ctx context.Context, tx pgx.Tx, key domain.BankKey, balance decimal.Decimal) error {
	mt, err := asTx(tx)
	if err != nil {
		return err
	}
	mt.bankBalances[key] = domain.BankBalance{
		BankName:  key.Name,
		Currency:  key.Currency,
		Balance:   balance,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}
