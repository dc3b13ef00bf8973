// Package memory keeps balances in process memory. It serves embedded hosts
// and tests; nothing survives a restart.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"game-economy/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrTxDone is returned when a finished transaction is used again.
	ErrTxDone = errors.New("memory: transaction already finished")
	// ErrSQLUnsupported is returned by the SQL methods of Tx.
	ErrSQLUnsupported = errors.New("memory: SQL is not supported")
)

// Store holds every account, bank and bank balance. It implements
// ports.DBTransactor: writes made through a Tx become visible on Commit.
type Store struct {
	mu           sync.RWMutex
	accounts     map[domain.AccountKey]domain.PlayerAccount
	banks        map[string]domain.Bank
	bankBalances map[domain.BankKey]domain.BankBalance
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		accounts:     make(map[domain.AccountKey]domain.PlayerAccount),
		banks:        make(map[string]domain.Bank),
		bankBalances: make(map[domain.BankKey]domain.BankBalance),
	}
}

// Begin starts a transaction buffering writes until Commit.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	return &Tx{
		store:        s,
		accounts:     make(map[domain.AccountKey]domain.PlayerAccount),
		bankBalances: make(map[domain.BankKey]domain.BankBalance),
	}, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory" }

// Ping implements ports.HealthChecker.
func (s *Store) Ping(ctx context.Context) error { return nil }

// Tx is a write buffer over a Store. Reads through the Tx see its own
// pending writes. Locking of the addressed keys is left to the caller.
type Tx struct {
	store        *Store
	mu           sync.Mutex
	accounts     map[domain.AccountKey]domain.PlayerAccount
	bankBalances map[domain.BankKey]domain.BankBalance
	done         bool
}

func asTx(tx pgx.Tx) (*Tx, error) {
	mt, ok := tx.(*Tx)
	if !ok {
		return nil, fmt.Errorf("memory: foreign transaction %T", tx)
	}
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.done {
		return nil, ErrTxDone
	}
	return mt, nil
}

// Commit applies pending writes. Balances of banks deleted since they were
// read fail the whole commit.
func (t *Tx) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return ErrTxDone
	}
	t.done = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	for key := range t.bankBalances {
		if _, ok := t.store.banks[key.Name]; !ok {
			return fmt.Errorf("memory: bank %q no longer exists", key.Name)
		}
	}
	for key, account := range t.accounts {
		t.store.accounts[key] = account
	}
	for key, balance := range t.bankBalances {
		t.store.bankBalances[key] = balance
	}
	return nil
}

// Rollback discards pending writes. It is a no-op after Commit.
func (t *Tx) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done = true
	t.accounts = nil
	t.bankBalances = nil
	return nil
}

func (t *Tx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, ErrSQLUnsupported }
func (t *Tx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, ErrSQLUnsupported
}
func (t *Tx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *Tx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *Tx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, ErrSQLUnsupported
}
func (t *Tx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), ErrSQLUnsupported
}
func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, ErrSQLUnsupported
}
func (t *Tx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *Tx) Conn() *pgx.Conn                                               { return nil }
