package postgres

import (
	"context"
	"errors"
	"fmt"
)

// ledgerSchemaQuery fails the check when the ledger tables are missing, e.g.
// when the server points at a database that was never migrated.
const ledgerSchemaQuery = `SELECT to_regclass('player_accounts') IS NOT NULL
	AND to_regclass('banks') IS NOT NULL
	AND to_regclass('bank_balances') IS NOT NULL`

var errLedgerSchemaMissing = errors.New("ledger tables missing, run migrations")

// LedgerHealthCheck implements ports.HealthChecker for the PostgreSQL ledger.
type LedgerHealthCheck struct {
	pool Pool
}

func NewLedgerHealthCheck(pool Pool) *LedgerHealthCheck {
	return &LedgerHealthCheck{pool: pool}
}

// Ping checks connectivity and that the ledger schema is in place.
func (h *LedgerHealthCheck) Ping(ctx context.Context) error {
	var ok bool
	if err := h.pool.QueryRow(ctx, ledgerSchemaQuery).Scan(&ok); err != nil {
		return fmt.Errorf("ledger schema check: %w", err)
	}
	if !ok {
		return errLedgerSchemaMissing
	}
	return nil
}

func (h *LedgerHealthCheck) Name() string {
	return "ledger_db"
}
