// Package economy defines the vendor-neutral contract of an in-game economy:
// balance queries, player and bank ledgers, currency metadata and the
// Response value that carries every outcome.
//
// Operations never return errors or panic across this boundary. Mutations
// report through Response.Type; queries fall back to a best-effort default
// (zero, false, the empty string or NoRounding).
//
// Amounts passed to any operation must not be negative. Backends reject
// negative amounts with a FAILURE response and leave balances untouched.
//
// Every global operation X has a world-scoped twin XInWorld. A backend
// without per-world balances serves the twin from the global account.
package economy

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Querier groups the read-only operations.
type Querier interface {
	// FractionalDigits returns the number of decimal places kept for the
	// currency, or NoRounding. Unknown currencies return NoRounding.
	FractionalDigits(currency string) int
	// Format renders amount using the currency's display conventions.
	Format(amount decimal.Decimal, currency string) string
	// CurrencyNamePlural returns "" when the backend has no named currencies.
	CurrencyNamePlural(currency string) string
	// CurrencyNameSingular returns "" when the backend has no named currencies.
	CurrencyNameSingular(currency string) string

	// GetBalance returns the player's global balance. Unknown players hold zero.
	GetBalance(ctx context.Context, player uuid.UUID, currency string) decimal.Decimal
	// GetBalanceInWorld returns the world-scoped balance, or the global one
	// when the backend does not track worlds.
	GetBalanceInWorld(ctx context.Context, player uuid.UUID, world, currency string) decimal.Decimal
	// Has reports GetBalance(player, currency) >= amount.
	Has(ctx context.Context, player uuid.UUID, amount decimal.Decimal, currency string) bool
	// HasInWorld reports GetBalanceInWorld(player, world, currency) >= amount.
	HasInWorld(ctx context.Context, player uuid.UUID, world string, amount decimal.Decimal, currency string) bool
}

// PlayerLedger groups debits and credits of player accounts. Each call is
// atomic with respect to other calls on the same account key.
type PlayerLedger interface {
	WithdrawPlayer(ctx context.Context, player uuid.UUID, amount decimal.Decimal, currency string) Response
	WithdrawPlayerInWorld(ctx context.Context, player uuid.UUID, world string, amount decimal.Decimal, currency string) Response
	DepositPlayer(ctx context.Context, player uuid.UUID, amount decimal.Decimal, currency string) Response
	DepositPlayerInWorld(ctx context.Context, player uuid.UUID, world string, amount decimal.Decimal, currency string) Response
}

// BankLedger groups operations on named, non-player accounts. A backend
// without banks answers NOT_IMPLEMENTED from all of them.
type BankLedger interface {
	// BankBalance sets both Amount and Balance to the bank's balance.
	// Unknown banks fail.
	BankBalance(ctx context.Context, name, currency string) Response
	// BankHas succeeds when the bank holds at least amount.
	BankHas(ctx context.Context, name string, amount decimal.Decimal, currency string) Response
	BankWithdraw(ctx context.Context, name string, amount decimal.Decimal, currency string) Response
	BankDeposit(ctx context.Context, name string, amount decimal.Decimal, currency string) Response
}

// Capabilities describes what a backend supports.
type Capabilities interface {
	Name() string
	IsEnabled() bool
	HasBankSupport() bool
	HasWorldSupport() bool
	HasMultiCurrencySupport() bool
	DefaultCurrency() string
	Currencies() []Currency
}

// AccountAdmin creates and inspects accounts.
type AccountAdmin interface {
	HasAccount(ctx context.Context, player uuid.UUID) bool
	HasAccountInWorld(ctx context.Context, player uuid.UUID, world string) bool
	// CreatePlayerAccount returns false when the account already exists or
	// could not be created.
	CreatePlayerAccount(ctx context.Context, player uuid.UUID) bool
	CreatePlayerAccountInWorld(ctx context.Context, player uuid.UUID, world string) bool

	CreateBank(ctx context.Context, name string, owner uuid.UUID) Response
	DeleteBank(ctx context.Context, name string) Response
	IsBankOwner(ctx context.Context, name string, player uuid.UUID) Response
	Banks(ctx context.Context) []string
}

// Economy is the full contract a backend implements.
type Economy interface {
	Capabilities
	Querier
	PlayerLedger
	BankLedger
	AccountAdmin
}
