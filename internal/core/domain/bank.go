package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var bankNameRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]{1,64}$`)

// ValidBankName reports whether name may be used for a bank.
func ValidBankName(name string) bool {
	return bankNameRe.MatchString(name)
}

// Bank is a named account not tied to a player.
type Bank struct {
	Name      string    `json:"name"`
	Owner     uuid.UUID `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

// BankKey addresses one currency balance of a bank.
type BankKey struct {
	Name     string
	Currency string
}

// String is a stable identity used for locking.
func (k BankKey) String() string {
	return "bank:" + k.Name + ":" + k.Currency
}

// BankBalance is one currency balance held by a bank.
type BankBalance struct {
	BankName  string          `json:"bank_name"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}
