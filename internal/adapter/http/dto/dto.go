package dto

import (
	"game-economy/pkg/economy"

	"github.com/shopspring/decimal"
)

// AmountRequest is the body of player withdraw and deposit requests.
// Amount is a decimal string so no precision is lost in transit.
type AmountRequest struct {
	Amount   string `json:"amount" binding:"required,decimal_amount"`
	Currency string `json:"currency" binding:"omitempty,max=64"`
	World    string `json:"world" binding:"omitempty,safe_id,max=64"`
}

// BankAmountRequest is the body of bank withdraw and deposit requests.
type BankAmountRequest struct {
	Amount   string `json:"amount" binding:"required,decimal_amount"`
	Currency string `json:"currency" binding:"omitempty,max=64"`
}

// CreateAccountRequest is the body for opening a player account.
type CreateAccountRequest struct {
	World string `json:"world" binding:"omitempty,safe_id,max=64"`
}

// CreateBankRequest is the body for creating a bank.
type CreateBankRequest struct {
	Name  string `json:"name" binding:"required,bank_name"`
	Owner string `json:"owner" binding:"required,uuid"`
}

// BalanceQuery holds the query string of balance and account reads.
type BalanceQuery struct {
	Currency string `form:"currency" binding:"omitempty,max=64"`
	World    string `form:"world" binding:"omitempty,safe_id,max=64"`
}

// HasQuery holds the query string of sufficiency checks.
type HasQuery struct {
	Amount   string `form:"amount" binding:"required,decimal_amount"`
	Currency string `form:"currency" binding:"omitempty,max=64"`
	World    string `form:"world" binding:"omitempty,safe_id,max=64"`
}

// FormatQuery holds the amount to render.
type FormatQuery struct {
	Amount string `form:"amount" binding:"required,decimal_amount"`
}

// ParseAmount converts a validated decimal string.
func ParseAmount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// EconomyInfoResponse describes the backend's capabilities.
type EconomyInfoResponse struct {
	Name            string `json:"name"`
	Enabled         bool   `json:"enabled"`
	Banks           bool   `json:"banks"`
	Worlds          bool   `json:"worlds"`
	MultiCurrency   bool   `json:"multi_currency"`
	DefaultCurrency string `json:"default_currency"`
}

// CurrencyListResponse lists the currency catalog.
type CurrencyListResponse struct {
	Default    string             `json:"default"`
	Currencies []economy.Currency `json:"currencies"`
}

// FormatResponse is a rendered amount.
type FormatResponse struct {
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

// BalanceResponse is a player's balance in one currency.
type BalanceResponse struct {
	Player    string          `json:"player"`
	World     string          `json:"world,omitempty"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Formatted string          `json:"formatted"`
}

// HasResponse answers a sufficiency check.
type HasResponse struct {
	Player   string          `json:"player"`
	World    string          `json:"world,omitempty"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
	Has      bool            `json:"has"`
}

// AccountResponse reports whether a player account exists or was created.
type AccountResponse struct {
	Player  string `json:"player"`
	World   string `json:"world,omitempty"`
	Exists  bool   `json:"exists"`
	Created bool   `json:"created,omitempty"`
}

// BankListResponse lists bank names.
type BankListResponse struct {
	Banks []string `json:"banks"`
}

// BankHasQuery holds the query string of bank sufficiency checks.
type BankHasQuery struct {
	Amount   string `form:"amount" binding:"required,decimal_amount"`
	Currency string `form:"currency" binding:"omitempty,max=64"`
}

// BankBalanceQuery selects the currency of a bank balance read.
type BankBalanceQuery struct {
	Currency string `form:"currency" binding:"omitempty,max=64"`
}
