package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GlobalWorld is the world name of a player's world-independent account.
const GlobalWorld = ""

// AccountKey addresses a player balance: (player, world, currency).
// An empty World addresses the global account.
type AccountKey struct {
	Player   uuid.UUID
	World    string
	Currency string
}

// String is a stable identity used for locking and caching.
func (k AccountKey) String() string {
	return "player:" + k.Player.String() + ":" + k.World + ":" + k.Currency
}

// IsGlobal reports whether the key addresses the global account.
func (k AccountKey) IsGlobal() bool {
	return k.World == GlobalWorld
}

// PlayerAccount is a stored player balance. Version starts at zero and is
// incremented by every balance update, ordering cached copies of the row.
type PlayerAccount struct {
	PlayerID  uuid.UUID       `json:"player_id"`
	World     string          `json:"world"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Key returns the account's key.
func (a *PlayerAccount) Key() AccountKey {
	return AccountKey{Player: a.PlayerID, World: a.World, Currency: a.Currency}
}

// NewPlayerAccount builds an account for key holding balance.
func NewPlayerAccount(key AccountKey, balance decimal.Decimal, now time.Time) *PlayerAccount {
	return &PlayerAccount{
		PlayerID:  key.Player,
		World:     key.World,
		Currency:  key.Currency,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
