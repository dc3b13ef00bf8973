package ports

import (
	"context"
	"time"

	"game-economy/internal/core/domain"
	"game-economy/pkg/economy"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// EconomyService is the economy contract as consumed by the HTTP layer.
type EconomyService interface {
	economy.Economy
}

// BalanceCache is a read-through cache of player balances.
type BalanceCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, key domain.AccountKey) (*decimal.Decimal, error)
	// Set caches balance as of account version, unless a same or newer
	// version is already cached.
	Set(ctx context.Context, key domain.AccountKey, balance decimal.Decimal, version int64) error
	Invalidate(ctx context.Context, key domain.AccountKey) error
}

// IdempotencyCache replays responses of retried HTTP mutations.
type IdempotencyCache interface {
	// Claim stores marker under key unless key is already held. It reports
	// whether this caller now owns key.
	Claim(ctx context.Context, key string, marker []byte, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	// Set stores the final response, replacing a claim marker.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Release drops key so the request can be retried.
	Release(ctx context.Context, key string) error
}

// MetricsRecorder observes economy operations.
type MetricsRecorder interface {
	ObserveOperation(op string, result economy.ResponseType, elapsed time.Duration)
	ObserveCache(hit bool)
}

// TokenService issues and validates bearer tokens for game hosts.
type TokenService interface {
	Generate(hostID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	HostID string
}
