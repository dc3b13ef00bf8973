package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"game-economy/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// setIfNewer stores ARGV[2]:ARGV[3] in field ARGV[1] unless the field already
// holds a version >= ARGV[2], then refreshes the hash TTL (ARGV[4] ms).
var setIfNewer = goredis.NewScript(`
local cur = redis.call('HGET', KEYS[1], ARGV[1])
if cur then
	local sep = string.find(cur, ':', 1, true)
	local v = sep and tonumber(string.sub(cur, 1, sep - 1))
	if v and v >= tonumber(ARGV[2]) then
		return 0
	end
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2] .. ':' .. ARGV[3])
if tonumber(ARGV[4]) > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[4])
end
return 1
`)

// BalanceCache implements ports.BalanceCache. Balances of one player in one
// world share a hash keyed by currency. Each field holds "<version>:<balance>"
// and only a newer account version replaces it, so writers on different
// instances cannot roll the cached balance back.
type BalanceCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewBalanceCache creates a cache whose hashes expire ttl after the last write.
// A ttl of zero keeps entries until they are invalidated.
func NewBalanceCache(client *goredis.Client, ttl time.Duration) *BalanceCache {
	return &BalanceCache{client: client, ttl: ttl}
}

func (c *BalanceCache) hashKey(key domain.AccountKey) string {
	return fmt.Sprintf("%sbalances:%s:%s", keyPrefix, key.Player, key.World)
}

// Get returns nil, nil on a miss.
func (c *BalanceCache) Get(ctx context.Context, key domain.AccountKey) (*decimal.Decimal, error) {
	raw, err := c.client.HGet(ctx, c.hashKey(key), key.Currency).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis balance get: %w", err)
	}

	version, balance, ok := strings.Cut(raw, ":")
	if !ok {
		return nil, fmt.Errorf("redis balance parse %q: missing version", raw)
	}
	if _, err := strconv.ParseInt(version, 10, 64); err != nil {
		return nil, fmt.Errorf("redis balance parse %q: %w", raw, err)
	}
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("redis balance parse %q: %w", raw, err)
	}
	return &amount, nil
}

// Set caches balance as of account version. An entry holding the same or a
// newer version is kept.
func (c *BalanceCache) Set(ctx context.Context, key domain.AccountKey, balance decimal.Decimal, version int64) error {
	err := setIfNewer.Run(ctx, c.client,
		[]string{c.hashKey(key)},
		key.Currency, version, balance.String(), c.ttl.Milliseconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("redis balance set: %w", err)
	}
	return nil
}

// Invalidate drops one cached currency balance.
func (c *BalanceCache) Invalidate(ctx context.Context, key domain.AccountKey) error {
	if err := c.client.HDel(ctx, c.hashKey(key), key.Currency).Err(); err != nil {
		return fmt.Errorf("redis balance invalidate: %w", err)
	}
	return nil
}
