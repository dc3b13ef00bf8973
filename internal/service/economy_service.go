package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"game-economy/config"
	"game-economy/internal/core/domain"
	"game-economy/internal/core/ports"
	"game-economy/pkg/economy"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Settings are the policy switches of an EconomyServiceImpl.
type Settings struct {
	Name             string
	DefaultCurrency  string
	Currencies       []economy.Currency
	WorldBalances    bool
	Banks            bool
	MultiCurrency    bool
	AllowOverdraft   bool
	AutoCreate       bool
	StartingBalance  decimal.Decimal
	StrictCurrencies bool
}

// SettingsFromConfig converts the economy config section.
func SettingsFromConfig(cfg config.EconomyConfig) (Settings, error) {
	start, err := cfg.StartingBalanceAmount()
	if err != nil {
		return Settings{}, err
	}
	if strings.TrimSpace(cfg.DefaultCurrency) == "" {
		return Settings{}, fmt.Errorf("economy.default_currency is required")
	}
	return Settings{
		Name:             cfg.Name,
		DefaultCurrency:  cfg.DefaultCurrency,
		Currencies:       cfg.Currencies,
		WorldBalances:    cfg.WorldBalances,
		Banks:            cfg.Banks,
		MultiCurrency:    cfg.MultiCurrency,
		AllowOverdraft:   cfg.AllowOverdraft,
		AutoCreate:       cfg.AutoCreate,
		StartingBalance:  start,
		StrictCurrencies: cfg.StrictCurrencies,
	}, nil
}

// EconomyServiceImpl implements ports.EconomyService on top of the
// account and bank repositories.
//
// Every mutation holds an in-process lock on its account key for the whole
// read-modify-write, and the repositories lock the row (SELECT ... FOR UPDATE)
// inside the same database transaction, so concurrent calls on one key never
// lose an update.
type EconomyServiceImpl struct {
	accounts   ports.PlayerAccountRepository
	banks      ports.BankRepository
	transactor ports.DBTransactor
	cache      ports.BalanceCache
	metrics    ports.MetricsRecorder
	settings   Settings
	currencies map[string]economy.Currency
	catalog    []economy.Currency
	locks      *KeyLock
	reads      singleflight.Group
	now        func() time.Time
	log        zerolog.Logger
}

var _ ports.EconomyService = (*EconomyServiceImpl)(nil)

// NewEconomyService creates a new EconomyServiceImpl. cache and metrics may be nil.
func NewEconomyService(
	accounts ports.PlayerAccountRepository,
	banks ports.BankRepository,
	transactor ports.DBTransactor,
	cache ports.BalanceCache,
	metrics ports.MetricsRecorder,
	settings Settings,
	log zerolog.Logger,
) *EconomyServiceImpl {
	if cache == nil {
		cache = nopCache{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	settings.DefaultCurrency = normalizeCurrency(settings.DefaultCurrency)

	currencies := make(map[string]economy.Currency, len(settings.Currencies)+1)
	catalog := make([]economy.Currency, 0, len(settings.Currencies)+1)
	for _, c := range settings.Currencies {
		c.Name = normalizeCurrency(c.Name)
		if _, dup := currencies[c.Name]; dup || c.Name == "" {
			continue
		}
		currencies[c.Name] = c
		catalog = append(catalog, c)
	}
	if _, ok := currencies[settings.DefaultCurrency]; !ok {
		c := economy.Currency{Name: settings.DefaultCurrency, FractionalDigits: economy.NoRounding}
		currencies[c.Name] = c
		catalog = append([]economy.Currency{c}, catalog...)
	}

	return &EconomyServiceImpl{
		accounts:   accounts,
		banks:      banks,
		transactor: transactor,
		cache:      cache,
		metrics:    metrics,
		settings:   settings,
		currencies: currencies,
		catalog:    catalog,
		locks:      NewKeyLock(),
		now:        func() time.Time { return time.Now().UTC() },
		log:        log,
	}
}

// ==================== Capabilities ====================

func (s *EconomyServiceImpl) Name() string { return s.settings.Name }

// IsEnabled reports whether the backend has storage to serve requests.
func (s *EconomyServiceImpl) IsEnabled() bool {
	return s.accounts != nil && s.banks != nil && s.transactor != nil
}

func (s *EconomyServiceImpl) HasBankSupport() bool          { return s.settings.Banks }
func (s *EconomyServiceImpl) HasWorldSupport() bool         { return s.settings.WorldBalances }
func (s *EconomyServiceImpl) HasMultiCurrencySupport() bool { return s.settings.MultiCurrency }
func (s *EconomyServiceImpl) DefaultCurrency() string       { return s.settings.DefaultCurrency }

// Currencies returns the catalog, default currency first when it was not
// configured explicitly.
func (s *EconomyServiceImpl) Currencies() []economy.Currency {
	if !s.settings.MultiCurrency {
		return []economy.Currency{s.currencies[s.settings.DefaultCurrency]}
	}
	out := make([]economy.Currency, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// ==================== Queries ====================

func (s *EconomyServiceImpl) FractionalDigits(currency string) int {
	c, ok := s.lookupCurrency(currency)
	if !ok {
		return economy.NoRounding
	}
	return c.FractionalDigits
}

func (s *EconomyServiceImpl) Format(amount decimal.Decimal, currency string) string {
	c, ok := s.lookupCurrency(currency)
	if !ok {
		return economy.FormatPlain(amount)
	}
	return c.Format(amount)
}

func (s *EconomyServiceImpl) CurrencyNamePlural(currency string) string {
	c, _ := s.lookupCurrency(currency)
	return c.NamePlural
}

func (s *EconomyServiceImpl) CurrencyNameSingular(currency string) string {
	c, _ := s.lookupCurrency(currency)
	return c.NameSingular
}

func (s *EconomyServiceImpl) GetBalance(ctx context.Context, player uuid.UUID, currency string) decimal.Decimal {
	return s.GetBalanceInWorld(ctx, player, domain.GlobalWorld, currency)
}

// GetBalanceInWorld returns zero on storage faults. A missing account reads
// as the balance its first mutation would create it with.
func (s *EconomyServiceImpl) GetBalanceInWorld(ctx context.Context, player uuid.UUID, world, currency string) decimal.Decimal {
	key, ok := s.accountKey(player, world, currency)
	if !ok || !s.IsEnabled() {
		return decimal.Zero
	}

	balance, err := s.readBalance(ctx, key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("balance lookup failed")
		return decimal.Zero
	}
	return balance
}

func (s *EconomyServiceImpl) Has(ctx context.Context, player uuid.UUID, amount decimal.Decimal, currency string) bool {
	return s.HasInWorld(ctx, player, domain.GlobalWorld, amount, currency)
}

func (s *EconomyServiceImpl) HasInWorld(ctx context.Context, player uuid.UUID, world string, amount decimal.Decimal, currency string) bool {
	return s.GetBalanceInWorld(ctx, player, world, currency).GreaterThanOrEqual(amount)
}

// readBalance serves key from the cache, falling back to the repository.
// Concurrent misses on one key share a single repository read.
func (s *EconomyServiceImpl) readBalance(ctx context.Context, key domain.AccountKey) (decimal.Decimal, error) {
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key.String()).Msg("balance cache read failed, falling through to storage")
	}
	if cached != nil {
		s.metrics.ObserveCache(true)
		return *cached, nil
	}
	s.metrics.ObserveCache(false)

	v, err, _ := s.reads.Do(key.String(), func() (interface{}, error) {
		// Holding the key lock keeps a concurrent write from being
		// overwritten in the cache by this older read.
		unlock := s.locks.Lock(key.String())
		defer unlock()

		account, err := s.accounts.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("get account: %w", err)
		}
		if account == nil {
			return s.missingBalance(), nil
		}
		s.cacheBalance(ctx, key, account.Balance, account.Version)
		return account.Balance, nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return v.(decimal.Decimal), nil
}

// missingBalance is the balance of an account that does not exist yet: the
// starting balance when mutations auto-create accounts, zero otherwise.
func (s *EconomyServiceImpl) missingBalance() decimal.Decimal {
	if s.settings.AutoCreate {
		return s.settings.StartingBalance
	}
	return decimal.Zero
}

func (s *EconomyServiceImpl) cacheBalance(ctx context.Context, key domain.AccountKey, balance decimal.Decimal, version int64) {
	if err := s.cache.Set(ctx, key, balance, version); err != nil {
		s.log.Warn().Err(err).Str("key", key.String()).Msg("failed to cache balance")
		// A stale entry must not outlive a failed write-through.
		if err := s.cache.Invalidate(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("key", key.String()).Msg("failed to invalidate cached balance")
		}
	}
}

// ==================== Key resolution ====================

func normalizeCurrency(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// resolveCurrency maps a caller supplied currency to its balance namespace.
// It returns false when strict currencies reject an unregistered name.
func (s *EconomyServiceImpl) resolveCurrency(currency string) (string, bool) {
	if !s.settings.MultiCurrency {
		return s.settings.DefaultCurrency, true
	}
	name := normalizeCurrency(currency)
	if name == "" {
		return s.settings.DefaultCurrency, true
	}
	if _, ok := s.currencies[name]; ok {
		return name, true
	}
	return name, !s.settings.StrictCurrencies
}

func (s *EconomyServiceImpl) lookupCurrency(currency string) (economy.Currency, bool) {
	name, _ := s.resolveCurrency(currency)
	c, ok := s.currencies[name]
	return c, ok
}

// resolveWorld collapses every world onto the global account when
// per-world balances are off.
func (s *EconomyServiceImpl) resolveWorld(world string) string {
	if !s.settings.WorldBalances {
		return domain.GlobalWorld
	}
	return world
}

func (s *EconomyServiceImpl) accountKey(player uuid.UUID, world, currency string) (domain.AccountKey, bool) {
	name, ok := s.resolveCurrency(currency)
	return domain.AccountKey{Player: player, World: s.resolveWorld(world), Currency: name}, ok
}

// ==================== No-op collaborators ====================

type nopCache struct{}

func (nopCache) Get(context.Context, domain.AccountKey) (*decimal.Decimal, error)     { return nil, nil }
func (nopCache) Set(context.Context, domain.AccountKey, decimal.Decimal, int64) error { return nil }
func (nopCache) Invalidate(context.Context, domain.AccountKey) error                  { return nil }

type nopMetrics struct{}

func (nopMetrics) ObserveOperation(string, economy.ResponseType, time.Duration) {}
func (nopMetrics) ObserveCache(bool)                                             {}
