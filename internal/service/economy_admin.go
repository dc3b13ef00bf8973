package service

import (
	"context"
	"fmt"
	"time"

	"game-economy/internal/core/domain"
	"game-economy/pkg/economy"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ==================== Player accounts ====================

func (s *EconomyServiceImpl) HasAccount(ctx context.Context, player uuid.UUID) bool {
	return s.HasAccountInWorld(ctx, player, domain.GlobalWorld)
}

// HasAccountInWorld reports whether the player holds a balance in any
// currency of world.
func (s *EconomyServiceImpl) HasAccountInWorld(ctx context.Context, player uuid.UUID, world string) bool {
	if !s.IsEnabled() {
		return false
	}
	exists, err := s.accounts.Exists(ctx, player, s.resolveWorld(world))
	if err != nil {
		s.log.Error().Err(err).Str("player", player.String()).Msg("account lookup failed")
		return false
	}
	return exists
}

func (s *EconomyServiceImpl) CreatePlayerAccount(ctx context.Context, player uuid.UUID) bool {
	return s.CreatePlayerAccountInWorld(ctx, player, domain.GlobalWorld)
}

// CreatePlayerAccountInWorld opens the player's default currency balance
// holding the starting balance.
func (s *EconomyServiceImpl) CreatePlayerAccountInWorld(ctx context.Context, player uuid.UUID, world string) bool {
	if s.HasAccountInWorld(ctx, player, world) || !s.IsEnabled() {
		return false
	}
	key, _ := s.accountKey(player, world, s.settings.DefaultCurrency)

	unlock := s.locks.Lock(key.String())
	defer unlock()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("begin tx failed")
		return false
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account := domain.NewPlayerAccount(key, s.settings.StartingBalance, s.now())
	created, err := s.accounts.Create(ctx, dbTx, account)
	if err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("create account failed")
		return false
	}
	if !created {
		return false
	}
	if err := dbTx.Commit(ctx); err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("commit tx failed")
		return false
	}

	s.cacheBalance(ctx, key, account.Balance, account.Version)
	s.log.Info().Str("key", key.String()).Msg("player account created")
	return true
}

// createAccount inserts key with the starting balance inside dbTx. If another
// writer inserted it first, the existing row is locked and returned.
func (s *EconomyServiceImpl) createAccount(ctx context.Context, dbTx pgx.Tx, key domain.AccountKey) (*domain.PlayerAccount, error) {
	account := domain.NewPlayerAccount(key, s.settings.StartingBalance, s.now())
	created, err := s.accounts.Create(ctx, dbTx, account)
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}
	if created {
		return account, nil
	}

	account, err = s.accounts.GetForUpdate(ctx, dbTx, key)
	if err != nil {
		return nil, fmt.Errorf("lock account after conflict: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %s missing after conflicting insert", key)
	}
	return account, nil
}

// ==================== Banks ====================

func (s *EconomyServiceImpl) CreateBank(ctx context.Context, name string, owner uuid.UUID) economy.Response {
	start := time.Now()
	if !s.settings.Banks {
		return s.observe(opCreateBank, start, economy.NewNotImplemented(economy.MsgBanksNotSupported))
	}
	if !s.IsEnabled() {
		return s.observe(opCreateBank, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgBackendNotInitialized))
	}
	if !domain.ValidBankName(name) {
		return s.observe(opCreateBank, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgInvalidBankName))
	}

	created, err := s.banks.Create(ctx, &domain.Bank{Name: name, Owner: owner, CreatedAt: s.now()})
	if err != nil {
		s.log.Error().Err(err).Str("bank", name).Msg("create bank failed")
		return s.observe(opCreateBank, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgStorageFault))
	}
	if !created {
		return s.observe(opCreateBank, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgBankExists))
	}

	s.log.Info().Str("bank", name).Str("owner", owner.String()).Msg("bank created")
	return s.observe(opCreateBank, start, economy.NewSuccess(decimal.Zero, decimal.Zero))
}

func (s *EconomyServiceImpl) DeleteBank(ctx context.Context, name string) economy.Response {
	start := time.Now()
	if !s.settings.Banks {
		return s.observe(opDeleteBank, start, economy.NewNotImplemented(economy.MsgBanksNotSupported))
	}
	if !s.IsEnabled() {
		return s.observe(opDeleteBank, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgBackendNotInitialized))
	}

	deleted, err := s.banks.Delete(ctx, name)
	if err != nil {
		s.log.Error().Err(err).Str("bank", name).Msg("delete bank failed")
		return s.observe(opDeleteBank, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgStorageFault))
	}
	if !deleted {
		return s.observe(opDeleteBank, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgBankNotFound))
	}

	s.log.Info().Str("bank", name).Msg("bank deleted")
	return s.observe(opDeleteBank, start, economy.NewSuccess(decimal.Zero, decimal.Zero))
}

func (s *EconomyServiceImpl) IsBankOwner(ctx context.Context, name string, player uuid.UUID) economy.Response {
	start := time.Now()
	if !s.settings.Banks {
		return s.observe(opIsBankOwner, start, economy.NewNotImplemented(economy.MsgBanksNotSupported))
	}
	if !s.IsEnabled() {
		return s.observe(opIsBankOwner, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgBackendNotInitialized))
	}

	bank, err := s.banks.Get(ctx, name)
	if err != nil {
		s.log.Error().Err(err).Str("bank", name).Msg("bank lookup failed")
		return s.observe(opIsBankOwner, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgStorageFault))
	}
	if bank == nil {
		return s.observe(opIsBankOwner, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgBankNotFound))
	}
	if bank.Owner != player {
		return s.observe(opIsBankOwner, start, economy.NewFailure(decimal.Zero, decimal.Zero, economy.MsgNotBankOwner))
	}
	return s.observe(opIsBankOwner, start, economy.NewSuccess(decimal.Zero, decimal.Zero))
}

// Banks returns bank names in ascending order.
func (s *EconomyServiceImpl) Banks(ctx context.Context) []string {
	if !s.settings.Banks || !s.IsEnabled() {
		return []string{}
	}
	banks, err := s.banks.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list banks failed")
		return []string{}
	}
	names := make([]string, 0, len(banks))
	for _, b := range banks {
		names = append(names, b.Name)
	}
	return names
}
