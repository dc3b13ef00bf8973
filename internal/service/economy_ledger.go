package service

import (
	"context"
	"time"

	"game-economy/internal/core/domain"
	"game-economy/pkg/economy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	opWithdrawPlayer = "withdraw_player"
	opDepositPlayer  = "deposit_player"
	opBankBalance    = "bank_balance"
	opBankHas        = "bank_has"
	opBankWithdraw   = "bank_withdraw"
	opBankDeposit    = "bank_deposit"
	opCreateBank     = "create_bank"
	opDeleteBank     = "delete_bank"
	opIsBankOwner    = "is_bank_owner"
)

// observe records the outcome of op started at start and returns resp.
func (s *EconomyServiceImpl) observe(op string, start time.Time, resp economy.Response) economy.Response {
	s.metrics.ObserveOperation(op, resp.Type, time.Since(start))
	return resp
}

// ==================== Player ledger ====================

func (s *EconomyServiceImpl) WithdrawPlayer(ctx context.Context, player uuid.UUID, amount decimal.Decimal, currency string) economy.Response {
	return s.WithdrawPlayerInWorld(ctx, player, domain.GlobalWorld, amount, currency)
}

func (s *EconomyServiceImpl) WithdrawPlayerInWorld(ctx context.Context, player uuid.UUID, world string, amount decimal.Decimal, currency string) economy.Response {
	start := time.Now()
	if amount.IsNegative() {
		return s.observe(opWithdrawPlayer, start, economy.NewFailure(amount,
			s.GetBalanceInWorld(ctx, player, world, currency), economy.MsgNegativeWithdraw))
	}
	return s.observe(opWithdrawPlayer, start, s.changePlayerBalance(ctx, player, world, currency, amount, true))
}

func (s *EconomyServiceImpl) DepositPlayer(ctx context.Context, player uuid.UUID, amount decimal.Decimal, currency string) economy.Response {
	return s.DepositPlayerInWorld(ctx, player, domain.GlobalWorld, amount, currency)
}

func (s *EconomyServiceImpl) DepositPlayerInWorld(ctx context.Context, player uuid.UUID, world string, amount decimal.Decimal, currency string) economy.Response {
	start := time.Now()
	if amount.IsNegative() {
		return s.observe(opDepositPlayer, start, economy.NewFailure(amount,
			s.GetBalanceInWorld(ctx, player, world, currency), economy.MsgNegativeDeposit))
	}
	return s.observe(opDepositPlayer, start, s.changePlayerBalance(ctx, player, world, currency, amount, false))
}

// changePlayerBalance applies one debit or credit as a single atomic step.
// On any failure the transaction is rolled back and the balance is unchanged.
func (s *EconomyServiceImpl) changePlayerBalance(
	ctx context.Context,
	player uuid.UUID,
	world, currency string,
	amount decimal.Decimal,
	withdraw bool,
) economy.Response {
	if !s.IsEnabled() {
		return economy.NewFailure(amount, decimal.Zero, economy.MsgBackendNotInitialized)
	}
	key, ok := s.accountKey(player, world, currency)
	if !ok {
		return economy.NewFailure(amount, decimal.Zero, economy.MsgUnknownCurrency)
	}

	unlock := s.locks.Lock(key.String())
	defer unlock()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("begin tx failed")
		return economy.NewFailure(amount, decimal.Zero, economy.MsgStorageFault)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accounts.GetForUpdate(ctx, dbTx, key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("lock account failed")
		return economy.NewFailure(amount, decimal.Zero, economy.MsgStorageFault)
	}

	if account == nil {
		if !s.settings.AutoCreate {
			return economy.NewFailure(amount, decimal.Zero, economy.MsgAccountNotFound)
		}
		account, err = s.createAccount(ctx, dbTx, key)
		if err != nil {
			s.log.Error().Err(err).Str("key", key.String()).Msg("create account failed")
			return economy.NewFailure(amount, decimal.Zero, economy.MsgStorageFault)
		}
	}

	balance := account.Balance
	var newBalance decimal.Decimal
	if withdraw {
		newBalance = balance.Sub(amount)
		if newBalance.IsNegative() && !s.settings.AllowOverdraft {
			return economy.NewFailure(amount, balance, economy.MsgInsufficientFunds)
		}
	} else {
		newBalance = balance.Add(amount)
	}

	if err := s.accounts.UpdateBalance(ctx, dbTx, key, newBalance); err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("update balance failed")
		return economy.NewFailure(amount, balance, economy.MsgStorageFault)
	}
	if err := dbTx.Commit(ctx); err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("commit tx failed")
		return economy.NewFailure(amount, balance, economy.MsgStorageFault)
	}

	s.cacheBalance(ctx, key, newBalance, account.Version+1)

	s.log.Debug().
		Str("key", key.String()).
		Bool("withdraw", withdraw).
		Str("amount", amount.String()).
		Str("balance", newBalance.String()).
		Msg("player balance changed")

	return economy.NewSuccess(amount, newBalance)
}

// ==================== Bank ledger ====================

func (s *EconomyServiceImpl) BankBalance(ctx context.Context, name, currency string) economy.Response {
	start := time.Now()
	balance, resp, ok := s.readBank(ctx, name, currency, decimal.Zero)
	if !ok {
		return s.observe(opBankBalance, start, resp)
	}
	return s.observe(opBankBalance, start, economy.NewSuccess(balance, balance))
}

func (s *EconomyServiceImpl) BankHas(ctx context.Context, name string, amount decimal.Decimal, currency string) economy.Response {
	start := time.Now()
	if !s.settings.Banks {
		return s.observe(opBankHas, start, economy.NewNotImplemented(economy.MsgBanksNotSupported))
	}
	if amount.IsNegative() {
		return s.observe(opBankHas, start, economy.NewFailure(amount, decimal.Zero, economy.MsgNegativeAmount))
	}
	balance, resp, ok := s.readBank(ctx, name, currency, amount)
	if !ok {
		return s.observe(opBankHas, start, resp)
	}
	if balance.LessThan(amount) {
		return s.observe(opBankHas, start, economy.NewFailure(amount, balance, economy.MsgInsufficientFunds))
	}
	return s.observe(opBankHas, start, economy.NewSuccess(amount, balance))
}

func (s *EconomyServiceImpl) BankWithdraw(ctx context.Context, name string, amount decimal.Decimal, currency string) economy.Response {
	start := time.Now()
	if s.settings.Banks && amount.IsNegative() {
		return s.observe(opBankWithdraw, start, economy.NewFailure(amount, decimal.Zero, economy.MsgNegativeWithdraw))
	}
	return s.observe(opBankWithdraw, start, s.changeBankBalance(ctx, name, currency, amount, true))
}

func (s *EconomyServiceImpl) BankDeposit(ctx context.Context, name string, amount decimal.Decimal, currency string) economy.Response {
	start := time.Now()
	if s.settings.Banks && amount.IsNegative() {
		return s.observe(opBankDeposit, start, economy.NewFailure(amount, decimal.Zero, economy.MsgNegativeDeposit))
	}
	return s.observe(opBankDeposit, start, s.changeBankBalance(ctx, name, currency, amount, false))
}

// readBank returns the bank's balance in currency. When ok is false, resp
// holds the response to return instead.
func (s *EconomyServiceImpl) readBank(ctx context.Context, name, currency string, amount decimal.Decimal) (balance decimal.Decimal, resp economy.Response, ok bool) {
	if !s.settings.Banks {
		return decimal.Zero, economy.NewNotImplemented(economy.MsgBanksNotSupported), false
	}
	if !s.IsEnabled() {
		return decimal.Zero, economy.NewFailure(amount, decimal.Zero, economy.MsgBackendNotInitialized), false
	}
	cur, known := s.resolveCurrency(currency)
	if !known {
		return decimal.Zero, economy.NewFailure(amount, decimal.Zero, economy.MsgUnknownCurrency), false
	}

	bank, err := s.banks.Get(ctx, name)
	if err != nil {
		s.log.Error().Err(err).Str("bank", name).Msg("bank lookup failed")
		return decimal.Zero, economy.NewFailure(amount, decimal.Zero, economy.MsgStorageFault), false
	}
	if bank == nil {
		return decimal.Zero, economy.NewFailure(amount, decimal.Zero, economy.MsgBankNotFound), false
	}

	bb, err := s.banks.GetBalance(ctx, domain.BankKey{Name: bank.Name, Currency: cur})
	if err != nil {
		s.log.Error().Err(err).Str("bank", name).Msg("bank balance lookup failed")
		return decimal.Zero, economy.NewFailure(amount, decimal.Zero, economy.MsgStorageFault), false
	}
	if bb == nil {
		return decimal.Zero, economy.Response{}, true
	}
	return bb.Balance, economy.Response{}, true
}

func (s *EconomyServiceImpl) changeBankBalance(ctx context.Context, name, currency string, amount decimal.Decimal, withdraw bool) economy.Response {
	if !s.settings.Banks {
		return economy.NewNotImplemented(economy.MsgBanksNotSupported)
	}
	if !s.IsEnabled() {
		return economy.NewFailure(amount, decimal.Zero, economy.MsgBackendNotInitialized)
	}
	cur, ok := s.resolveCurrency(currency)
	if !ok {
		return economy.NewFailure(amount, decimal.Zero, economy.MsgUnknownCurrency)
	}
	key := domain.BankKey{Name: name, Currency: cur}

	unlock := s.locks.Lock(key.String())
	defer unlock()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("begin tx failed")
		return economy.NewFailure(amount, decimal.Zero, economy.MsgStorageFault)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	bank, err := s.banks.GetForUpdate(ctx, dbTx, name)
	if err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("lock bank failed")
		return economy.NewFailure(amount, decimal.Zero, economy.MsgStorageFault)
	}
	if bank == nil {
		return economy.NewFailure(amount, decimal.Zero, economy.MsgBankNotFound)
	}

	balance := decimal.Zero
	bb, err := s.banks.GetBalanceForUpdate(ctx, dbTx, key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("lock bank balance failed")
		return economy.NewFailure(amount, decimal.Zero, economy.MsgStorageFault)
	}
	if bb != nil {
		balance = bb.Balance
	}

	var newBalance decimal.Decimal
	if withdraw {
		newBalance = balance.Sub(amount)
		if newBalance.IsNegative() && !s.settings.AllowOverdraft {
			return economy.NewFailure(amount, balance, economy.MsgInsufficientFunds)
		}
	} else {
		newBalance = balance.Add(amount)
	}

	if err := s.banks.UpsertBalance(ctx, dbTx, key, newBalance); err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("update bank balance failed")
		return economy.NewFailure(amount, balance, economy.MsgStorageFault)
	}
	if err := dbTx.Commit(ctx); err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("commit tx failed")
		return economy.NewFailure(amount, balance, economy.MsgStorageFault)
	}

	s.log.Debug().
		Str("key", key.String()).
		Bool("withdraw", withdraw).
		Str("amount", amount.String()).
		Str("balance", newBalance.String()).
		Msg("bank balance changed")

	return economy.NewSuccess(amount, newBalance)
}
