package handler

import (
	"context"
	"errors"

	"game-economy/internal/adapter/http/dto"
	"game-economy/internal/core/ports"
	"game-economy/pkg/apperror"
	"game-economy/pkg/economy"
	"game-economy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlayerHandler serves player balances and the player ledger.
type PlayerHandler struct {
	svc ports.EconomyService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(svc ports.EconomyService) *PlayerHandler {
	return &PlayerHandler{svc: svc}
}

func playerParam(c *gin.Context) (uuid.UUID, bool) {
	player, err := uuid.Parse(c.Param("player"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidPlayer())
		return uuid.Nil, false
	}
	return player, true
}

// GetBalance handles GET /api/v1/players/:player/balance.
func (h *PlayerHandler) GetBalance(c *gin.Context) {
	player, ok := playerParam(c)
	if !ok {
		return
	}
	var q dto.BalanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&q)

	ctx := c.Request.Context()
	var balance decimal.Decimal
	if q.World == "" {
		balance = h.svc.GetBalance(ctx, player, q.Currency)
	} else {
		balance = h.svc.GetBalanceInWorld(ctx, player, q.World, q.Currency)
	}

	response.OK(c, dto.BalanceResponse{
		Player:    player.String(),
		World:     q.World,
		Currency:  currencyOrDefault(h.svc, q.Currency),
		Balance:   balance,
		Formatted: h.svc.Format(balance, q.Currency),
	})
}

// Has handles GET /api/v1/players/:player/has.
func (h *PlayerHandler) Has(c *gin.Context) {
	player, ok := playerParam(c)
	if !ok {
		return
	}
	var q dto.HasQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&q)

	ctx := c.Request.Context()
	amount := dto.ParseAmount(q.Amount)
	var has bool
	if q.World == "" {
		has = h.svc.Has(ctx, player, amount, q.Currency)
	} else {
		has = h.svc.HasInWorld(ctx, player, q.World, amount, q.Currency)
	}

	response.OK(c, dto.HasResponse{
		Player:   player.String(),
		World:    q.World,
		Currency: currencyOrDefault(h.svc, q.Currency),
		Amount:   amount,
		Has:      has,
	})
}

// GetAccount handles GET /api/v1/players/:player/accounts.
func (h *PlayerHandler) GetAccount(c *gin.Context) {
	player, ok := playerParam(c)
	if !ok {
		return
	}
	var q dto.BalanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&q)

	ctx := c.Request.Context()
	var exists bool
	if q.World == "" {
		exists = h.svc.HasAccount(ctx, player)
	} else {
		exists = h.svc.HasAccountInWorld(ctx, player, q.World)
	}

	response.OK(c, dto.AccountResponse{Player: player.String(), World: q.World, Exists: exists})
}

// CreateAccount handles POST /api/v1/players/:player/accounts.
func (h *PlayerHandler) CreateAccount(c *gin.Context) {
	player, ok := playerParam(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	dto.SanitizeStruct(&req)

	ctx := c.Request.Context()
	var created bool
	if req.World == "" {
		created = h.svc.CreatePlayerAccount(ctx, player)
	} else {
		created = h.svc.CreatePlayerAccountInWorld(ctx, player, req.World)
	}
	if created {
		response.Created(c, dto.AccountResponse{Player: player.String(), World: req.World, Exists: true, Created: true})
		return
	}

	var exists bool
	if req.World == "" {
		exists = h.svc.HasAccount(ctx, player)
	} else {
		exists = h.svc.HasAccountInWorld(ctx, player, req.World)
	}
	if exists {
		response.Error(c, apperror.ErrAccountExists())
		return
	}
	response.Error(c, apperror.ErrDatabaseError(errors.New("account could not be created")))
}

// Withdraw handles POST /api/v1/players/:player/withdraw.
func (h *PlayerHandler) Withdraw(c *gin.Context) {
	h.mutate(c, h.svc.WithdrawPlayer, h.svc.WithdrawPlayerInWorld)
}

// Deposit handles POST /api/v1/players/:player/deposit.
func (h *PlayerHandler) Deposit(c *gin.Context) {
	h.mutate(c, h.svc.DepositPlayer, h.svc.DepositPlayerInWorld)
}

type (
	playerOp      func(ctx context.Context, player uuid.UUID, amount decimal.Decimal, currency string) economy.Response
	playerWorldOp func(ctx context.Context, player uuid.UUID, world string, amount decimal.Decimal, currency string) economy.Response
)

func (h *PlayerHandler) mutate(c *gin.Context, global playerOp, inWorld playerWorldOp) {
	player, ok := playerParam(c)
	if !ok {
		return
	}
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	ctx := c.Request.Context()
	amount := dto.ParseAmount(req.Amount)
	var resp economy.Response
	if req.World == "" {
		resp = global(ctx, player, amount, req.Currency)
	} else {
		resp = inWorld(ctx, player, req.World, amount, req.Currency)
	}
	response.Economy(c, resp)
}

// currencyOrDefault names the currency a request resolved to.
func currencyOrDefault(svc ports.EconomyService, currency string) string {
	if currency == "" {
		return svc.DefaultCurrency()
	}
	return currency
}
