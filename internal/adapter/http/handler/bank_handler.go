package handler

import (
	"context"

	"game-economy/internal/adapter/http/dto"
	"game-economy/internal/core/ports"
	"game-economy/pkg/apperror"
	"game-economy/pkg/economy"
	"game-economy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankHandler serves bank administration and the bank ledger.
type BankHandler struct {
	svc ports.EconomyService
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(svc ports.EconomyService) *BankHandler {
	return &BankHandler{svc: svc}
}

// List handles GET /api/v1/banks.
func (h *BankHandler) List(c *gin.Context) {
	response.OK(c, dto.BankListResponse{Banks: h.svc.Banks(c.Request.Context())})
}

// Create handles POST /api/v1/banks.
func (h *BankHandler) Create(c *gin.Context) {
	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	response.Economy(c, h.svc.CreateBank(c.Request.Context(), req.Name, uuid.MustParse(req.Owner)))
}

// Delete handles DELETE /api/v1/banks/:name.
func (h *BankHandler) Delete(c *gin.Context) {
	response.Economy(c, h.svc.DeleteBank(c.Request.Context(), c.Param("name")))
}

// IsOwner handles GET /api/v1/banks/:name/owner/:player.
func (h *BankHandler) IsOwner(c *gin.Context) {
	player, ok := playerParam(c)
	if !ok {
		return
	}
	response.Economy(c, h.svc.IsBankOwner(c.Request.Context(), c.Param("name"), player))
}

// Balance handles GET /api/v1/banks/:name/balance.
func (h *BankHandler) Balance(c *gin.Context) {
	var q dto.BankBalanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&q)

	response.Economy(c, h.svc.BankBalance(c.Request.Context(), c.Param("name"), q.Currency))
}

// Has handles GET /api/v1/banks/:name/has.
func (h *BankHandler) Has(c *gin.Context) {
	var q dto.BankHasQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&q)

	response.Economy(c, h.svc.BankHas(c.Request.Context(), c.Param("name"), dto.ParseAmount(q.Amount), q.Currency))
}

// Withdraw handles POST /api/v1/banks/:name/withdraw.
func (h *BankHandler) Withdraw(c *gin.Context) {
	h.mutate(c, h.svc.BankWithdraw)
}

// Deposit handles POST /api/v1/banks/:name/deposit.
func (h *BankHandler) Deposit(c *gin.Context) {
	h.mutate(c, h.svc.BankDeposit)
}

type bankOp func(ctx context.Context, name string, amount decimal.Decimal, currency string) economy.Response

func (h *BankHandler) mutate(c *gin.Context, op bankOp) {
	var req dto.BankAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	response.Economy(c, op(c.Request.Context(), c.Param("name"), dto.ParseAmount(req.Amount), req.Currency))
}
