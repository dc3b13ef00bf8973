package handler

import (
	"strings"

	"game-economy/internal/adapter/http/dto"
	"game-economy/internal/core/ports"
	"game-economy/pkg/apperror"
	"game-economy/pkg/economy"
	"game-economy/pkg/response"

	"github.com/gin-gonic/gin"
)

// EconomyHandler serves backend capabilities and currency metadata.
type EconomyHandler struct {
	svc ports.EconomyService
}

// NewEconomyHandler creates a new EconomyHandler.
func NewEconomyHandler(svc ports.EconomyService) *EconomyHandler {
	return &EconomyHandler{svc: svc}
}

// Info handles GET /api/v1/economy.
func (h *EconomyHandler) Info(c *gin.Context) {
	response.OK(c, dto.EconomyInfoResponse{
		Name:            h.svc.Name(),
		Enabled:         h.svc.IsEnabled(),
		Banks:           h.svc.HasBankSupport(),
		Worlds:          h.svc.HasWorldSupport(),
		MultiCurrency:   h.svc.HasMultiCurrencySupport(),
		DefaultCurrency: h.svc.DefaultCurrency(),
	})
}

// ListCurrencies handles GET /api/v1/currencies.
func (h *EconomyHandler) ListCurrencies(c *gin.Context) {
	response.OK(c, dto.CurrencyListResponse{
		Default:    h.svc.DefaultCurrency(),
		Currencies: h.svc.Currencies(),
	})
}

// GetCurrency handles GET /api/v1/currencies/:currency.
func (h *EconomyHandler) GetCurrency(c *gin.Context) {
	cur, ok := h.lookup(c.Param("currency"))
	if !ok {
		response.Error(c, apperror.ErrUnknownCurrency(c.Param("currency")))
		return
	}
	response.OK(c, cur)
}

// Format handles GET /api/v1/currencies/:currency/format?amount=.
// Currencies outside the catalog are still rendered, without a symbol.
func (h *EconomyHandler) Format(c *gin.Context) {
	var q dto.FormatQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}
	dto.SanitizeStruct(&q)

	currency := c.Param("currency")
	amount := dto.ParseAmount(q.Amount)
	response.OK(c, dto.FormatResponse{
		Currency:  currency,
		Amount:    amount,
		Formatted: h.svc.Format(amount, currency),
	})
}

func (h *EconomyHandler) lookup(name string) (economy.Currency, bool) {
	name = strings.TrimSpace(name)
	for _, cur := range h.svc.Currencies() {
		if strings.EqualFold(cur.Name, name) {
			return cur, true
		}
	}
	return economy.Currency{}, false
}
