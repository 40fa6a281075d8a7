package http

import (
	"net/http"
	"time"

	"github.com/sperez-mk/miso-backend/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	balanceService ports.BalanceService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type BalanceRequest struct {
	CardNumber string  `json:"cardNumber" binding:"required,len=16" example:"4242424242424242"`
	Amount     float64 `json:"amount" binding:"required,gt=0" example:"50"`
}

func NewBalanceHandler(
	balanceService ports.BalanceService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Deposit funds
// @Description Credits an amount to a card balance
// @Tags balances
// @Accept json
// @Produce json
// @Param request body BalanceRequest true "Deposit data"
// @Success 200 {object} messageResponse "Deposit confirmation"
// @Failure 400 {object} errorResponse "Invalid request or card not found"
// @Router /miso-stripe/balances [post]
func (h *BalanceHandler) Deposit(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in deposit", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.balanceService.Deposit(c.Request.Context(), req.CardNumber, req.Amount)
	if err != nil {
		h.logger.Info("Deposit failed", map[string]interface{}{
			"card_number": req.CardNumber,
			"error":       err.Error(),
		})
		handleServiceError(c, err)
		return
	}

	newMessageResponse(c, http.StatusOK, message)
}

// @Summary Withdraw funds
// @Description Debits an amount from a card balance; never drives it negative
// @Tags balances
// @Accept json
// @Produce json
// @Param request body BalanceRequest true "Withdraw data"
// @Success 200 {object} messageResponse "Withdraw confirmation"
// @Failure 400 {object} errorResponse "Invalid request, card not found or insufficient funds"
// @Router /miso-stripe/balances [delete]
func (h *BalanceHandler) Withdraw(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in withdraw", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.balanceService.Withdraw(c.Request.Context(), req.CardNumber, req.Amount)
	if err != nil {
		h.logger.Info("Withdraw failed", map[string]interface{}{
			"card_number": req.CardNumber,
			"error":       err.Error(),
		})
		handleServiceError(c, err)
		return
	}

	newMessageResponse(c, http.StatusOK, message)
}
