package http

import (
	"net/http"
	"time"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService ports.PaymentService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type PaymentRequest struct {
	CardNumber         string  `json:"cardNumber" binding:"required,len=16" example:"4242424242424242"`
	CardHolder         string  `json:"cardHolder" binding:"required" example:"John Doe"`
	CardExpirationDate string  `json:"cardExpirationDate" binding:"required" example:"12/29"`
	CardCvv            string  `json:"cardCvv" binding:"required,len=3,number" example:"123"`
	Amount             float64 `json:"amount" binding:"required,gt=0" example:"25.5"`
}

func NewPaymentHandler(
	paymentService ports.PaymentService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Process a payment
// @Description Validates the card credentials and debits the amount
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Payment data"
// @Success 200 {object} messageResponse "Payment confirmation"
// @Failure 400 {object} errorResponse "Invalid request or failed card check"
// @Router /miso-stripe/payments [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in payment", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.paymentService.ProcessPayment(c.Request.Context(), domain.PaymentRequest{
		CardNumber:     req.CardNumber,
		CardHolder:     req.CardHolder,
		ExpirationDate: req.CardExpirationDate,
		Cvv:            req.CardCvv,
		Amount:         req.Amount,
	})
	if err != nil {
		h.logger.Info("Payment failed", map[string]interface{}{
			"card_number": req.CardNumber,
			"error":       err.Error(),
		})
		handleServiceError(c, err)
		return
	}

	h.logger.Info("Payment processed", map[string]interface{}{
		"card_number": req.CardNumber,
	})
	newMessageResponse(c, http.StatusOK, message)
}
