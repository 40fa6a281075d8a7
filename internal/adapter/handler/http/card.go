package http

import (
	"net/http"
	"time"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardService ports.CardService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type CardRequest struct {
	CardNumber         string  `json:"cardNumber" binding:"required,len=16" example:"4242424242424242"`
	CardHolder         string  `json:"cardHolder" binding:"required" example:"John Doe"`
	CardExpirationDate string  `json:"cardExpirationDate" binding:"required" example:"12/29"`
	CardCvv            string  `json:"cardCvv" binding:"required,len=3,number" example:"123"`
	CardBalance        float64 `json:"cardBalance" binding:"omitempty,gt=0" example:"100"`
}

func NewCardHandler(
	cardService ports.CardService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Create a card
// @Description Registers a new credit card with an optional starting balance
// @Tags cards
// @Accept json
// @Produce json
// @Param request body CardRequest true "Card data"
// @Success 201 {object} domain.Card "Card created"
// @Failure 400 {object} errorResponse "Invalid request or business rule failure"
// @Router /miso-stripe/cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create card", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	card := &domain.Card{
		Number:         req.CardNumber,
		Holder:         req.CardHolder,
		ExpirationDate: req.CardExpirationDate,
		Cvv:            req.CardCvv,
		Balance:        req.CardBalance,
	}

	created, err := h.cardService.CreateCard(c.Request.Context(), card)
	if err != nil {
		h.logger.Info("Card creation failed", map[string]interface{}{
			"card_number": req.CardNumber,
			"error":       err.Error(),
		})
		handleServiceError(c, err)
		return
	}

	h.logger.Info("Card created successfully", map[string]interface{}{
		"card_number": created.Number,
	})
	c.JSON(http.StatusCreated, created)
}

// @Summary List cards
// @Description Returns every stored card, unfiltered and unpaginated
// @Tags cards
// @Produce json
// @Success 200 {array} domain.Card "Cards"
// @Failure 500 {object} errorResponse "Unexpected failure"
// @Router /miso-stripe/cards [get]
func (h *CardHandler) GetCards(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	cards, err := h.cardService.GetCards(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list cards", map[string]interface{}{
			"error": err.Error(),
		})
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}
