package services

import (
	"context"
	"strings"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"
)

const paymentSucceedMessage = "Payment processed successfully"

type PaymentService struct {
	cards  ports.CardRepository
	logger ports.LoggerPort
}

func NewPaymentService(cards ports.CardRepository, logger ports.LoggerPort) *PaymentService {
	return &PaymentService{
		cards:  cards,
		logger: logger,
	}
}

// ProcessPayment validates the request against the stored card and debits the
// amount. The checks run in a fixed order (holder, expiration date, CVV, then
// balance) and the first mismatch is the one reported.
func (s *PaymentService) ProcessPayment(ctx context.Context, req domain.PaymentRequest) (string, error) {
	card, err := s.cards.GetByNumber(ctx, req.CardNumber)
	if err != nil {
		s.logger.Error("Failed to look up card for payment", map[string]interface{}{
			"card_number": req.CardNumber,
			"error":       err.Error(),
		})
		return "", err
	}
	if card == nil {
		return "", domain.ErrCardNotFound
	}

	if !strings.EqualFold(card.Holder, strings.TrimSpace(req.CardHolder)) {
		return "", domain.ErrInvalidCardHolder
	}

	if card.ExpirationDate != req.ExpirationDate {
		return "", domain.ErrInvalidExpirationDate
	}

	if card.Cvv != req.Cvv {
		return "", domain.ErrInvalidCvv
	}

	if card.Balance < req.Amount {
		s.logger.Info("Payment rejected: insufficient funds", map[string]interface{}{
			"card_number": req.CardNumber,
		})
		return "", domain.ErrInsufficientFunds
	}

	if err := s.cards.AdjustBalance(ctx, req.CardNumber, -req.Amount); err != nil {
		s.logger.Error("Failed to debit card for payment", map[string]interface{}{
			"card_number": req.CardNumber,
			"error":       err.Error(),
		})
		return "", err
	}

	return paymentSucceedMessage, nil
}

var _ ports.PaymentService = (*PaymentService)(nil)
