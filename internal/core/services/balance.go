package services

import (
	"context"
	"fmt"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"
)

type BalanceService struct {
	cards  ports.CardRepository
	logger ports.LoggerPort
}

func NewBalanceService(cards ports.CardRepository, logger ports.LoggerPort) *BalanceService {
	return &BalanceService{
		cards:  cards,
		logger: logger,
	}
}

func (s *BalanceService) Deposit(ctx context.Context, cardNumber string, amount float64) (string, error) {
	card, err := s.cards.GetByNumber(ctx, cardNumber)
	if err != nil {
		s.logger.Error("Failed to look up card for deposit", map[string]interface{}{
			"card_number": cardNumber,
			"error":       err.Error(),
		})
		return "", err
	}
	if card == nil {
		return "", domain.ErrCardNotFound
	}

	if err := s.cards.AdjustBalance(ctx, cardNumber, amount); err != nil {
		s.logger.Error("Failed to credit card balance", map[string]interface{}{
			"card_number": cardNumber,
			"error":       err.Error(),
		})
		return "", err
	}

	return fmt.Sprintf("Deposit of $%v for card %s succeed", amount, cardNumber), nil
}

// Withdraw debits amount from the card. The balance check happens before the
// debit, so a withdrawal can never drive the stored balance negative.
func (s *BalanceService) Withdraw(ctx context.Context, cardNumber string, amount float64) (string, error) {
	card, err := s.cards.GetByNumber(ctx, cardNumber)
	if err != nil {
		s.logger.Error("Failed to look up card for withdraw", map[string]interface{}{
			"card_number": cardNumber,
			"error":       err.Error(),
		})
		return "", err
	}
	if card == nil {
		return "", domain.ErrCardNotFound
	}

	if card.Balance < amount {
		s.logger.Info("Withdraw rejected: insufficient funds", map[string]interface{}{
			"card_number": cardNumber,
		})
		return "", domain.ErrInsufficientFunds
	}

	if err := s.cards.AdjustBalance(ctx, cardNumber, -amount); err != nil {
		s.logger.Error("Failed to debit card balance", map[string]interface{}{
			"card_number": cardNumber,
			"error":       err.Error(),
		})
		return "", err
	}

	return fmt.Sprintf("Withdraw of $%v for card %s succeed", amount, cardNumber), nil
}

var _ ports.BalanceService = (*BalanceService)(nil)
