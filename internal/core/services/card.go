package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type CardService struct {
	cards    ports.CardRepository
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewCardService(cards ports.CardRepository, logger ports.LoggerPort, validate *validator.Validate) *CardService {
	return &CardService{
		cards:    cards,
		logger:   logger,
		validate: validate,
	}
}

func (s *CardService) CreateCard(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if err := s.validate.Struct(card); err != nil {
		s.logger.Error("Card validation failed", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateCard",
		})
		return nil, fmt.Errorf("validation failed: %s", err.Error())
	}

	existing, err := s.cards.GetByNumber(ctx, card.Number)
	if err != nil {
		s.logger.Error("Failed to check card existence", map[string]interface{}{
			"card_number": card.Number,
			"error":       err.Error(),
		})
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCardAlreadyExists
	}

	expired, err := expirationInPast(card.ExpirationDate, time.Now())
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, domain.ErrCardExpired
	}

	created, err := s.cards.Create(ctx, card)
	if err != nil {
		s.logger.Error("Failed to create card", map[string]interface{}{
			"card_number": card.Number,
			"error":       err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Card created", map[string]interface{}{
		"card_number": created.Number,
	})
	return created, nil
}

func (s *CardService) GetCards(ctx context.Context) ([]domain.Card, error) {
	return s.cards.List(ctx)
}

var expirationPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// expirationInPast compares an MM/YY date against now using truncated 2-digit
// years, so dates on the far side of a century boundary compare incorrectly.
// Known limitation kept for contract compatibility.
func expirationInPast(expiration string, now time.Time) (bool, error) {
	if !expirationPattern.MatchString(expiration) {
		return false, domain.ErrInvalidExpirationDate
	}

	parts := strings.SplitN(expiration, "/", 2)
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	return year < currentYear || (year == currentYear && month < currentMonth), nil
}

var _ ports.CardService = (*CardService)(nil)
