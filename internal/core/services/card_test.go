package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sperez-mk/miso-backend/internal/adapter/logger"
	"github.com/sperez-mk/miso-backend/internal/adapter/memory"
	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCardService(repo *memory.CardRepository) *services.CardService {
	return services.NewCardService(repo, logger.NewLoggerAdapter("local"), validator.New())
}

func validCard() *domain.Card {
	return &domain.Card{
		Number:         testCardNumber,
		Holder:         "John Doe",
		ExpirationDate: futureExpiration(),
		Cvv:            "123",
		Balance:        100,
	}
}

func TestCreateCard_Success(t *testing.T) {
	repo := memory.NewCardRepository()
	svc := newCardService(repo)

	created, err := svc.CreateCard(context.Background(), validCard())

	require.NoError(t, err)
	assert.Equal(t, testCardNumber, created.Number)
	assert.Equal(t, float64(100), created.Balance)
}

func TestCreateCard_DefaultBalanceIsZero(t *testing.T) {
	repo := memory.NewCardRepository()
	svc := newCardService(repo)

	card := validCard()
	card.Balance = 0

	created, err := svc.CreateCard(context.Background(), card)

	require.NoError(t, err)
	assert.Equal(t, float64(0), created.Balance)
}

func TestCreateCard_Duplicate(t *testing.T) {
	repo := memory.NewCardRepository()
	svc := newCardService(repo)

	_, err := svc.CreateCard(context.Background(), validCard())
	require.NoError(t, err)

	_, err = svc.CreateCard(context.Background(), validCard())
	assert.ErrorIs(t, err, domain.ErrCardAlreadyExists)

	cards, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cards, 1, "failed create must not touch the store")
}

func TestCreateCard_Expired(t *testing.T) {
	repo := memory.NewCardRepository()
	svc := newCardService(repo)

	past := time.Now().AddDate(0, -1, 0)
	card := validCard()
	card.ExpirationDate = fmt.Sprintf("%02d/%02d", int(past.Month()), past.Year()%100)

	_, err := svc.CreateCard(context.Background(), card)
	assert.ErrorIs(t, err, domain.ErrCardExpired)

	cards, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards, "expired card must not be created")
}

func TestCreateCard_CurrentMonthIsNotExpired(t *testing.T) {
	repo := memory.NewCardRepository()
	svc := newCardService(repo)

	now := time.Now()
	card := validCard()
	card.ExpirationDate = fmt.Sprintf("%02d/%02d", int(now.Month()), now.Year()%100)

	_, err := svc.CreateCard(context.Background(), card)

	assert.NoError(t, err, "expiration is strictly-before, the current month is still valid")
}

func TestCreateCard_MalformedExpirationDate(t *testing.T) {
	repo := memory.NewCardRepository()
	svc := newCardService(repo)

	tests := []string{"12-29", "13/29", "00/29", "1/29", "12/2029", "garbage"}
	for _, expiration := range tests {
		card := validCard()
		card.ExpirationDate = expiration

		_, err := svc.CreateCard(context.Background(), card)
		assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate, "expiration %q must be rejected", expiration)
	}

	cards, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestCreateCard_ValidationFailure(t *testing.T) {
	repo := memory.NewCardRepository()
	svc := newCardService(repo)

	card := validCard()
	card.Number = "123"

	_, err := svc.CreateCard(context.Background(), card)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetCards_FullSnapshot(t *testing.T) {
	repo := memory.NewCardRepository()
	svc := newCardService(repo)

	first := validCard()
	second := validCard()
	second.Number = "4000000000000002"

	_, err := svc.CreateCard(context.Background(), first)
	require.NoError(t, err)
	_, err = svc.CreateCard(context.Background(), second)
	require.NoError(t, err)

	cards, err := svc.GetCards(context.Background())

	require.NoError(t, err)
	assert.Len(t, cards, 2)
}
