package ports

import (
	"context"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
)

// CardRepository is the ledger store for cards. GetByNumber returns (nil, nil)
// when the card does not exist. AdjustBalance applies a signed delta to the
// stored balance as a single atomic update; it is the only primitive the store
// guarantees race-free.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	GetByNumber(ctx context.Context, number string) (*domain.Card, error)
	List(ctx context.Context) ([]domain.Card, error)
	AdjustBalance(ctx context.Context, number string, delta float64) error
}

type CardService interface {
	CreateCard(ctx context.Context, card *domain.Card) (*domain.Card, error)
	GetCards(ctx context.Context) ([]domain.Card, error)
}

type BalanceService interface {
	Deposit(ctx context.Context, cardNumber string, amount float64) (string, error)
	Withdraw(ctx context.Context, cardNumber string, amount float64) (string, error)
}

type PaymentService interface {
	ProcessPayment(ctx context.Context, req domain.PaymentRequest) (string, error)
}
