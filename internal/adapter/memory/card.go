package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"
)

// CardRepository is a mutex-guarded in-memory ledger used by tests and local
// runs without postgres.
type CardRepository struct {
	mu    sync.RWMutex
	cards map[string]domain.Card
}

func NewCardRepository() *CardRepository {
	return &CardRepository{
		cards: make(map[string]domain.Card),
	}
}

func (r *CardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[card.Number]; ok {
		return nil, domain.ErrCardAlreadyExists
	}
	r.cards[card.Number] = *card

	created := *card
	return &created, nil
}

func (r *CardRepository) GetByNumber(ctx context.Context, number string) (*domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[number]
	if !ok {
		return nil, nil
	}
	return &card, nil
}

func (r *CardRepository) List(ctx context.Context) ([]domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]domain.Card, 0, len(r.cards))
	for _, card := range r.cards {
		cards = append(cards, card)
	}
	return cards, nil
}

func (r *CardRepository) AdjustBalance(ctx context.Context, number string, delta float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	card, ok := r.cards[number]
	if !ok {
		return fmt.Errorf("card %s not found", number)
	}
	card.Balance += delta
	r.cards[number] = card
	return nil
}

var _ ports.CardRepository = (*CardRepository)(nil)
