package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sperez-mk/miso-backend/internal/core/domain"

	"github.com/lib/pq"
)

type PostgresCardRepository struct {
	db *sql.DB
}

func NewCardRepository(db *sql.DB) *PostgresCardRepository {
	return &PostgresCardRepository{
		db,
	}
}

func (r *PostgresCardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	query := `INSERT INTO credit_cards (card_number, card_holder, card_expiration_date, card_cvv, card_balance)
    VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		card.Number, card.Holder, card.ExpirationDate, card.Cvv, card.Balance)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, domain.ErrCardAlreadyExists
		}
		return nil, err
	}
	return card, nil
}

func (r *PostgresCardRepository) GetByNumber(ctx context.Context, number string) (*domain.Card, error) {
	query := `SELECT card_number, card_holder, card_expiration_date, card_cvv, card_balance
              FROM credit_cards WHERE card_number = $1`

	card := &domain.Card{}
	err := r.db.QueryRowContext(ctx, query, number).Scan(
		&card.Number,
		&card.Holder,
		&card.ExpirationDate,
		&card.Cvv,
		&card.Balance,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return card, nil
}

func (r *PostgresCardRepository) List(ctx context.Context) ([]domain.Card, error) {
	query := `SELECT card_number, card_holder, card_expiration_date, card_cvv, card_balance
              FROM credit_cards`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		var card domain.Card
		if err := rows.Scan(
			&card.Number,
			&card.Holder,
			&card.ExpirationDate,
			&card.Cvv,
			&card.Balance,
		); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// AdjustBalance applies the delta in a single UPDATE so concurrent adjustments
// against the same card never lose increments to a read-modify-write race.
func (r *PostgresCardRepository) AdjustBalance(ctx context.Context, number string, delta float64) error {
	query := `UPDATE credit_cards
        SET card_balance = card_balance + $1
        WHERE card_number = $2`

	result, err := r.db.ExecContext(ctx, query, delta, number)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("card %s not found", number)
	}

	return nil
}
