package ports

import (
	"context"

	"github.com/sperez-mk/miso-backend/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepository returns (nil, nil) from the lookups when no row matches.
// Create surfaces a unique-constraint violation as domain.ErrUserAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type UserService interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
