package ports

import (
	"context"

	"github.com/sperez-mk/miso-backend/internal/core/domain"

	"github.com/google/uuid"
)

// TokenService issues and validates the signed access/refresh token pairs.
type TokenService interface {
	Issue(userID uuid.UUID, subscription domain.SubscriptionType) (*domain.TokenPair, error)
	DecodeRefresh(token string) (uuid.UUID, error)
	VerifyAccess(token string) (domain.TokenPayload, error)
}

type AuthService interface {
	Login(ctx context.Context, input domain.LoginInput) (*domain.TokenPair, error)
}
