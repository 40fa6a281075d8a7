package services_test

import (
	"context"
	"testing"

	handlers "github.com/sperez-mk/miso-backend/internal/adapter/handler/http"
	"github.com/sperez-mk/miso-backend/internal/adapter/logger"
	"github.com/sperez-mk/miso-backend/internal/adapter/memory"
	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authFixture(t *testing.T) (*services.AuthService, *memory.UserRepository, *handlers.JWTTokenService) {
	t.Helper()
	log := logger.NewLoggerAdapter("local")
	repo := memory.NewUserRepository()
	tokens := handlers.NewJWTTokenService("test-secret", 60, 24*60, log)
	svc := services.NewAuthService(repo, tokens, log, memory.NewCache())
	return svc, repo, tokens
}

func seedUser(t *testing.T, repo *memory.UserRepository, subscription domain.SubscriptionType) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john.doe@example.com",
		HashedPassword: services.HashPassword("password123"),
		Subscription:   subscription,
	})
	require.NoError(t, err)
	return user
}

func TestLogin_WithCredentials(t *testing.T) {
	svc, repo, _ := authFixture(t)
	user := seedUser(t, repo, domain.SubscriptionFree)

	pair, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "john.doe@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, pair.UserID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, 60, pair.AccessTokenExpiresMinutes)
	assert.Equal(t, 24*60, pair.RefreshTokenExpiresMinutes)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := authFixture(t)

	_, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo, _ := authFixture(t)
	seedUser(t, repo, domain.SubscriptionFree)

	_, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "john.doe@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestLogin_CachedUserStillVerifiesPassword(t *testing.T) {
	svc, repo, _ := authFixture(t)
	seedUser(t, repo, domain.SubscriptionFree)

	input := domain.LoginInput{Email: "john.doe@example.com", Password: "password123"}

	_, err := svc.Login(context.Background(), input)
	require.NoError(t, err)

	// Second login reads the user from the email cache.
	_, err = svc.Login(context.Background(), input)
	require.NoError(t, err)

	input.Password = "wrong-password"
	_, err = svc.Login(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestLogin_WithRefreshToken(t *testing.T) {
	svc, repo, tokens := authFixture(t)
	user := seedUser(t, repo, domain.SubscriptionPremium)

	issued, err := tokens.Issue(user.ID, user.Subscription)
	require.NoError(t, err)

	pair, err := svc.Login(context.Background(), domain.LoginInput{
		RefreshToken: issued.RefreshToken,
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, pair.UserID)
	assert.NotEqual(t, issued.RefreshToken, pair.AccessToken)
}

func TestLogin_RefreshTokenForMissingUser(t *testing.T) {
	svc, _, tokens := authFixture(t)

	issued, err := tokens.Issue(uuid.New(), domain.SubscriptionFree)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginInput{
		RefreshToken: issued.RefreshToken,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
}

func TestLogin_AccessTokenRejectedAsRefresh(t *testing.T) {
	svc, repo, tokens := authFixture(t)
	user := seedUser(t, repo, domain.SubscriptionFree)

	issued, err := tokens.Issue(user.ID, user.Subscription)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginInput{
		RefreshToken: issued.AccessToken,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken,
		"all refresh-mode failures collapse to the invalid-or-expired error")
}

func TestLogin_GarbageRefreshToken(t *testing.T) {
	svc, _, _ := authFixture(t)

	_, err := svc.Login(context.Background(), domain.LoginInput{
		RefreshToken: "not.a.jwt",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
}
