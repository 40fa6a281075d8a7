package services_test

import (
	"context"
	"testing"

	"github.com/sperez-mk/miso-backend/internal/adapter/logger"
	"github.com/sperez-mk/miso-backend/internal/adapter/memory"
	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(repo *memory.UserRepository) *services.UserService {
	return services.NewUserService(repo, logger.NewLoggerAdapter("local"), validator.New(), memory.NewCache())
}

func registerInput() domain.RegisterInput {
	return domain.RegisterInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Password:  "password123",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := newUserService(repo)

	user, err := svc.Register(context.Background(), registerInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "john.doe@example.com", user.Email)
	assert.Equal(t, domain.SubscriptionFree, user.Subscription, "new users start on the free tier")
	assert.Empty(t, user.HashedPassword, "the returned profile must not carry the hash")
}

func TestRegister_StoresHashedPassword(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	stored, err := repo.GetByEmail(context.Background(), "john.doe@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, services.HashPassword("password123"), stored.HashedPassword)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRegister_ValidationFailure(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := newUserService(repo)

	input := registerInput()
	input.Email = "not-an-email"

	_, err := svc.Register(context.Background(), input)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetUser_NotFound(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := newUserService(repo)

	_, err := svc.GetUser(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUser_Roundtrip(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := newUserService(repo)

	created, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	found, err := svc.GetUser(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.Email, found.Email)
}
