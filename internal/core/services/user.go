package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo     ports.UserRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewUserService(
	repo ports.UserRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *UserService {
	return &UserService{
		repo:     repo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

// Register creates a user with the default free tier. The email existence
// check is not atomic with the insert; the unique constraint in the store
// closes the race and is surfaced as the same conflict error.
func (us *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Subscription: domain.SubscriptionFree,
	}
	if err := us.validate.Struct(user); err != nil {
		us.logger.Error("Validation failed", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, fmt.Errorf("validation failed: %s", err.Error())
	}

	existing, err := us.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		us.logger.Error("Failed to check user existence", map[string]interface{}{
			"email": input.Email,
			"error": err.Error(),
		})
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	user.HashedPassword = HashPassword(input.Password)

	created, err := us.repo.Create(ctx, user)
	if err != nil {
		us.logger.Error("Failed to create user in database", map[string]interface{}{
			"email": input.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	us.logger.Info("User registered", map[string]interface{}{
		"user_id": created.ID.String(),
		"email":   created.Email,
	})

	profile := *created
	profile.HashedPassword = ""
	return &profile, nil
}

func (us *UserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	cacheKey := fmt.Sprintf("user:%s", id.String())
	cachedData, err := us.cache.Get(ctx, cacheKey)
	if err == nil {
		var cachedUser domain.User
		if err := json.Unmarshal(cachedData, &cachedUser); err == nil {
			us.logger.Debug("User found in cache", map[string]interface{}{
				"id": id.String(),
			})
			return &cachedUser, nil
		}
	}

	user, err := us.repo.GetByID(ctx, id)
	if err != nil {
		us.logger.Error("Failed to get user", map[string]interface{}{
			"id":    id.String(),
			"error": err.Error(),
		})
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	userData, err := json.Marshal(user)
	if err != nil {
		us.logger.Warn("Failed to marshal user for cache", map[string]interface{}{
			"error": err.Error(),
			"id":    id.String(),
		})
	} else {
		if err := us.cache.Set(ctx, cacheKey, userData, 15*time.Minute); err != nil {
			us.logger.Warn("Failed to cache user", map[string]interface{}{
				"error": err.Error(),
				"id":    id.String(),
			})
		}
	}

	return user, nil
}

var _ ports.UserService = (*UserService)(nil)
