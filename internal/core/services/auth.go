package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"
)

type AuthService struct {
	userRepo     ports.UserRepository
	tokenService ports.TokenService
	logger       ports.LoggerPort
	cache        ports.CachePort
}

func NewAuthService(
	userRepo ports.UserRepository,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
		cache:        cache,
	}
}

// Login issues a token pair in one of two mutually exclusive modes: a
// refresh-token exchange when input.RefreshToken is set, email+password
// otherwise. Any refresh-mode failure, including a missing user, collapses to
// the invalid-or-expired token error.
func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (*domain.TokenPair, error) {
	if input.RefreshToken != "" {
		return s.loginWithRefreshToken(ctx, input.RefreshToken)
	}
	return s.loginWithCredentials(ctx, input.Email, input.Password)
}

func (s *AuthService) loginWithRefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	userID, err := s.tokenService.DecodeRefresh(refreshToken)
	if err != nil {
		s.logger.Info("Refresh token rejected", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, domain.ErrInvalidOrExpiredToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get user by id during refresh", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, domain.ErrInvalidOrExpiredToken
	}
	if user == nil {
		return nil, domain.ErrInvalidOrExpiredToken
	}

	return s.tokenService.Issue(user.ID, user.Subscription)
}

func (s *AuthService) loginWithCredentials(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := s.lookupUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if !VerifyPassword(password, user.HashedPassword) {
		s.logger.Info("Invalid password attempt", map[string]interface{}{
			"email": email,
		})
		return nil, domain.ErrInvalidPassword
	}

	return s.tokenService.Issue(user.ID, user.Subscription)
}

// lookupUserByEmail checks the cache before the store. Users are immutable
// after registration in this service, so cached entries never go stale.
func (s *AuthService) lookupUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	cacheKey := fmt.Sprintf("user_email:%s", email)
	cachedData, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		var cachedUser domain.User
		if err := json.Unmarshal(cachedData, &cachedUser); err == nil {
			s.logger.Debug("User found in email cache", map[string]interface{}{
				"email": email,
			})
			return &cachedUser, nil
		}
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to get user by email", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	userData, err := json.Marshal(user)
	if err != nil {
		s.logger.Warn("Failed to marshal user for email cache", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
	} else {
		if err := s.cache.Set(ctx, cacheKey, userData, 10*time.Minute); err != nil {
			s.logger.Warn("Failed to cache user by email", map[string]interface{}{
				"error": err.Error(),
				"email": email,
			})
		}
	}

	return user, nil
}

var _ ports.AuthService = (*AuthService)(nil)
