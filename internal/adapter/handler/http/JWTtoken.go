package http

import (
	"time"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token payloads carry a custom epoch-seconds "expiry" claim rather than the
// registered "exp", plus a "refresh" flag marking refresh tokens. Validity is
// determined entirely by signature, expiry and purpose; nothing is stored
// server side.
type JWTTokenService struct {
	secretKey      []byte
	accessMinutes  int
	refreshMinutes int
	logger         ports.LoggerPort
}

func NewJWTTokenService(secretKey string, accessMinutes, refreshMinutes int, logger ports.LoggerPort) *JWTTokenService {
	if accessMinutes <= 0 {
		logger.Warn("Invalid access token TTL, using default 60m", map[string]interface{}{
			"minutes": accessMinutes,
		})
		accessMinutes = 60
	}
	if refreshMinutes <= 0 {
		logger.Warn("Invalid refresh token TTL, using default 24h", map[string]interface{}{
			"minutes": refreshMinutes,
		})
		refreshMinutes = 24 * 60
	}

	return &JWTTokenService{
		secretKey:      []byte(secretKey),
		accessMinutes:  accessMinutes,
		refreshMinutes: refreshMinutes,
		logger:         logger,
	}
}

// Issue signs an access/refresh pair for the user with the scopes derived
// from its subscription tier.
func (j *JWTTokenService) Issue(userID uuid.UUID, subscription domain.SubscriptionType) (*domain.TokenPair, error) {
	scopes := subscription.Scopes()

	accessToken, err := j.createToken(userID, scopes, j.accessMinutes, false)
	if err != nil {
		j.logger.Error("Failed to sign access token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
		return nil, err
	}

	refreshToken, err := j.createToken(userID, scopes, j.refreshMinutes, true)
	if err != nil {
		j.logger.Error("Failed to sign refresh token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
		return nil, err
	}

	return &domain.TokenPair{
		UserID:                     userID,
		AccessToken:                accessToken,
		AccessTokenExpiresMinutes:  j.accessMinutes,
		RefreshToken:               refreshToken,
		RefreshTokenExpiresMinutes: j.refreshMinutes,
	}, nil
}

func (j *JWTTokenService) createToken(userID uuid.UUID, scopes []string, expiresMinutes int, refresh bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"scopes":  scopes,
		"expiry":  time.Now().Unix() + int64(expiresMinutes)*60,
	}
	if refresh {
		claims["refresh"] = true
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// DecodeRefresh validates a refresh token and returns the embedded user id.
// Signature and missing-expiry failures collapse to the same error; a
// well-formed token without the refresh flag is reported distinctly.
func (j *JWTTokenService) DecodeRefresh(token string) (uuid.UUID, error) {
	claims, err := j.parseClaims(token)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidOrExpiredToken
	}

	expiry, ok := claims["expiry"].(float64)
	if !ok {
		return uuid.Nil, domain.ErrInvalidOrExpiredToken
	}

	if refresh, _ := claims["refresh"].(bool); !refresh {
		return uuid.Nil, domain.ErrNotRefreshToken
	}

	if time.Now().Unix() > int64(expiry) {
		return uuid.Nil, domain.ErrInvalidOrExpiredToken
	}

	return userIDFromClaims(claims)
}

// VerifyAccess validates a bearer access token. Refresh tokens are rejected
// here; they are only good for the login exchange.
func (j *JWTTokenService) VerifyAccess(token string) (domain.TokenPayload, error) {
	claims, err := j.parseClaims(token)
	if err != nil {
		return domain.TokenPayload{}, domain.ErrInvalidOrExpiredToken
	}

	expiry, ok := claims["expiry"].(float64)
	if !ok {
		return domain.TokenPayload{}, domain.ErrInvalidOrExpiredToken
	}
	if time.Now().Unix() > int64(expiry) {
		return domain.TokenPayload{}, domain.ErrInvalidOrExpiredToken
	}

	if refresh, _ := claims["refresh"].(bool); refresh {
		return domain.TokenPayload{}, domain.ErrInvalidOrExpiredToken
	}

	userID, err := userIDFromClaims(claims)
	if err != nil {
		return domain.TokenPayload{}, err
	}

	scopes := []string{}
	if rawScopes, ok := claims["scopes"].([]interface{}); ok {
		for _, raw := range rawScopes {
			if scope, ok := raw.(string); ok {
				scopes = append(scopes, scope)
			}
		}
	}

	return domain.TokenPayload{
		UserID: userID,
		Scopes: scopes,
	}, nil
}

func (j *JWTTokenService) parseClaims(token string) (jwt.MapClaims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		j.logger.Debug("Failed to parse jwt", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidOrExpiredToken
	}
	return claims, nil
}

func userIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrInvalidOrExpiredToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidOrExpiredToken
	}
	return userID, nil
}

var _ ports.TokenService = (*JWTTokenService)(nil)
