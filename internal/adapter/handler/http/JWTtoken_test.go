package http

import (
	"testing"
	"time"

	"github.com/sperez-mk/miso-backend/internal/adapter/logger"
	"github.com/sperez-mk/miso-backend/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTokenService() *JWTTokenService {
	return NewJWTTokenService(testSecret, 60, 24*60, logger.NewLoggerAdapter("local"))
}

// signRawToken builds tokens with arbitrary claims, bypassing Issue, to
// exercise the decode paths the service itself would never produce.
func signRawToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestIssueAndDecodeRefresh_RoundTrip(t *testing.T) {
	svc := newTokenService()
	userID := uuid.New()

	pair, err := svc.Issue(userID, domain.SubscriptionPremium)
	require.NoError(t, err)

	decoded, err := svc.DecodeRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, decoded)
}

func TestDecodeRefresh_AccessTokenIsNotARefreshToken(t *testing.T) {
	svc := newTokenService()

	pair, err := svc.Issue(uuid.New(), domain.SubscriptionFree)
	require.NoError(t, err)

	_, err = svc.DecodeRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrNotRefreshToken)
}

func TestDecodeRefresh_Expired(t *testing.T) {
	svc := newTokenService()
	userID := uuid.New()

	token := signRawToken(t, testSecret, jwt.MapClaims{
		"user_id": userID.String(),
		"scopes":  []string{"free"},
		"expiry":  time.Now().Unix() - 60,
		"refresh": true,
	})

	_, err := svc.DecodeRefresh(token)
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
}

func TestDecodeRefresh_WrongSecret(t *testing.T) {
	svc := newTokenService()
	userID := uuid.New()

	token := signRawToken(t, "another-secret", jwt.MapClaims{
		"user_id": userID.String(),
		"scopes":  []string{"free"},
		"expiry":  time.Now().Unix() + 3600,
		"refresh": true,
	})

	_, err := svc.DecodeRefresh(token)
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
}

func TestDecodeRefresh_MissingExpiry(t *testing.T) {
	svc := newTokenService()

	token := signRawToken(t, testSecret, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"scopes":  []string{"free"},
		"refresh": true,
	})

	_, err := svc.DecodeRefresh(token)
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken,
		"missing expiry collapses to the same error as a bad signature")
}

func TestDecodeRefresh_Malformed(t *testing.T) {
	svc := newTokenService()

	_, err := svc.DecodeRefresh("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
}

func TestVerifyAccess_ScopesFollowSubscription(t *testing.T) {
	svc := newTokenService()
	userID := uuid.New()

	tests := []struct {
		subscription domain.SubscriptionType
		scopes       []string
	}{
		{domain.SubscriptionFree, []string{"free"}},
		{domain.SubscriptionIntermediate, []string{"free", "intermediate"}},
		{domain.SubscriptionPremium, []string{"free", "intermediate", "premium"}},
	}

	for _, tc := range tests {
		pair, err := svc.Issue(userID, tc.subscription)
		require.NoError(t, err)

		payload, err := svc.VerifyAccess(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, payload.UserID)
		assert.Equal(t, tc.scopes, payload.Scopes)
	}
}

func TestVerifyAccess_RejectsRefreshToken(t *testing.T) {
	svc := newTokenService()

	pair, err := svc.Issue(uuid.New(), domain.SubscriptionFree)
	require.NoError(t, err)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
}

func TestVerifyAccess_Expired(t *testing.T) {
	svc := newTokenService()

	token := signRawToken(t, testSecret, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"scopes":  []string{"free"},
		"expiry":  time.Now().Unix() - 60,
	})

	_, err := svc.VerifyAccess(token)
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
}
