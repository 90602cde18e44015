package crypto

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codeplatform.net/internal/config"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

func newTestService(now time.Time) *JWTServiceImpl {
	svc := NewJWTService(&config.JwtConfig{Secret: "test-secret", TTL: 15 * time.Minute})
	svc.now = func() time.Time { return now }
	return svc
}

func TestIssueAndParseToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(time.Now())

	token, err := svc.IssueToken(ctx, domain.AuthPayload{UserID: 42, Email: "a@b.c", Name: "Ann"})
	require.NoError(t, err)

	payload, err := svc.ParseToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), payload.UserID)
	assert.Equal(t, "a@b.c", payload.Email)
	assert.Equal(t, "Ann", payload.Name)
}

func TestParseTokenExpired(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Now().Add(-time.Hour)
	token, err := newTestService(issuedAt).IssueToken(ctx, domain.AuthPayload{UserID: 1})
	require.NoError(t, err)

	_, err = newTestService(time.Now()).ParseToken(ctx, token)
	assert.ErrorIs(t, err, errs.InvalidToken)
}

func TestParseTokenWrongSecret(t *testing.T) {
	ctx := context.Background()
	other := NewJWTService(&config.JwtConfig{Secret: "other"})
	token, err := other.IssueToken(ctx, domain.AuthPayload{UserID: 1})
	require.NoError(t, err)

	_, err = newTestService(time.Now()).ParseToken(ctx, token)
	assert.ErrorIs(t, err, errs.InvalidToken)
}

func TestParseTokenWithoutUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(time.Now())
	token, err := svc.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, map[string]interface{}{"email": "x@y.z"})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token)
	assert.ErrorIs(t, err, errs.InvalidToken)
}

func TestPasswordRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(time.Now())

	hash, err := svc.EncryptPassword(ctx, "hunter2")
	require.NoError(t, err)

	ok, err := svc.VerifyPassword(ctx, hash, "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyPassword(ctx, hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}
