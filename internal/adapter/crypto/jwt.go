package crypto

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"gitlab.com/codeplatform.net/internal/config"
	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

var _ primary.JWTService = (*JWTServiceImpl)(nil)

type authClaims struct {
	domain.AuthPayload
	jwt.RegisteredClaims
}

type JWTServiceImpl struct {
	HMACSecretKey string
	TTL           time.Duration
	now           func() time.Time
}

func NewJWTService(jwtConfig *config.JwtConfig) *JWTServiceImpl {
	ttl := jwtConfig.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &JWTServiceImpl{
		HMACSecretKey: jwtConfig.Secret,
		TTL:           ttl,
		now:           time.Now,
	}
}

func (J JWTServiceImpl) TokenTTL() time.Duration {
	return J.TTL
}

func (J JWTServiceImpl) GenerateTokenHMAC(ctx context.Context, method string, claims map[string]interface{}) (string, error) {
	signingMethod := jwt.GetSigningMethod(method)
	if signingMethod == nil {
		return "", fmt.Errorf("unsupported signing method: %s", method)
	}

	// Ensure the claims map contains an expiration time
	if _, exists := claims["exp"]; !exists {
		claims["exp"] = J.now().Add(J.TTL).Unix()
	}

	tok := jwt.NewWithClaims(signingMethod, jwt.MapClaims(claims))
	return tok.SignedString([]byte(J.HMACSecretKey))
}

func (J JWTServiceImpl) IssueToken(ctx context.Context, payload domain.AuthPayload) (string, error) {
	now := J.now()
	claims := authClaims{
		AuthPayload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(J.TTL)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(J.HMACSecretKey))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.GeneratingToken, err)
	}
	return signed, nil
}

func (J JWTServiceImpl) ParseToken(ctx context.Context, token string) (domain.AuthPayload, error) {
	var claims authClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(J.HMACSecretKey), nil
	}, jwt.WithTimeFunc(J.now), jwt.WithExpirationRequired())
	if err != nil {
		return domain.AuthPayload{}, fmt.Errorf("%w: %v", errs.InvalidToken, err)
	}
	if !parsed.Valid || claims.UserID == 0 {
		return domain.AuthPayload{}, errs.InvalidToken
	}
	return claims.AuthPayload, nil
}

func (JWTServiceImpl) VerifyPassword(ctx context.Context, passwordHash string, pwd string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(pwd))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (J JWTServiceImpl) EncryptPassword(ctx context.Context, password string) (string, error) {
	pwd, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
