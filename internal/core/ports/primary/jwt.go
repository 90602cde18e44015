package primary

import (
	"context"
	"time"

	"gitlab.com/codeplatform.net/internal/domain"
)

type JWTService interface {
	GenerateTokenHMAC(ctx context.Context, method string, claims map[string]interface{}) (string, error)
	// IssueToken signs payload with the configured secret and lifetime.
	IssueToken(ctx context.Context, payload domain.AuthPayload) (string, error)
	// ParseToken verifies signature and expiry and returns the claims.
	ParseToken(ctx context.Context, token string) (domain.AuthPayload, error)
	EncryptPassword(ctx context.Context, password string) (string, error)
	VerifyPassword(ctx context.Context, passwordHash string, pwd string) (bool, error)
	TokenTTL() time.Duration
}
