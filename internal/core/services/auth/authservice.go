package auth

import (
	"context"

	"gitlab.com/codeplatform.net/internal/domain"
)

type IAuthService interface {
	ProviderName() domain.Provider
}

// ILocalAuthService signs users in with email and password.
type ILocalAuthService interface {
	IAuthService
	Register(ctx context.Context, creds domain.Credentials) error
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

// IGoogleAuthService signs users in through the Google authorization code flow.
type IGoogleAuthService interface {
	IAuthService
	// AuthURL issues a new state and returns the consent page URL carrying it.
	AuthURL(ctx context.Context) (string, error)
	HandleCallback(ctx context.Context, code, state string) (*domain.GoogleLogin, error)
}
