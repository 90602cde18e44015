package auth

import (
	"context"
	"fmt"
	"strings"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

var _ ILocalAuthService = &localAuthService{}

type localAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
	logger      primary.Logger
}

func NewLocalAuthService(
	userPort secondary.UserPort,
	jwtProvider primary.JWTService,
	logger primary.Logger,
) ILocalAuthService {
	return &localAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
		logger:      logger,
	}
}

func (g localAuthService) ProviderName() domain.Provider {
	return domain.ProviderLocal
}

func (g localAuthService) Register(ctx context.Context, creds domain.Credentials) error {
	email := strings.TrimSpace(creds.Email)
	if email == "" {
		return errs.EmailRequired
	}
	if creds.Password == "" {
		return errs.PasswordRequired
	}

	hash, err := g.jwtProvider.EncryptPassword(ctx, creds.Password)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.InternalError, err)
	}
	provider := string(domain.ProviderLocal)
	id, err := g.userPort.Create(ctx, &domain.Users{
		Email:        email,
		PasswordHash: &hash,
		Provider:     &provider,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errs.FailedToCreateUser, err)
	}
	g.logger.Info("User registered", "userId", id)
	return nil
}

func (g localAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	usr, err := g.userPort.GetByEmail(ctx, strings.TrimSpace(creds.Email))
	if err != nil {
		return "", err
	}
	if usr == nil || usr.PasswordHash == nil {
		return "", errs.InvalidCredentials
	}
	valid, err := g.jwtProvider.VerifyPassword(ctx, *usr.PasswordHash, creds.Password)
	if err != nil || !valid {
		return "", errs.InvalidCredentials
	}

	return g.jwtProvider.IssueToken(ctx, domain.AuthPayload{UserID: usr.ID})
}
