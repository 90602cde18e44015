package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gitlab.com/codeplatform.net/internal/config"
	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

var googleScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

var _ IGoogleAuthService = &googleAuthService{}

type googleAuthService struct {
	userPort    secondary.UserPort
	stateStore  secondary.StateStore
	jwtProvider primary.JWTService
	logger      primary.Logger
	oauth       *oauth2.Config
	Config      *config.GGAuthConfig
}

func NewGoogleAuthService(
	userPort secondary.UserPort,
	stateStore secondary.StateStore,
	jwtProvider primary.JWTService,
	logger primary.Logger,
	Config *config.GGAuthConfig,
) IGoogleAuthService {
	endpoint := google.Endpoint
	if Config.AuthURL != "" {
		endpoint.AuthURL = Config.AuthURL
	}
	if Config.TokenURL != "" {
		endpoint.TokenURL = Config.TokenURL
	}
	return &googleAuthService{
		userPort:    userPort,
		stateStore:  stateStore,
		jwtProvider: jwtProvider,
		logger:      logger,
		Config:      Config,
		oauth: &oauth2.Config{
			ClientID:     Config.ClientID,
			ClientSecret: Config.ClientSecret,
			RedirectURL:  Config.RedirectURL,
			Scopes:       googleScopes,
			Endpoint:     endpoint,
		},
	}
}

func (g googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

func (g googleAuthService) AuthURL(ctx context.Context) (string, error) {
	state := uuid.NewString()
	if err := g.stateStore.Save(ctx, state, g.Config.StateTTL); err != nil {
		return "", err
	}
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

func (g googleAuthService) HandleCallback(ctx context.Context, code, state string) (*domain.GoogleLogin, error) {
	ok, err := g.stateStore.Consume(ctx, state)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.InvalidOAuthState
	}

	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	gUser, err := g.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if gUser.Email == "" {
		return nil, errs.EmailRequired
	}

	usr, err := g.userPort.UpsertGoogleUser(ctx, gUser)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.FailedToCreateUser, err)
	}

	public := domain.PublicUser{ID: usr.ID, Email: usr.Email}
	if usr.Name != nil {
		public.Name = *usr.Name
	}
	if usr.Picture != nil {
		public.Picture = *usr.Picture
	}

	signed, err := g.jwtProvider.IssueToken(ctx, domain.AuthPayload{
		UserID: usr.ID,
		Email:  public.Email,
		Name:   public.Name,
	})
	if err != nil {
		return nil, err
	}
	g.logger.Info("Google sign-in", "userId", usr.ID)
	return &domain.GoogleLogin{User: public, Token: signed}, nil
}

func (g googleAuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUser, error) {
	resp, err := g.oauth.Client(ctx, token).Get(g.Config.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("failed to get user info: status %d: %s", resp.StatusCode, body)
	}

	var gUser domain.GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&gUser); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &gUser, nil
}
