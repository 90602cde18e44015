package secondary

import (
	"context"

	"gitlab.com/codeplatform.net/internal/domain"
)

type UserPort interface {
	Create(ctx context.Context, user *domain.Users) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.Users, error)
	// UpsertGoogleUser creates the user or refreshes name and picture of an
	// existing one with the same email.
	UpsertGoogleUser(ctx context.Context, user *domain.GoogleUser) (*domain.Users, error)
}
