package secondary

import (
	"context"
	"time"

	"gitlab.com/codeplatform.net/internal/domain"
)

// StateStore keeps short-lived OAuth state values.
type StateStore interface {
	Save(ctx context.Context, state string, ttl time.Duration) error
	// Consume reports whether state was issued and removes it.
	Consume(ctx context.Context, state string) (bool, error)
}

type ChatRepository interface {
	LogMessage(ctx context.Context, msg *domain.ChatMessage) error
	// History returns up to limit messages, oldest first.
	History(ctx context.Context, userID int64, problemID *int64, limit int) ([]*domain.ChatMessage, error)
}

// Assistant produces a reply to a conversation.
type Assistant interface {
	Reply(ctx context.Context, history []*domain.ChatMessage) (string, error)
}
