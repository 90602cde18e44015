package submission

import (
	"context"

	"gitlab.com/codeplatform.net/internal/domain"
)

type ISubmissionService interface {
	// Submit evaluates code against the problem's test cases and records the
	// verdict.
	Submit(ctx context.Context, userID, problemID int64, code string) (*domain.SubmissionResult, error)
	// History lists the user's submissions, newest first.
	History(ctx context.Context, userID int64) ([]*domain.SubmissionHistoryItem, error)
}
