package secondary

import (
	"context"

	"gitlab.com/codeplatform.net/internal/domain"
)

// SubmissionRecorder appends evaluated submissions. There is no update path.
type SubmissionRecorder interface {
	Record(ctx context.Context, userID, problemID int64, sourceCode string, outcome *domain.EvaluationOutcome) (int64, error)
}

// SubmissionRepository adds read access for history views.
type SubmissionRepository interface {
	SubmissionRecorder

	// ListByUser returns the user's submissions, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*domain.SubmissionHistoryItem, error)
}
