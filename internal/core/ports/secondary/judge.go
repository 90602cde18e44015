package secondary

import (
	"context"

	"gitlab.com/codeplatform.net/internal/domain"
)

// JudgeClient talks to a remote batch judge. Implementations hold no business
// rules and return results in the order of the tokens they were given.
type JudgeClient interface {
	// SubmitBatch submits every entry in one call and returns one token per entry.
	SubmitBatch(ctx context.Context, entries []domain.BatchJudgeRequest) ([]domain.JudgeToken, error)

	// FetchResults retrieves the results of previously submitted runs.
	FetchResults(ctx context.Context, tokens []domain.JudgeToken) ([]domain.JudgeResult, error)
}
