package secondary

import (
	"context"

	"gitlab.com/codeplatform.net/internal/domain"
)

type ProblemRepository interface {
	// ListProblems retrieves every problem.
	ListProblems(ctx context.Context) ([]*domain.Problem, error)

	// GetTestCases retrieves the test cases of a problem in evaluation order,
	// with ordinals assigned from zero.
	GetTestCases(ctx context.Context, problemID int64) ([]domain.TestCase, error)
}
