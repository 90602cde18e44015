package evaluation

import (
	"context"

	"gitlab.com/codeplatform.net/internal/domain"
)

// IEvaluationService runs a program against a problem's test cases.
type IEvaluationService interface {
	// Evaluate judges sourceCode against testCases and derives the verdict.
	// It does not persist anything.
	Evaluate(ctx context.Context, testCases []domain.TestCase, sourceCode string) (*domain.EvaluationOutcome, error)
}
