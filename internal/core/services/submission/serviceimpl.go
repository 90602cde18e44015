package submission

import (
	"context"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/core/services/evaluation"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

var _ ISubmissionService = (*SubmissionService)(nil)

type SubmissionService struct {
	problems    secondary.ProblemRepository
	submissions secondary.SubmissionRepository
	evaluator   evaluation.IEvaluationService
	logger      primary.Logger
}

func NewSubmissionService(
	problems secondary.ProblemRepository,
	submissions secondary.SubmissionRepository,
	evaluator evaluation.IEvaluationService,
	logger primary.Logger,
) *SubmissionService {
	return &SubmissionService{
		problems:    problems,
		submissions: submissions,
		evaluator:   evaluator,
		logger:      logger,
	}
}

func (s *SubmissionService) Submit(ctx context.Context, userID, problemID int64, code string) (*domain.SubmissionResult, error) {
	testCases, err := s.problems.GetTestCases(ctx, problemID)
	if err != nil {
		return nil, err
	}
	if len(testCases) == 0 {
		return nil, errs.NoTestCases
	}

	outcome, err := s.evaluator.Evaluate(ctx, testCases, code)
	if err != nil {
		return nil, err
	}

	id, err := s.submissions.Record(ctx, userID, problemID, code, outcome)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Submission recorded",
		"submissionId", id, "userId", userID, "problemId", problemID,
		"verdict", outcome.Verdict, "runtimeMs", outcome.RuntimeMs)

	return &domain.SubmissionResult{
		SubmissionID: id,
		Verdict:      outcome.Verdict,
		RuntimeMs:    outcome.RuntimeMs,
		Message:      outcome.Verdict.Message(),
		FailedCase:   outcome.FailedCase,
	}, nil
}

func (s *SubmissionService) History(ctx context.Context, userID int64) ([]*domain.SubmissionHistoryItem, error) {
	return s.submissions.ListByUser(ctx, userID)
}
