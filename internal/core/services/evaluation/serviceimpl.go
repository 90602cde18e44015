package evaluation

import (
	"context"
	"fmt"

	"gitlab.com/codeplatform.net/internal/adapter/metrics"
	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

var _ IEvaluationService = (*EvaluationService)(nil)

// EvaluationService dispatches a whole test set to the judge as one batch.
type EvaluationService struct {
	judge      secondary.JudgeClient
	languageID int
	logger     primary.Logger
	metrics    *metrics.Recorder
}

// NewEvaluationService creates an evaluation service that runs every program
// as languageID. recorder may be nil.
func NewEvaluationService(
	judge secondary.JudgeClient,
	languageID int,
	logger primary.Logger,
	recorder *metrics.Recorder,
) *EvaluationService {
	return &EvaluationService{
		judge:      judge,
		languageID: languageID,
		logger:     logger,
		metrics:    recorder,
	}
}

// Evaluate submits one judge run per test case, fetches the results once and
// reduces them to a verdict. The first non-accepted case in test order is
// reported; the runtime is the slowest run over the whole batch.
func (s *EvaluationService) Evaluate(ctx context.Context, testCases []domain.TestCase, sourceCode string) (*domain.EvaluationOutcome, error) {
	if len(testCases) == 0 {
		return nil, errs.NoTestCases
	}

	entries := s.buildBatch(testCases, sourceCode)

	tokens, err := s.judge.SubmitBatch(ctx, entries)
	if err != nil {
		s.logger.Error("Failed to submit batch", "cases", len(entries), "error", err)
		return nil, err
	}

	results, err := s.judge.FetchResults(ctx, tokens)
	if err != nil {
		s.logger.Error("Failed to fetch batch results", "cases", len(tokens), "error", err)
		return nil, err
	}

	byOrdinal, err := correlate(results, len(testCases))
	if err != nil {
		s.logger.Error("Judge results do not match the submitted batch", "error", err)
		return nil, err
	}

	outcome := &domain.EvaluationOutcome{Verdict: domain.VerdictAccepted}

	for ordinal, r := range byOrdinal {
		if r.Accepted() {
			continue
		}
		tc := testCases[ordinal]
		outcome.Verdict = domain.VerdictWrongAnswer
		outcome.FailedCase = &domain.FailedCase{
			Input:    tc.Input,
			Expected: tc.ExpectedOutput,
			Actual:   r.Stdout,
			Status:   r.StatusDescription,
			Stderr:   r.Stderr,
		}
		break
	}

	for _, r := range byOrdinal {
		if ms := r.ElapsedMs(); ms > outcome.RuntimeMs {
			outcome.RuntimeMs = ms
		}
		// results are fetched once; runs the judge has not finished count as failures
		if r.Unfinished() {
			s.metrics.UnfinishedResult()
			s.logger.Warn("Judge result not finished at fetch time",
				"ordinal", r.Ordinal, "token", r.Token, "status", r.StatusDescription)
		}
	}

	s.metrics.Verdict(outcome.Verdict)
	s.logger.Info("Evaluation finished",
		"cases", len(testCases), "verdict", outcome.Verdict, "runtimeMs", outcome.RuntimeMs)

	return outcome, nil
}

func (s *EvaluationService) buildBatch(testCases []domain.TestCase, sourceCode string) []domain.BatchJudgeRequest {
	entries := make([]domain.BatchJudgeRequest, len(testCases))
	for i, tc := range testCases {
		entries[i] = domain.BatchJudgeRequest{
			Ordinal:        i,
			LanguageID:     s.languageID,
			SourceCode:     sourceCode,
			Stdin:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
		}
	}
	return entries
}

// correlate orders results by ordinal and checks every case has exactly one.
func correlate(results []domain.JudgeResult, n int) ([]domain.JudgeResult, error) {
	if len(results) != n {
		return nil, fmt.Errorf("%w: expected %d results, got %d", errs.MalformedJudgeResponse, n, len(results))
	}
	byOrdinal := make([]domain.JudgeResult, n)
	seen := make([]bool, n)
	for _, r := range results {
		if r.Ordinal < 0 || r.Ordinal >= n || seen[r.Ordinal] {
			return nil, fmt.Errorf("%w: unexpected result ordinal %d", errs.MalformedJudgeResponse, r.Ordinal)
		}
		seen[r.Ordinal] = true
		byOrdinal[r.Ordinal] = r
	}
	return byOrdinal, nil
}
