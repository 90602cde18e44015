package problem

import (
	"context"

	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
)

type IProblemService interface {
	ListProblems(ctx context.Context) ([]*domain.Problem, error)
}

var _ IProblemService = (*ProblemService)(nil)

type ProblemService struct {
	problems secondary.ProblemRepository
}

func NewProblemService(problems secondary.ProblemRepository) *ProblemService {
	return &ProblemService{problems: problems}
}

func (s *ProblemService) ListProblems(ctx context.Context) ([]*domain.Problem, error) {
	return s.problems.ListProblems(ctx)
}
