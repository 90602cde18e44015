package problemrepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
	querybuilder "gitlab.com/codeplatform.net/internal/utils"
)

var _ secondary.ProblemRepository = (*ProblemRepository)(nil)

// ProblemRepository reads problems and their test cases from PostgreSQL
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewProblemRepository creates a new PostgreSQL problem repository
func NewProblemRepository(db *sqlx.DB, logger primary.Logger, schema string) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// ListProblems retrieves every problem
func (r *ProblemRepository) ListProblems(ctx context.Context) ([]*domain.Problem, error) {
	tbl := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.ID, tbl.Title, tbl.Slug, tbl.Difficulty).
		From(tbl.TableName()).
		OrderBy(tbl.ID, true).
		Build()

	problems := make([]*domain.Problem, 0)
	if err := r.db.SelectContext(ctx, &problems, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	return problems, nil
}

// GetTestCases retrieves the problem's test cases ordered by id. The row
// position becomes the ordinal.
func (r *ProblemRepository) GetTestCases(ctx context.Context, problemID int64) ([]domain.TestCase, error) {
	tbl := domain.GetTestCaseTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.Input, tbl.Expected, tbl.IsHidden).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.ProblemID), problemID).
		OrderBy(tbl.ID, true).
		Build()

	var testCases []domain.TestCase
	if err := r.db.SelectContext(ctx, &testCases, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to get test cases", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to get test cases: %w", err)
	}
	for i := range testCases {
		testCases[i].Ordinal = i
	}
	return testCases, nil
}
