// Package submissionrepository stores evaluated submissions in PostgreSQL.
package submissionrepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/static/errs"
	querybuilder "gitlab.com/codeplatform.net/internal/utils"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements the SubmissionRepository interface with PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger, schema string) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// Record inserts one submission row and returns its generated id.
func (r *SubmissionRepository) Record(
	ctx context.Context,
	userID, problemID int64,
	sourceCode string,
	outcome *domain.EvaluationOutcome,
) (int64, error) {
	if outcome == nil {
		return 0, fmt.Errorf("%w: missing outcome", errs.PersistenceFailed)
	}

	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(tbl.UserID, tbl.ProblemID, tbl.Code, tbl.Status, tbl.RuntimeMs).
		Into(tbl.TableName()).
		Values(userID, problemID, sourceCode, string(outcome.Verdict), outcome.RuntimeMs).
		Returning(tbl.ID).
		Build()
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.logger.Error("Failed to save submission", "userId", userID, "problemId", problemID, "error", err)
		return 0, fmt.Errorf("%w: %v", errs.PersistenceFailed, err)
	}

	r.logger.Info("Submission saved", "submissionId", id, "verdict", outcome.Verdict)
	return id, nil
}

// ListByUser retrieves the user's submissions with problem titles, newest first.
func (r *SubmissionRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.SubmissionHistoryItem, error) {
	tbl := domain.GetSubmissionTable()
	prb := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(
			"s."+tbl.ID,
			"s."+tbl.ProblemID,
			fmt.Sprintf("p.%s AS problem_title", prb.Title),
			"s."+tbl.Status,
			"s."+tbl.RuntimeMs,
			"s."+tbl.CreatedAt,
		).
		FromAlias(tbl.TableName(), "s").
		Join(querybuilder.JoinTypeInner, prb.TableName(), "p", fmt.Sprintf("s.%s = p.%s", tbl.ProblemID, prb.ID)).
		Where(fmt.Sprintf("s.%s = ?", tbl.UserID), userID).
		OrderBy("s."+tbl.CreatedAt, false).
		Build()
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	items := make([]*domain.SubmissionHistoryItem, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.logger.Error("Failed to list submissions", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return items, nil
}
