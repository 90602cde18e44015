package chatrepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
	querybuilder "gitlab.com/codeplatform.net/internal/utils"
)

var _ secondary.ChatRepository = (*ChatRepository)(nil)

type ChatRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func NewChatRepository(db *sqlx.DB, logger primary.Logger, schema string) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (r *ChatRepository) LogMessage(ctx context.Context, msg *domain.ChatMessage) error {
	tbl := domain.GetChatLogTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(tbl.UserID, tbl.ProblemID, tbl.Role, tbl.Content).
		Into(tbl.TableName()).
		Values(msg.UserID, msg.ProblemID, string(msg.Role), msg.Content).
		Build()

	if _, err := r.db.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to log chat message", "userId", msg.UserID, "error", err)
		return fmt.Errorf("failed to log message: %w", err)
	}
	return nil
}

// History returns the latest limit messages of the conversation, oldest first.
// A nil problemID selects the conversation not tied to any problem.
func (r *ChatRepository) History(ctx context.Context, userID int64, problemID *int64, limit int) ([]*domain.ChatMessage, error) {
	tbl := domain.GetChatLogTable()
	qb := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.UserID, tbl.ProblemID, tbl.Role, tbl.Content, tbl.Timestamp).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID)
	if problemID != nil {
		qb = qb.And(fmt.Sprintf("%s = ?", tbl.ProblemID), *problemID)
	} else {
		qb = qb.And(fmt.Sprintf("%s IS NULL", tbl.ProblemID))
	}
	query, args := qb.OrderBy(tbl.Timestamp, false).Limit(limit).Build()

	history := make([]*domain.ChatMessage, 0, limit)
	if err := r.db.SelectContext(ctx, &history, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to get chat history", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}

	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}
