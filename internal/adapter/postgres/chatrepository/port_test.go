package chatrepository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gitlab.com/codeplatform.net/internal/adapter/logging"
	"gitlab.com/codeplatform.net/internal/domain"
)

func newMockRepo(t *testing.T) (*ChatRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewChatRepository(sqlx.NewDb(db, "postgres"), logging.FromZap(zaptest.NewLogger(t)), "public"), mock
}

func TestLogMessage(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO public.chat_logs (user_id, problem_id, role, content_txt) VALUES ($1, $2, $3, $4)").
		WithArgs(int64(1), nil, "user", "hi").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.LogMessage(context.Background(), &domain.ChatMessage{UserID: 1, Role: domain.ChatRoleUser, Content: "hi"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryForProblemIsOldestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	problemID := int64(4)
	mock.ExpectQuery("SELECT user_id, problem_id, role, content_txt, ts FROM public.chat_logs "+
		"WHERE user_id = $1 AND problem_id = $2 ORDER BY ts DESC LIMIT $3").
		WithArgs(int64(1), int64(4), 10).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "problem_id", "role", "content_txt", "ts"}).
			AddRow(int64(1), int64(4), "assistant", "second", now).
			AddRow(int64(1), int64(4), "user", "first", now.Add(-time.Second)))

	history, err := repo.History(context.Background(), 1, &problemID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, domain.ChatRoleAssistant, history[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryWithoutProblem(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT user_id, problem_id, role, content_txt, ts FROM public.chat_logs "+
		"WHERE user_id = $1 AND problem_id IS NULL ORDER BY ts DESC LIMIT $2").
		WithArgs(int64(1), 10).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "problem_id", "role", "content_txt", "ts"}))

	history, err := repo.History(context.Background(), 1, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NoError(t, mock.ExpectationsWereMet())
}
