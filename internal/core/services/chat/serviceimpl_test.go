package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gitlab.com/codeplatform.net/internal/adapter/logging"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

type memoryLog struct {
	messages []*domain.ChatMessage
	limit    int
}

func (m *memoryLog) LogMessage(_ context.Context, msg *domain.ChatMessage) error {
	m.messages = append(m.messages, msg)
	return nil
}

func (m *memoryLog) History(_ context.Context, userID int64, problemID *int64, limit int) ([]*domain.ChatMessage, error) {
	m.limit = limit
	var out []*domain.ChatMessage
	for _, msg := range m.messages {
		if msg.UserID != userID || !sameProblem(msg.ProblemID, problemID) {
			continue
		}
		out = append(out, msg)
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func sameProblem(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type scriptedAssistant struct {
	seen  []*domain.ChatMessage
	reply string
	err   error
}

func (a *scriptedAssistant) Reply(_ context.Context, history []*domain.ChatMessage) (string, error) {
	a.seen = history
	return a.reply, a.err
}

func TestProcessMessageLogsBothTurns(t *testing.T) {
	log := &memoryLog{}
	assistant := &scriptedAssistant{reply: "try two pointers"}
	svc := NewChatService(log, assistant, logging.FromZap(zaptest.NewLogger(t)))
	problemID := int64(3)

	reply, err := svc.ProcessMessage(context.Background(), 1, "how?", &problemID)
	require.NoError(t, err)
	assert.Equal(t, "try two pointers", reply)

	require.Len(t, log.messages, 2)
	assert.Equal(t, domain.ChatRoleUser, log.messages[0].Role)
	assert.Equal(t, domain.ChatRoleAssistant, log.messages[1].Role)
	assert.Equal(t, "try two pointers", log.messages[1].Content)
	assert.Equal(t, HistoryLimit, log.limit)

	// the current message is sent once, as the last turn
	require.Len(t, assistant.seen, 1)
	assert.Equal(t, "how?", assistant.seen[0].Content)
}

func TestProcessMessageSendsPriorConversation(t *testing.T) {
	log := &memoryLog{}
	assistant := &scriptedAssistant{reply: "ok"}
	svc := NewChatService(log, assistant, logging.FromZap(zaptest.NewLogger(t)))
	ctx := context.Background()

	_, err := svc.ProcessMessage(ctx, 1, "first", nil)
	require.NoError(t, err)
	_, err = svc.ProcessMessage(ctx, 1, "second", nil)
	require.NoError(t, err)

	require.Len(t, assistant.seen, 3)
	assert.Equal(t, []string{"first", "ok", "second"},
		[]string{assistant.seen[0].Content, assistant.seen[1].Content, assistant.seen[2].Content})
}

func TestProcessMessageZeroProblemIsNoProblem(t *testing.T) {
	log := &memoryLog{}
	svc := NewChatService(log, &scriptedAssistant{reply: "ok"}, logging.FromZap(zaptest.NewLogger(t)))
	zero := int64(0)

	_, err := svc.ProcessMessage(context.Background(), 1, "hi", &zero)
	require.NoError(t, err)
	assert.Nil(t, log.messages[0].ProblemID)
}

func TestProcessMessageRejectsBlank(t *testing.T) {
	log := &memoryLog{}
	svc := NewChatService(log, &scriptedAssistant{}, logging.FromZap(zaptest.NewLogger(t)))

	_, err := svc.ProcessMessage(context.Background(), 1, "   ", nil)
	assert.ErrorIs(t, err, errs.EmptyChatMessage)
	assert.Empty(t, log.messages)
}

func TestProcessMessageAssistantFailure(t *testing.T) {
	log := &memoryLog{}
	svc := NewChatService(log, &scriptedAssistant{err: errors.New("quota")}, logging.FromZap(zaptest.NewLogger(t)))

	_, err := svc.ProcessMessage(context.Background(), 1, "hi", nil)
	assert.Error(t, err)
	assert.Len(t, log.messages, 1)
}
