package chat

import (
	"context"
	"fmt"
	"strings"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

// HistoryLimit is how many logged messages are sent as context.
const HistoryLimit = 10

var _ IChatService = (*ChatService)(nil)

type ChatService struct {
	repo      secondary.ChatRepository
	assistant secondary.Assistant
	logger    primary.Logger
}

func NewChatService(repo secondary.ChatRepository, assistant secondary.Assistant, logger primary.Logger) *ChatService {
	return &ChatService{
		repo:      repo,
		assistant: assistant,
		logger:    logger,
	}
}

func (s *ChatService) ProcessMessage(ctx context.Context, userID int64, message string, problemID *int64) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errs.EmptyChatMessage
	}
	if problemID != nil && *problemID == 0 {
		problemID = nil
	}

	if err := s.repo.LogMessage(ctx, &domain.ChatMessage{
		UserID:    userID,
		ProblemID: problemID,
		Role:      domain.ChatRoleUser,
		Content:   message,
	}); err != nil {
		return "", err
	}

	// the history already ends with the message logged above
	history, err := s.repo.History(ctx, userID, problemID, HistoryLimit)
	if err != nil {
		return "", err
	}

	reply, err := s.assistant.Reply(ctx, history)
	if err != nil {
		return "", fmt.Errorf("failed to process message: %w", err)
	}

	if err := s.repo.LogMessage(ctx, &domain.ChatMessage{
		UserID:    userID,
		ProblemID: problemID,
		Role:      domain.ChatRoleAssistant,
		Content:   reply,
	}); err != nil {
		return "", err
	}

	s.logger.Debug("Chat reply sent", "userId", userID, "historyLen", len(history))
	return reply, nil
}
