package chat

import "context"

type IChatService interface {
	// ProcessMessage logs the user's message, asks the assistant with the
	// recent conversation as context and logs the reply.
	ProcessMessage(ctx context.Context, userID int64, message string, problemID *int64) (string, error)
}
