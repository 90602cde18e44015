package domain

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one logged turn of a user's conversation with the assistant.
// A nil ProblemID means the conversation is not tied to a problem.
type ChatMessage struct {
	UserID    int64     `db:"user_id"`
	ProblemID *int64    `db:"problem_id"`
	Role      ChatRole  `db:"role"`
	Content   string    `db:"content_txt"`
	Timestamp time.Time `db:"ts"`
}

type ChatLogTable struct {
	UserID    string
	ProblemID string
	Role      string
	Content   string
	Timestamp string
}

func GetChatLogTable() ChatLogTable {
	return ChatLogTable{
		UserID:    "user_id",
		ProblemID: "problem_id",
		Role:      "role",
		Content:   "content_txt",
		Timestamp: "ts",
	}
}

func (ChatLogTable) TableName() string {
	return "chat_logs"
}
