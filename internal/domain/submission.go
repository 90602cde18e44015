package domain

import (
	"time"
)

// Verdict is the binary pass/fail classification stored with a submission.
type Verdict string

const (
	VerdictAccepted    Verdict = "AC"
	VerdictWrongAnswer Verdict = "WA"
)

func (v Verdict) Message() string {
	if v == VerdictAccepted {
		return "Accepted ✅"
	}
	return "Wrong Answer ❌"
}

// FailedCase describes the first test case the program did not pass.
type FailedCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Status   string `json:"status"`
	Stderr   string `json:"stderr"`
}

// EvaluationOutcome is derived from judge results and never stored on its own.
type EvaluationOutcome struct {
	Verdict    Verdict
	RuntimeMs  int64
	FailedCase *FailedCase
}

// Submission is an append-only record of one evaluated program.
type Submission struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	ProblemID int64     `db:"problem_id"`
	Code      string    `db:"code_txt"`
	Status    Verdict   `db:"status"`
	RuntimeMs int64     `db:"runtime_ms"`
	CreatedAt time.Time `db:"created_at"`
}

// SubmissionResult is what the evaluate-and-record flow hands back to its caller.
type SubmissionResult struct {
	SubmissionID int64       `json:"submission_id"`
	Verdict      Verdict     `json:"verdict"`
	RuntimeMs    int64       `json:"runtime_ms"`
	Message      string      `json:"message"`
	FailedCase   *FailedCase `json:"failedCase,omitempty"`
}

// SubmissionHistoryItem is one row of a user's submission history.
type SubmissionHistoryItem struct {
	ID           int64     `db:"id" json:"id"`
	ProblemID    int64     `db:"problem_id" json:"problem_id"`
	ProblemTitle string    `db:"problem_title" json:"problem_title"`
	Status       Verdict   `db:"status" json:"status"`
	RuntimeMs    int64     `db:"runtime_ms" json:"runtime_ms"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type SubmissionTable struct {
	ID        string
	UserID    string
	ProblemID string
	Code      string
	Status    string
	RuntimeMs string
	CreatedAt string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:        "id",
		UserID:    "user_id",
		ProblemID: "problem_id",
		Code:      "code_txt",
		Status:    "status",
		RuntimeMs: "runtime_ms",
		CreatedAt: "created_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}
