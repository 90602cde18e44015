package domain

import (
	"math"
	"strconv"
)

// JudgeStatusID is the numeric status reported by the remote judge.
type JudgeStatusID int

const (
	JudgeStatusInQueue    JudgeStatusID = 1
	JudgeStatusProcessing JudgeStatusID = 2
	JudgeStatusAccepted   JudgeStatusID = 3
)

// BatchJudgeRequest is one run of the submitted program against one test case.
type BatchJudgeRequest struct {
	Ordinal        int
	LanguageID     int
	SourceCode     string
	Stdin          string
	ExpectedOutput string
}

// JudgeToken identifies one submitted run at the remote judge.
type JudgeToken struct {
	Ordinal int
	Token   string
}

// JudgeResult is the outcome of one run as reported by the remote judge.
type JudgeResult struct {
	Ordinal           int
	Token             string
	StatusID          JudgeStatusID
	StatusDescription string
	Stdout            string
	Stderr            string
	// Time is the wall time in seconds, as the judge formats it. May be nil.
	Time *string
}

func (r JudgeResult) Accepted() bool {
	return r.StatusID == JudgeStatusAccepted
}

// Unfinished reports whether the judge had not finished the run yet.
func (r JudgeResult) Unfinished() bool {
	return r.StatusID == JudgeStatusInQueue || r.StatusID == JudgeStatusProcessing
}

// ElapsedMs converts Time to whole milliseconds, rounding down.
// Missing or non-numeric values count as zero.
func (r JudgeResult) ElapsedMs() int64 {
	if r.Time == nil {
		return 0
	}
	sec, err := strconv.ParseFloat(*r.Time, 64)
	if err != nil || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return 0
	}
	return int64(math.Floor(sec * 1000))
}
