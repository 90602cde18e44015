package errs

import "errors"

var (
	// NoTestCases means the problem has nothing to evaluate against.
	NoTestCases = errors.New("no test cases found for this problem")

	// JudgeTransport covers network failures talking to the remote judge.
	JudgeTransport = errors.New("judge transport error")

	// MalformedJudgeResponse covers bodies that do not decode into the expected
	// shape, including result sets that do not line up with the submitted batch.
	MalformedJudgeResponse = errors.New("malformed judge response")

	// PersistenceFailed is returned when the verdict could not be stored.
	PersistenceFailed = errors.New("failed to persist submission")
)

var (
	EmptyChatMessage = errors.New("message is required and cannot be empty")
)
