package judge0

import (
	"bytes"
	"encoding/json"
)

type batchSubmissionRequest struct {
	Submissions []submission `json:"submissions"`
}

type submission struct {
	LanguageID     int    `json:"language_id"`
	SourceCode     string `json:"source_code"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output"`
}

type submissionToken struct {
	Token string `json:"token"`
}

type status struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type submissionDetails struct {
	Token  string      `json:"token"`
	Status *status     `json:"status"`
	Stdout *string     `json:"stdout"`
	Stderr *string     `json:"stderr"`
	Time   *flexString `json:"time"`
}

type batchResultResponse struct {
	Submissions []*submissionDetails `json:"submissions"`
}

// flexString accepts a JSON string or number. The judge reports times as
// strings but some deployments emit bare numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
