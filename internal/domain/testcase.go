package domain

// TestCase is one stdin/expected-output pair of a problem. Ordinal is the
// position of the case in evaluation order and is assigned on load.
type TestCase struct {
	Ordinal        int    `db:"-" json:"-"`
	Input          string `db:"input_txt" json:"input"`
	ExpectedOutput string `db:"expected_txt" json:"expected"`
	IsHidden       bool   `db:"is_hidden" json:"is_hidden"`
}

type TestCaseTable struct {
	ID        string
	ProblemID string
	Input     string
	Expected  string
	IsHidden  string
}

func GetTestCaseTable() TestCaseTable {
	return TestCaseTable{
		ID:        "id",
		ProblemID: "problem_id",
		Input:     "input_txt",
		Expected:  "expected_txt",
		IsHidden:  "is_hidden",
	}
}

func (TestCaseTable) TableName() string {
	return "test_cases"
}
