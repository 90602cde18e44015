package domain

type Problem struct {
	ID         int64  `db:"id" json:"id"`
	Title      string `db:"title" json:"title"`
	Slug       string `db:"slug" json:"slug"`
	Difficulty string `db:"difficulty" json:"difficulty"`
}

type ProblemTable struct {
	ID         string
	Title      string
	Slug       string
	Difficulty string
}

func GetProblemTable() ProblemTable {
	return ProblemTable{
		ID:         "id",
		Title:      "title",
		Slug:       "slug",
		Difficulty: "difficulty",
	}
}

func (ProblemTable) TableName() string {
	return "problems"
}
