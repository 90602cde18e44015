package querybuilder

type CondType int

const (
	CondTypeAnd CondType = iota + 1
	CondTypeOr
)

func (c CondType) ToString() string {
	switch c {
	case CondTypeAnd:
		return "AND"
	case CondTypeOr:
		return "OR"
	default:
		return ""
	}
}

// Condition is one WHERE term or a parenthesised group of terms.
type Condition struct {
	condType   CondType
	clause     string
	args       []interface{}
	subCond    []Condition
	isSubGroup bool
}

type JoinType int

const (
	JoinTypeInner JoinType = iota + 1
	JoinTypeLeft
)

func (j JoinType) ToString() string {
	switch j {
	case JoinTypeInner:
		return "INNER JOIN"
	case JoinTypeLeft:
		return "LEFT JOIN"
	default:
		return ""
	}
}

type join struct {
	joinType JoinType
	table    string
	alias    string
	on       string
}
