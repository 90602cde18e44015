package querybuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	querybuilder "gitlab.com/codeplatform.net/internal/utils"
)

func TestSelectWithJoinOrderAndLimit(t *testing.T) {
	query, args := querybuilder.NewQueryBuilder("public").
		Select("s.id", "p.title").
		FromAlias("submissions", "s").
		Join(querybuilder.JoinTypeInner, "problems", "p", "s.problem_id = p.id").
		Where("s.user_id = ?", int64(7)).
		OrderBy("s.created_at", false).
		Limit(5).
		Build()

	assert.Equal(t,
		"SELECT s.id, p.title FROM public.submissions s INNER JOIN public.problems p ON s.problem_id = p.id"+
			" WHERE s.user_id = ? ORDER BY s.created_at DESC LIMIT ?",
		query)
	assert.Equal(t, []interface{}{int64(7), 5}, args)
}

func TestSelectWithGroups(t *testing.T) {
	query, args := querybuilder.NewQueryBuilder("").
		Select("role").
		From("chat_logs").
		Where("user_id = ?", 1).
		AndGroup(func(qb querybuilder.QueryBuilder) {
			qb.Where("problem_id = ?", 2).Or("problem_id IS NULL")
		}).
		Build()

	assert.Equal(t, "SELECT role FROM chat_logs WHERE user_id = ? AND (problem_id = ? OR problem_id IS NULL)", query)
	assert.Equal(t, []interface{}{1, 2}, args)
}

func TestInsertReturning(t *testing.T) {
	query, args := querybuilder.NewQueryBuilder("public").
		Insert("user_id", "status").
		Into("submissions").
		Values(int64(1), "AC").
		Returning("id").
		Build()

	assert.Equal(t, "INSERT INTO public.submissions (user_id, status) VALUES (?, ?) RETURNING id", query)
	assert.Equal(t, []interface{}{int64(1), "AC"}, args)
}

func TestInsertRejectsMismatchedRow(t *testing.T) {
	query, args := querybuilder.NewQueryBuilder("public").
		Insert("a", "b").
		Into("t").
		Values(1).
		Build()

	assert.Empty(t, query)
	assert.Nil(t, args)
}
