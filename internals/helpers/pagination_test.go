package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"borrowed_at": "borrow_borrowed_at",
		"due_date":    "borrow_due_date",
	}

	t.Run("kolom whitelist", func(t *testing.T) {
		p := Params{SortBy: "due_date", SortOrder: "asc"}
		clause, err := p.SafeOrderClause(allowed, "borrowed_at")
		require.NoError(t, err)
		assert.Equal(t, "ORDER BY borrow_due_date ASC", clause)
	})

	t.Run("kolom liar jatuh ke default", func(t *testing.T) {
		p := Params{SortBy: "borrow_due_date; DROP TABLE fines", SortOrder: "desc"}
		clause, err := p.SafeOrderClause(allowed, "borrowed_at")
		require.NoError(t, err)
		assert.Equal(t, "ORDER BY borrow_borrowed_at DESC", clause)
	})

	t.Run("tanpa default valid", func(t *testing.T) {
		p := Params{SortBy: "x"}
		_, err := p.SafeOrderClause(map[string]string{}, "y")
		assert.Error(t, err)
	})
}

func TestSafeOrderExpr(t *testing.T) {
	p := Params{SortBy: "due_date", SortOrder: "asc"}
	expr, err := p.SafeOrderExpr(map[string]string{"due_date": "borrow_due_date"}, "due_date")
	require.NoError(t, err)
	assert.Equal(t, "borrow_due_date ASC", expr)
}

func TestBuildMeta(t *testing.T) {
	p := Params{Page: 2, PerPage: 10}
	meta := BuildMeta(35, p)

	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 10})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
}
