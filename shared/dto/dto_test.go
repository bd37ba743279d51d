package dto_test

import (
	"strings"
	"testing"
	"todoboard/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "id", Value: "abc", Operator: dto.FilterOperatorEq, Table: "todos"},
			wantWhere: "todos.id = :id",
			wantArgs:  map[string]any{"id": "abc"},
		},
		{
			name:      "eq with arg name",
			filter:    dto.Filter{ArgName: "comment_id", Field: "id", Value: "c1", Operator: dto.FilterOperatorEq, Table: "comments"},
			wantWhere: "comments.id = :comment_id",
			wantArgs:  map[string]any{"comment_id": "c1"},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "todo_id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn, Table: "comments"},
			wantWhere: "comments.todo_id IN (:todo_id_0, :todo_id_1) ",
			wantArgs:  map[string]any{"todo_id_0": "a", "todo_id_1": "b"},
		},
		{
			name:      "in with a single value",
			filter:    dto.Filter{Field: "todo_id", Value: "a", Operator: dto.FilterOperatorIn},
			wantWhere: "todo_id = :todo_id",
			wantArgs:  map[string]any{"todo_id": "a"},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "todo_id", Value: "t1", Operator: dto.FilterOperatorEq, Table: "comments"},
			dto.Filter{Field: "id", Value: "c1", Operator: dto.FilterOperatorEq, Table: "comments"},
		},
	}

	where, args := group.GetWhereClause()

	assert.True(t, strings.HasPrefix(where, "("))
	assert.Contains(t, where, "comments.todo_id = :todo_id AND comments.id = :id")
	assert.Equal(t, map[string]any{"todo_id": "t1", "id": "c1"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestOrderingHelpers(t *testing.T) {
	newest := dto.Newest()
	assert.Equal(t, "created_datetime", newest.SortBy)
	assert.Equal(t, dto.SortDirDesc, newest.SortDir)

	oldest := dto.Oldest()
	assert.Equal(t, dto.SortDirAsc, oldest.SortDir)
}
