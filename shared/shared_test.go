package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "even split", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "no data", total: 0, limit: 10, want: 1},
		{name: "no pagination", total: 20, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	truthy := shared.ConvertStringToBool("true")
	if assert.NotNil(t, truthy) {
		assert.True(t, *truthy)
	}

	falsy := shared.ConvertStringToBool("false")
	if assert.NotNil(t, falsy) {
		assert.False(t, *falsy)
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name     string  `db:"name"`
		Quantity int     `db:"quantity"`
		Price    float64 `db:"unit_price"`
		Ignored  string
	}

	fields := shared.TransformFields(updateRequest{
		Name:    "Towels",
		Price:   12.5,
		Ignored: "skipped",
	}, "tester")

	assert.Equal(t, "Towels", fields["name"])
	assert.Equal(t, 12.5, fields["unit_price"])
	assert.NotContains(t, fields, "quantity")
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.Equal(t, "tester", fields[constant.FieldModifiedBy])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get"))
	assert.Equal(t, "room:get:101", shared.BuildCacheKey("room:get", "101"))
	assert.Equal(t, "booking:get:a:b", shared.BuildCacheKey("booking:get", "a", "b"))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("some-id", "id", "bookings")

	where, args := filter.GetWhereClause()

	assert.NotEmpty(t, where)
	assert.Contains(t, args, "id")
	assert.Equal(t, "some-id", args["id"])
}
