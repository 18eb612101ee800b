package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reagan13/beach-management-system-java-sub000/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "range_from",
				Field:    "check_in_date",
				Value:    "2026-01-01",
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.check_in_date >= :range_from",
			wantArgs:  map[string]any{"range_from": "2026-01-01"},
		},
		{
			name: "like is case insensitive",
			filter: dto.Filter{
				Field:    "username",
				Value:    "guest",
				Operator: dto.FilterOperatorLike,
			},
			wantWhere: "LOWER(username) LIKE LOWER(:username) ",
			wantArgs:  map[string]any{"username": "%guest%"},
		},
		{
			name: "unknown operator yields nothing",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: "bogus",
			},
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

func TestFilter_GetWhereClause_In(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    []string{"pending", "confirmed"},
		Operator: dto.FilterOperatorIn,
	}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "status IN (:status_0, :status_1) ", where)
	assert.Equal(t, map[string]any{"status_0": "pending", "status_1": "confirmed"}, args)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "room_number", Value: "101", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
		},
		Operator: dto.FilterGroupOperatorAnd,
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_number = :room_number AND status = :status)", where)
	assert.Len(t, args, 2)
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterGroup_GetWhereClause_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "status", ArgName: "status_alt", Value: "confirmed", Operator: dto.FilterOperatorEq},
				},
				Operator: dto.FilterGroupOperatorOr,
			},
		},
		Operator: dto.FilterGroupOperatorAnd,
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(active = :active AND (status = :status OR status = :status_alt))", where)
	assert.Len(t, args, 3)
}
