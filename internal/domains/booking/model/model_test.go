package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{
			name:   "disjoint windows",
			aStart: "2026-01-01", aEnd: "2026-01-05",
			bStart: "2026-01-10", bEnd: "2026-01-15",
			want: false,
		},
		{
			name:   "contained window",
			aStart: "2026-01-01", aEnd: "2026-01-10",
			bStart: "2026-01-03", bEnd: "2026-01-05",
			want: true,
		},
		{
			name:   "partial overlap",
			aStart: "2026-01-01", aEnd: "2026-01-05",
			bStart: "2026-01-04", bEnd: "2026-01-10",
			want: true,
		},
		{
			name:   "checkout day equals check-in day",
			aStart: "2026-01-01", aEnd: "2026-01-05",
			bStart: "2026-01-05", bEnd: "2026-01-10",
			want: true,
		},
		{
			name:   "adjacent with a free day between",
			aStart: "2026-01-01", aEnd: "2026-01-05",
			bStart: "2026-01-06", bEnd: "2026-01-10",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Overlaps(date(tt.aStart), date(tt.aEnd), date(tt.bStart), date(tt.bEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBooking_ConflictsWith(t *testing.T) {
	base := model.Booking{
		ID:           "booking-a",
		RoomNumber:   "101",
		CheckInDate:  date("2026-01-01"),
		CheckOutDate: date("2026-01-05"),
	}

	tests := []struct {
		name  string
		other model.Booking
		want  bool
	}{
		{
			name: "same booking never conflicts with itself",
			other: model.Booking{
				ID:           "booking-a",
				RoomNumber:   "101",
				CheckInDate:  date("2026-01-01"),
				CheckOutDate: date("2026-01-05"),
			},
			want: false,
		},
		{
			name: "different room never conflicts",
			other: model.Booking{
				ID:           "booking-b",
				RoomNumber:   "102",
				CheckInDate:  date("2026-01-01"),
				CheckOutDate: date("2026-01-05"),
			},
			want: false,
		},
		{
			name: "same room overlapping dates",
			other: model.Booking{
				ID:           "booking-b",
				RoomNumber:   "101",
				CheckInDate:  date("2026-01-04"),
				CheckOutDate: date("2026-01-08"),
			},
			want: true,
		},
		{
			name: "same room disjoint dates",
			other: model.Booking{
				ID:           "booking-b",
				RoomNumber:   "101",
				CheckInDate:  date("2026-01-06"),
				CheckOutDate: date("2026-01-08"),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.ConflictsWith(tt.other))
		})
	}
}
