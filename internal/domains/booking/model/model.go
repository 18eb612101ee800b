package model

import (
	"time"

	"github.com/reagan13/beach-management-system-java-sub000/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomNumber   = "room_number"
	FieldUserID       = "user_id"
	FieldCustomerName = "customer_name"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldGuestCount   = "guest_count"
	FieldTotalPrice   = "total_price"
	FieldStatus       = "status"
)

type Booking struct {
	ID           string    `db:"id"`
	RoomNumber   string    `db:"room_number"`
	UserID       string    `db:"user_id"`
	CustomerName string    `db:"customer_name"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	GuestCount   int       `db:"guest_count"`
	TotalPrice   float64   `db:"total_price"`
	Status       string    `db:"status"`
	model.Metadata
}

// Overlaps reports whether the stay windows of two bookings collide.
// Boundaries are inclusive: a checkout and a check-in that fall on the
// same day still conflict, since housekeeping needs the day between
// guests.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// ConflictsWith reports whether another booking blocks this one. Only
// pending and confirmed bookings on the same room can block.
func (b *Booking) ConflictsWith(other Booking) bool {
	if b.ID == other.ID {
		return false
	}

	if b.RoomNumber != other.RoomNumber {
		return false
	}

	return Overlaps(b.CheckInDate, b.CheckOutDate, other.CheckInDate, other.CheckOutDate)
}
