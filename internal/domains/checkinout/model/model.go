package model

import (
	"time"

	"github.com/reagan13/beach-management-system-java-sub000/shared/model"
)

const (
	TableName  = "check_in_out"
	EntityName = "check_in_out"

	FieldID           = "id"
	FieldBookingID    = "booking_id"
	FieldUserID       = "user_id"
	FieldCustomerName = "customer_name"
	FieldRoomNumber   = "room_number"
	FieldType         = "check_in_type"
	FieldStatus       = "status"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
)

// CheckInOut is one stay record. BookingID is nil only while a legacy
// row predates the walk-in flow; both walk-ins and booked stays carry
// the booking that backs them.
type CheckInOut struct {
	ID           string     `db:"id"`
	BookingID    *string    `db:"booking_id"`
	UserID       string     `db:"user_id"`
	CustomerName string     `db:"customer_name"`
	RoomNumber   string     `db:"room_number"`
	Type         string     `db:"check_in_type"`
	Status       string     `db:"status"`
	CheckInDate  time.Time  `db:"check_in_date"`
	CheckOutDate *time.Time `db:"check_out_date"`
	model.Metadata
}
