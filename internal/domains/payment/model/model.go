package model

import "github.com/reagan13/beach-management-system-java-sub000/shared/model"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldBookingID   = "booking_id"
	FieldAmount      = "amount"
	FieldMethod      = "method"
	FieldStatus      = "status"
	FieldDescription = "description"
)

type Payment struct {
	ID          string  `db:"id"`
	UserID      string  `db:"user_id"`
	BookingID   *string `db:"booking_id"`
	Amount      float64 `db:"amount"`
	Method      string  `db:"method"`
	Status      string  `db:"status"`
	Description string  `db:"description"`
	model.Metadata
}
