package model

import (
	"time"

	"github.com/reagan13/beach-management-system-java-sub000/shared/model"
)

const (
	TableName  = "absences"
	EntityName = "absence"

	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldDateFrom = "date_from"
	FieldDateTo   = "date_to"
	FieldReason   = "reason"
	FieldStatus   = "status"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Absence is a staff leave request.
type Absence struct {
	ID       string    `db:"id"`
	UserID   string    `db:"user_id"`
	DateFrom time.Time `db:"date_from"`
	DateTo   time.Time `db:"date_to"`
	Reason   string    `db:"reason"`
	Status   string    `db:"status"`
	model.Metadata
}
