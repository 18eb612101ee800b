package model

import "time"

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	RoomTableName  = "room_audit_logs"
	RoomEntityName = "room_audit_log"

	BookingTableName  = "booking_audit_logs"
	BookingEntityName = "booking_audit_log"

	FieldID          = "id"
	FieldSubject     = "subject"
	FieldSubjectID   = "subject_id"
	FieldAction      = "action"
	FieldDetails     = "details"
	FieldOldValue    = "old_value"
	FieldNewValue    = "new_value"
	FieldPerformedBy = "performed_by"
	FieldCreatedAt   = "created_at"
	FieldRoomNumber  = "room_number"
	FieldBookingID   = "booking_id"
)

// AuditLog is the general append-only trail. Subject names the entity
// kind ("user", "payment") and SubjectID points at the row affected.
type AuditLog struct {
	ID          string    `db:"id"`
	Subject     string    `db:"subject"`
	SubjectID   string    `db:"subject_id"`
	Action      string    `db:"action"`
	Details     string    `db:"details"`
	PerformedBy string    `db:"performed_by"`
	CreatedAt   time.Time `db:"created_at"`
}

// RoomAuditLog records every room mutation keyed by room number, with
// the before and after snapshots serialized as JSON.
type RoomAuditLog struct {
	ID          string    `db:"id"`
	RoomNumber  string    `db:"room_number"`
	Action      string    `db:"action"`
	OldValue    string    `db:"old_value"`
	NewValue    string    `db:"new_value"`
	PerformedBy string    `db:"performed_by"`
	CreatedAt   time.Time `db:"created_at"`
}

// BookingAuditLog records booking lifecycle transitions. Rows are
// written inside the same transaction as the booking change itself.
type BookingAuditLog struct {
	ID          string    `db:"id"`
	BookingID   string    `db:"booking_id"`
	Action      string    `db:"action"`
	OldValue    string    `db:"old_value"`
	NewValue    string    `db:"new_value"`
	PerformedBy string    `db:"performed_by"`
	CreatedAt   time.Time `db:"created_at"`
}

// ActionSummary is one row of the grouped action report.
type ActionSummary struct {
	Action string `db:"action"`
	Total  int    `db:"total"`
}
