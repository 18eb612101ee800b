package model

import "github.com/reagan13/beach-management-system-java-sub000/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldRoomType    = "room_type"
	FieldPrice       = "price"
	FieldStatus      = "status"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
	FieldActive      = "active"
)

type Room struct {
	ID          string  `db:"id"`
	RoomNumber  string  `db:"room_number"`
	RoomType    string  `db:"room_type"`
	Price       float64 `db:"price"`
	Status      string  `db:"status"`
	Capacity    int     `db:"capacity"`
	Description string  `db:"description"`
	Active      bool    `db:"active"`
	model.Metadata
}
