package dto

import (
	"github.com/google/uuid"

	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	gModel "github.com/reagan13/beach-management-system-java-sub000/shared/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber  string  `json:"room_number" validate:"required,max=20"`
	RoomType    string  `json:"room_type"   validate:"required,oneof=standard deluxe suite family"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Capacity    int     `json:"capacity"    validate:"omitempty,min=1"`
	Description string  `json:"description" validate:"omitempty,max=255"`
	Active      *bool   `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	capacity := c.Capacity
	if capacity == 0 {
		capacity = 1
	}

	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		RoomType:    c.RoomType,
		Price:       c.Price,
		Status:      constant.RoomStatusAvailable,
		Capacity:    capacity,
		Description: c.Description,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomType    string  `db:"room_type"   json:"room_type"   validate:"omitempty,oneof=standard deluxe suite family"`
	Price       float64 `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Status      string  `db:"status"      json:"status"      validate:"omitempty,oneof=available occupied maintenance"`
	Capacity    *int    `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	Description string  `db:"description" json:"description" validate:"omitempty,max=255"`
	Active      *bool   `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	RoomNumber  string  `json:"room_number"`
	RoomType    string  `json:"room_type"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.Status = model.Status
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
