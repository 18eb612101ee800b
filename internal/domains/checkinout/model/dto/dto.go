package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/failure"
	gModel "github.com/reagan13/beach-management-system-java-sub000/shared/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

// WalkInRequest registers a guest with no prior booking. The backing
// confirmed booking is created on the spot.
type WalkInRequest struct {
	UserID       string `json:"user_id"        validate:"required,uuid4"`
	CustomerName string `json:"customer_name"  validate:"required,max=100"`
	RoomNumber   string `json:"room_number"    validate:"required,max=20"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
	GuestCount   int    `json:"guest_count"    validate:"required,min=1"`
}

// ParseCheckOut parses the expected departure date and rejects dates
// before today.
func (w *WalkInRequest) ParseCheckOut() (time.Time, error) {
	checkOut, err := time.Parse(constant.DateOnlyFormat, w.CheckOutDate)
	if err != nil {
		return checkOut, failure.BadRequestFromString("check_out_date must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	today, err := time.Parse(constant.DateOnlyFormat, timezone.Now().Format(constant.DateOnlyFormat))
	if err != nil {
		return checkOut, failure.InternalError(err) //nolint:wrapcheck
	}

	if checkOut.Before(today) {
		return checkOut, failure.BadRequestFromString("check_out_date must not be in the past") //nolint:wrapcheck
	}

	return checkOut, nil
}

func (w *WalkInRequest) ToModel(user, bookingID string, checkIn time.Time) model.CheckInOut {
	return model.CheckInOut{
		ID:           uuid.NewString(),
		BookingID:    &bookingID,
		UserID:       w.UserID,
		CustomerName: w.CustomerName,
		RoomNumber:   w.RoomNumber,
		Type:         constant.CheckInTypeWalkIn,
		Status:       constant.CheckInStatusCheckedIn,
		CheckInDate:  checkIn,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// CheckInRequest admits the guest of an existing booking.
type CheckInRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
}

type CheckInOutResponse struct {
	ID           string     `json:"id"`
	BookingID    *string    `json:"booking_id,omitempty"`
	UserID       string     `json:"user_id"`
	CustomerName string     `json:"customer_name"`
	RoomNumber   string     `json:"room_number"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	CheckInDate  time.Time  `json:"check_in_date"`
	CheckOutDate *time.Time `json:"check_out_date,omitempty"`
	gDto.Metadata
}

func (c *CheckInOutResponse) FromModel(mod model.CheckInOut) {
	c.ID = mod.ID
	c.BookingID = mod.BookingID
	c.UserID = mod.UserID
	c.CustomerName = mod.CustomerName
	c.RoomNumber = mod.RoomNumber
	c.Type = mod.Type
	c.Status = mod.Status
	c.CheckInDate = mod.CheckInDate
	c.CheckOutDate = mod.CheckOutDate
	c.Metadata.FromModel(mod.Metadata)
}

type GetCheckInOutsResponse struct {
	Records   []CheckInOutResponse `json:"records"`
	TotalPage int                  `json:"total_page"`
	TotalData int                  `json:"total_data"`
}

func (g *GetCheckInOutsResponse) FromModels(models []model.CheckInOut, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Records = make([]CheckInOutResponse, len(models))
	for i, mod := range models {
		g.Records[i].FromModel(mod)
	}
}
