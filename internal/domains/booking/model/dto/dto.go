package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/failure"
	gModel "github.com/reagan13/beach-management-system-java-sub000/shared/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

type CreateBookingRequest struct {
	RoomNumber   string  `json:"room_number"    validate:"required,max=20"`
	UserID       string  `json:"user_id"        validate:"required,uuid4"`
	CustomerName string  `json:"customer_name"  validate:"required,max=100"`
	CheckInDate  string  `json:"check_in_date"  validate:"required"`
	CheckOutDate string  `json:"check_out_date" validate:"required"`
	GuestCount   int     `json:"guest_count"    validate:"required,min=1"`
	TotalPrice   float64 `json:"total_price"    validate:"required,gt=0"`
}

// ParseDates turns the date-only strings into times. The stay must end
// strictly after it starts, so same-day windows are rejected too.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in_date must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out_date must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out_date must be after check_in_date") //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		RoomNumber:   c.RoomNumber,
		UserID:       c.UserID,
		CustomerName: c.CustomerName,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestCount:   c.GuestCount,
		TotalPrice:   c.TotalPrice,
		Status:       constant.BookingStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	CustomerName string  `db:"customer_name" json:"customer_name"  validate:"omitempty,max=100"`
	CheckInDate  string  `json:"check_in_date"                     validate:"omitempty"`
	CheckOutDate string  `json:"check_out_date"                    validate:"omitempty"`
	GuestCount   int     `db:"guest_count"   json:"guest_count"    validate:"omitempty,min=1"`
	TotalPrice   float64 `db:"total_price"   json:"total_price"    validate:"omitempty,gt=0"`
}

// ParseDates resolves the requested stay window against the booking's
// current one. Either date may be omitted; the stored value fills the
// gap.
func (u *UpdateBookingRequest) ParseDates(current model.Booking) (checkIn, checkOut time.Time, err error) {
	checkIn = current.CheckInDate
	checkOut = current.CheckOutDate

	if u.CheckInDate != "" {
		checkIn, err = time.Parse(constant.DateOnlyFormat, u.CheckInDate)
		if err != nil {
			return checkIn, checkOut, failure.BadRequestFromString("check_in_date must be formatted as YYYY-MM-DD") //nolint:wrapcheck
		}
	}

	if u.CheckOutDate != "" {
		checkOut, err = time.Parse(constant.DateOnlyFormat, u.CheckOutDate)
		if err != nil {
			return checkIn, checkOut, failure.BadRequestFromString("check_out_date must be formatted as YYYY-MM-DD") //nolint:wrapcheck
		}
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out_date must be after check_in_date") //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

type BookingResponse struct {
	ID           string  `json:"id"`
	RoomNumber   string  `json:"room_number"`
	UserID       string  `json:"user_id"`
	CustomerName string  `json:"customer_name"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	GuestCount   int     `json:"guest_count"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(mod model.Booking) {
	b.ID = mod.ID
	b.RoomNumber = mod.RoomNumber
	b.UserID = mod.UserID
	b.CustomerName = mod.CustomerName
	b.CheckInDate = mod.CheckInDate.Format(constant.DateOnlyFormat)
	b.CheckOutDate = mod.CheckOutDate.Format(constant.DateOnlyFormat)
	b.GuestCount = mod.GuestCount
	b.TotalPrice = mod.TotalPrice
	b.Status = mod.Status
	b.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (b *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	b.TotalData = totalData
	b.TotalPage = shared.CalculateTotalPage(totalData, limit)

	b.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		b.Bookings[i].FromModel(mod)
	}
}
