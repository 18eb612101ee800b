package dto

import (
	"github.com/google/uuid"

	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	gModel "github.com/reagan13/beach-management-system-java-sub000/shared/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

type CreatePaymentRequest struct {
	UserID      string  `json:"user_id"     validate:"required,uuid4"`
	BookingID   *string `json:"booking_id"  validate:"omitempty,uuid4"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Method      string  `json:"method"      validate:"required,max=50"`
	Description string  `json:"description" validate:"omitempty,max=255"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	return model.Payment{
		ID:          uuid.NewString(),
		UserID:      c.UserID,
		BookingID:   c.BookingID,
		Amount:      c.Amount,
		Method:      c.Method,
		Status:      constant.PaymentStatusPending,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	Status      string `db:"status"      json:"status"      validate:"omitempty,oneof=pending completed failed"`
	Description string `db:"description" json:"description" validate:"omitempty,max=255"`
}

type PaymentResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	BookingID   *string `json:"booking_id,omitempty"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	gDto.Metadata
}

func (p *PaymentResponse) FromModel(mod model.Payment) {
	p.ID = mod.ID
	p.UserID = mod.UserID
	p.BookingID = mod.BookingID
	p.Amount = mod.Amount
	p.Method = mod.Method
	p.Status = mod.Status
	p.Description = mod.Description
	p.Metadata.FromModel(mod.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		g.Payments[i].FromModel(mod)
	}
}
