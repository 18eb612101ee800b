package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/failure"
	gModel "github.com/reagan13/beach-management-system-java-sub000/shared/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

type CreateAbsenceRequest struct {
	UserID   string `json:"user_id"   validate:"required,uuid4"`
	DateFrom string `json:"date_from" validate:"required"`
	DateTo   string `json:"date_to"   validate:"required"`
	Reason   string `json:"reason"    validate:"required,max=255"`
}

func (c *CreateAbsenceRequest) ParseDates() (from, to time.Time, err error) {
	from, err = time.Parse(constant.DateOnlyFormat, c.DateFrom)
	if err != nil {
		return from, to, failure.BadRequestFromString("date_from must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	to, err = time.Parse(constant.DateOnlyFormat, c.DateTo)
	if err != nil {
		return from, to, failure.BadRequestFromString("date_to must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	if to.Before(from) {
		return from, to, failure.BadRequestFromString("date_to must not be before date_from") //nolint:wrapcheck
	}

	return from, to, nil
}

func (c *CreateAbsenceRequest) ToModel(user string, from, to time.Time) model.Absence {
	return model.Absence{
		ID:       uuid.NewString(),
		UserID:   c.UserID,
		DateFrom: from,
		DateTo:   to,
		Reason:   c.Reason,
		Status:   model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAbsenceRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending approved rejected"`
}

type AbsenceResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Reason   string `json:"reason"`
	Status   string `json:"status"`
	gDto.Metadata
}

func (a *AbsenceResponse) FromModel(mod model.Absence) {
	a.ID = mod.ID
	a.UserID = mod.UserID
	a.DateFrom = mod.DateFrom.Format(constant.DateOnlyFormat)
	a.DateTo = mod.DateTo.Format(constant.DateOnlyFormat)
	a.Reason = mod.Reason
	a.Status = mod.Status
	a.Metadata.FromModel(mod.Metadata)
}

type GetAbsencesResponse struct {
	Absences  []AbsenceResponse `json:"absences"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetAbsencesResponse) FromModels(models []model.Absence, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Absences = make([]AbsenceResponse, len(models))
	for i, mod := range models {
		g.Absences[i].FromModel(mod)
	}
}
