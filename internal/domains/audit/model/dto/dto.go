package dto

import (
	"net/http"
	"time"

	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
)

const (
	requestParamSubject     = "subject"
	requestParamSubjectID   = "subject_id"
	requestParamAction      = "action"
	requestParamPerformedBy = "performed_by"
	requestParamDateFrom    = "date_from"
	requestParamDateTo      = "date_to"
)

// SearchAuditRequest is the multi-field search over the trail. All
// provided fields are combined with AND.
type SearchAuditRequest struct {
	Subject     string
	SubjectID   string
	Action      string
	PerformedBy string
	DateFrom    string
	DateTo      string
}

func (s *SearchAuditRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	s.Subject = query.Get(requestParamSubject)
	s.SubjectID = query.Get(requestParamSubjectID)
	s.Action = query.Get(requestParamAction)
	s.PerformedBy = query.Get(requestParamPerformedBy)
	s.DateFrom = query.Get(requestParamDateFrom)
	s.DateTo = query.Get(requestParamDateTo)
}

func (s *SearchAuditRequest) ToFilter() gDto.FilterGroup {
	filters := []any{}

	if s.Subject != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldSubject, Value: s.Subject, Operator: gDto.FilterOperatorEq})
	}

	if s.SubjectID != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldSubjectID, Value: s.SubjectID, Operator: gDto.FilterOperatorEq})
	}

	if s.Action != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldAction, Value: s.Action, Operator: gDto.FilterOperatorEq})
	}

	if s.PerformedBy != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldPerformedBy, Value: s.PerformedBy, Operator: gDto.FilterOperatorLike})
	}

	if from, err := time.Parse(constant.DateOnlyFormat, s.DateFrom); err == nil {
		filters = append(filters, gDto.Filter{ArgName: "created_from", Field: model.FieldCreatedAt, Value: from, Operator: gDto.FilterOperatorGreaterEq})
	}

	if to, err := time.Parse(constant.DateOnlyFormat, s.DateTo); err == nil {
		filters = append(filters, gDto.Filter{ArgName: "created_to", Field: model.FieldCreatedAt, Value: to.AddDate(0, 0, 1), Operator: gDto.FilterOperatorLessEq})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

type AuditLogResponse struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	SubjectID   string    `json:"subject_id"`
	Action      string    `json:"action"`
	Details     string    `json:"details"`
	PerformedBy string    `json:"performed_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *AuditLogResponse) FromModel(mod model.AuditLog) {
	a.ID = mod.ID
	a.Subject = mod.Subject
	a.SubjectID = mod.SubjectID
	a.Action = mod.Action
	a.Details = mod.Details
	a.PerformedBy = mod.PerformedBy
	a.CreatedAt = mod.CreatedAt
}

type GetAuditLogsResponse struct {
	Logs      []AuditLogResponse `json:"logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetAuditLogsResponse) FromModels(models []model.AuditLog, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Logs = make([]AuditLogResponse, len(models))
	for i, mod := range models {
		g.Logs[i].FromModel(mod)
	}
}

type RoomAuditLogResponse struct {
	ID          string    `json:"id"`
	RoomNumber  string    `json:"room_number"`
	Action      string    `json:"action"`
	OldValue    string    `json:"old_value"`
	NewValue    string    `json:"new_value"`
	PerformedBy string    `json:"performed_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *RoomAuditLogResponse) FromModel(mod model.RoomAuditLog) {
	a.ID = mod.ID
	a.RoomNumber = mod.RoomNumber
	a.Action = mod.Action
	a.OldValue = mod.OldValue
	a.NewValue = mod.NewValue
	a.PerformedBy = mod.PerformedBy
	a.CreatedAt = mod.CreatedAt
}

type GetRoomAuditLogsResponse struct {
	Logs      []RoomAuditLogResponse `json:"logs"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (g *GetRoomAuditLogsResponse) FromModels(models []model.RoomAuditLog, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Logs = make([]RoomAuditLogResponse, len(models))
	for i, mod := range models {
		g.Logs[i].FromModel(mod)
	}
}

type BookingAuditLogResponse struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"booking_id"`
	Action      string    `json:"action"`
	OldValue    string    `json:"old_value"`
	NewValue    string    `json:"new_value"`
	PerformedBy string    `json:"performed_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *BookingAuditLogResponse) FromModel(mod model.BookingAuditLog) {
	a.ID = mod.ID
	a.BookingID = mod.BookingID
	a.Action = mod.Action
	a.OldValue = mod.OldValue
	a.NewValue = mod.NewValue
	a.PerformedBy = mod.PerformedBy
	a.CreatedAt = mod.CreatedAt
}

type GetBookingAuditLogsResponse struct {
	Logs      []BookingAuditLogResponse `json:"logs"`
	TotalPage int                       `json:"total_page"`
	TotalData int                       `json:"total_data"`
}

func (g *GetBookingAuditLogsResponse) FromModels(models []model.BookingAuditLog, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Logs = make([]BookingAuditLogResponse, len(models))
	for i, mod := range models {
		g.Logs[i].FromModel(mod)
	}
}

type ActionCount struct {
	Action string `json:"action"`
	Total  int    `json:"total"`
}

type ActionSummaryResponse struct {
	Summaries []ActionCount `json:"summaries"`
}

func (a *ActionSummaryResponse) FromModels(models []model.ActionSummary) {
	a.Summaries = make([]ActionCount, len(models))
	for i, mod := range models {
		a.Summaries[i] = ActionCount{Action: mod.Action, Total: mod.Total}
	}
}
