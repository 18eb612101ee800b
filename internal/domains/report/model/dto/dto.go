package dto

import (
	"net/http"
	"time"

	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
)

const (
	requestParamDateFrom = "date_from"
	requestParamDateTo   = "date_to"
)

// GenerateReportRequest narrows a report to a date range. Both bounds
// are optional and an empty request exports everything.
type GenerateReportRequest struct {
	DateFrom string
	DateTo   string
}

func (g *GenerateReportRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	g.DateFrom = query.Get(requestParamDateFrom)
	g.DateTo = query.Get(requestParamDateTo)
}

// ToFilter builds a range filter on the given date column. Malformed
// bounds are ignored rather than rejected.
func (g *GenerateReportRequest) ToFilter(table, field string) gDto.FilterGroup {
	filters := []any{}

	if from, err := time.Parse(constant.DateOnlyFormat, g.DateFrom); err == nil {
		filters = append(filters, gDto.Filter{ArgName: "range_from", Table: table, Field: field, Value: from, Operator: gDto.FilterOperatorGreaterEq})
	}

	if to, err := time.Parse(constant.DateOnlyFormat, g.DateTo); err == nil {
		filters = append(filters, gDto.Filter{ArgName: "range_to", Table: table, Field: field, Value: to.AddDate(0, 0, 1), Operator: gDto.FilterOperatorLessEq})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

type ReportResponse struct {
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	Rows        int       `json:"rows"`
	GeneratedAt time.Time `json:"generated_at"`
}
