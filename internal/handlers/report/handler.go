package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/report/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/report/service"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	"github.com/reagan13/beach-management-system-java-sub000/transport/http/response"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/bookings", handler.BookingSummary)
		routerGroup.Get("/payments", handler.PaymentSummary)
	})
}

// BookingSummary exports a booking summary report as CSV.
// @Summary Export booking summary
// @Description Build a CSV of bookings in the given date range and upload it to object storage.
// @Tags Report
// @Accept json
// @Produce json
// @Param date_from query string false "Start date (YYYY-MM-DD)"
// @Param date_to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ReportResponse] "Report generated successfully"
// @Failure 500 {object} response.Error
// @Router /v1/reports/bookings [get]
// @Security BearerAuth
func (handler *Handler) BookingSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingSummary")
	defer scope.End()

	req := dto.GenerateReportRequest{}
	req.FromRequest(r)

	res, err := handler.service.BookingSummary(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate booking report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking report generated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// PaymentSummary exports a payment summary report as CSV.
// @Summary Export payment summary
// @Description Build a CSV of payments in the given date range and upload it to object storage.
// @Tags Report
// @Accept json
// @Produce json
// @Param date_from query string false "Start date (YYYY-MM-DD)"
// @Param date_to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ReportResponse] "Report generated successfully"
// @Failure 500 {object} response.Error
// @Router /v1/reports/payments [get]
// @Security BearerAuth
func (handler *Handler) PaymentSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PaymentSummary")
	defer scope.End()

	req := dto.GenerateReportRequest{}
	req.FromRequest(r)

	res, err := handler.service.PaymentSummary(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate payment report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment report generated successfully")

	response.WithJSON(w, http.StatusOK, res)
}
