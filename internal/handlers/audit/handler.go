package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/service"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/transport/http/response"
)

type Handler struct {
	service service.Audit
	otel    otel.Otel
}

func New(service service.Audit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/audit-logs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAuditLogs)
		routerGroup.Get("/rooms", handler.GetRoomAuditLogs)
		routerGroup.Get("/bookings", handler.GetBookingAuditLogs)
		routerGroup.Get("/summary", handler.GetActionSummary)
		routerGroup.Delete("/cleanup", handler.Cleanup)
	})
}

// GetAuditLogs searches the general audit trail.
// @Summary Search audit logs
// @Description Search the audit trail by subject, action, actor and date range.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query dto.SearchAuditRequest false "Search parameters"
// @Success 200 {object} response.Data[dto.GetAuditLogsResponse] "List of audit logs"
// @Failure 500 {object} response.Error
// @Router /v1/audit-logs [get]
// @Security BearerAuth
func (handler *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	search := dto.SearchAuditRequest{}
	search.FromRequest(r)

	logs, err := handler.service.GetAll(ctx, queryParams, search.ToFilter())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Audit logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

// GetRoomAuditLogs searches the room audit trail.
// @Summary Search room audit logs
// @Description Search room status and detail changes by date range and actor.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetRoomAuditLogsResponse] "List of room audit logs"
// @Failure 500 {object} response.Error
// @Router /v1/audit-logs/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRoomAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	search := dto.SearchAuditRequest{}
	search.FromRequest(r)

	logs, err := handler.service.GetRoomLogs(ctx, queryParams, search.ToFilter())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room audit logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room audit logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

// GetBookingAuditLogs searches the booking audit trail.
// @Summary Search booking audit logs
// @Description Search booking lifecycle changes by date range and actor.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingAuditLogsResponse] "List of booking audit logs"
// @Failure 500 {object} response.Error
// @Router /v1/audit-logs/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookingAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	search := dto.SearchAuditRequest{}
	search.FromRequest(r)

	logs, err := handler.service.GetBookingLogs(ctx, queryParams, search.ToFilter())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking audit logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking audit logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

// GetActionSummary aggregates the audit trail by action.
// @Summary Get audit action summary
// @Description Count audit entries grouped by action within the search window.
// @Tags Audit
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ActionSummaryResponse] "Audit action counts"
// @Failure 500 {object} response.Error
// @Router /v1/audit-logs/summary [get]
// @Security BearerAuth
func (handler *Handler) GetActionSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActionSummary")
	defer scope.End()

	search := dto.SearchAuditRequest{}
	search.FromRequest(r)

	summary, err := handler.service.Summary(ctx, search.ToFilter())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Audit summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

// Cleanup removes audit entries older than the retention window.
// @Summary Clean up old audit logs
// @Description Delete audit entries beyond the configured retention period.
// @Tags Audit
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Audit logs cleaned up successfully"
// @Failure 500 {object} response.Error
// @Router /v1/audit-logs/cleanup [delete]
// @Security BearerAuth
func (handler *Handler) Cleanup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cleanup")
	defer scope.End()

	if err := handler.service.Cleanup(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clean up audit logs")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Audit logs cleaned up successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Audit logs cleaned up successfully")
}
