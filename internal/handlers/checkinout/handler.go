package checkinout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/service"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/validator"
	"github.com/reagan13/beach-management-system-java-sub000/transport/http/response"
)

type Handler struct {
	service service.CheckInOut
	otel    otel.Otel
}

func New(service service.CheckInOut, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/check-in-out", func(routerGroup chi.Router) {
		routerGroup.Post("/walk-in", handler.WalkIn)
		routerGroup.Post("/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Get("/", handler.GetRecords)
		routerGroup.Get("/{id}", handler.GetRecord)
	})
}

// WalkIn checks a walk-in guest into a room without a prior booking.
// @Summary Check in a walk-in guest
// @Description Create a confirmed booking and check-in record for a walk-in guest.
// @Tags CheckInOut
// @Accept json
// @Produce json
// @Param request body dto.WalkInRequest true "Walk-In Request"
// @Success 201 {object} response.Data[dto.CheckInOutResponse] "Guest checked in successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/check-in-out/walk-in [post]
// @Security BearerAuth
func (handler *Handler) WalkIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".WalkIn")
	defer scope.End()

	req := dto.WalkInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.WalkIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in walk-in guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Walk-in guest checked in successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// CheckIn checks a guest with a confirmed booking into their room.
// @Summary Check in a booked guest
// @Description Create a check-in record for a confirmed booking.
// @Tags CheckInOut
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-In Request"
// @Success 201 {object} response.Data[dto.CheckInOutResponse] "Guest checked in successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/check-in-out/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Guest checked in successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// CheckOut checks a guest out of their room.
// @Summary Check out a guest
// @Description Close the check-in record and send the room to maintenance.
// @Tags CheckInOut
// @Accept json
// @Produce json
// @Param id path string true "Check-in record ID"
// @Success 200 {object} response.Message "Guest checked out successfully"
// @Failure 404 {object} response.Error
// @Router /v1/check-in-out/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.CheckOut(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Guest checked out successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest checked out successfully")
}

// GetRecords retrieves all check-in and check-out records.
// @Summary Get all check-in records
// @Description Retrieve all check-in records with optional filtering and pagination.
// @Tags CheckInOut
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_number query string false "Filter by room number"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetCheckInOutsResponse] "List of check-in records"
// @Failure 500 {object} response.Error
// @Router /v1/check-in-out [get]
// @Security BearerAuth
func (handler *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecords")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldRoomNumber, model.FieldStatus, model.FieldType} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	records, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-in records")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Check-in records retrieved successfully")

	response.WithJSON(w, http.StatusOK, records)
}

// GetRecord retrieves a check-in record by its ID.
// @Summary Get a check-in record by ID
// @Description Retrieve a check-in record by its unique identifier.
// @Tags CheckInOut
// @Accept json
// @Produce json
// @Param id path string true "Check-in record ID"
// @Success 200 {object} response.Data[dto.CheckInOutResponse] "Check-in record details"
// @Failure 404 {object} response.Error
// @Router /v1/check-in-out/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecord")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	record, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-in record")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Check-in record retrieved successfully")

	response.WithJSON(w, http.StatusOK, record)
}
