package absence

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/service"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/validator"
	"github.com/reagan13/beach-management-system-java-sub000/transport/http/response"
)

type Handler struct {
	service service.Absence
	otel    otel.Otel
}

func New(service service.Absence, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/absences", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAbsence)
		routerGroup.Get("/", handler.GetAbsences)
		routerGroup.Get("/{id}", handler.GetAbsence)
		routerGroup.Patch("/{id}", handler.UpdateAbsenceStatus)
		routerGroup.Delete("/{id}", handler.DeleteAbsence)
	})
}

// CreateAbsence files a new staff absence request.
// @Summary File an absence request
// @Description File a leave request for a staff member over a date range.
// @Tags Absence
// @Accept json
// @Produce json
// @Param request body dto.CreateAbsenceRequest true "Create Absence Request"
// @Success 201 {object} response.Message "Absence request filed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/absences [post]
// @Security BearerAuth
func (handler *Handler) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAbsence")
	defer scope.End()

	req := dto.CreateAbsenceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create absence")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Absence request filed successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Absence request filed successfully")
}

// GetAbsences retrieves all absence requests based on query parameters.
// @Summary Get all absence requests
// @Description Retrieve all absence requests with optional filtering and pagination.
// @Tags Absence
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by staff member"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetAbsencesResponse] "List of absence requests"
// @Failure 500 {object} response.Error
// @Router /v1/absences [get]
// @Security BearerAuth
func (handler *Handler) GetAbsences(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAbsences")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldUserID, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	absences, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get absences")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Absences retrieved successfully")

	response.WithJSON(w, http.StatusOK, absences)
}

// GetAbsence retrieves an absence request by its ID.
// @Summary Get an absence request by ID
// @Description Retrieve an absence request by its unique identifier.
// @Tags Absence
// @Accept json
// @Produce json
// @Param id path string true "Absence ID"
// @Success 200 {object} response.Data[dto.AbsenceResponse] "Absence request details"
// @Failure 404 {object} response.Error
// @Router /v1/absences/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAbsence(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAbsence")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	absence, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get absence")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Absence retrieved successfully")

	response.WithJSON(w, http.StatusOK, absence)
}

// UpdateAbsenceStatus approves or rejects an absence request.
// @Summary Decide an absence request
// @Description Approve or reject a pending absence request.
// @Tags Absence
// @Accept json
// @Produce json
// @Param id path string true "Absence ID"
// @Param request body dto.UpdateAbsenceRequest true "Update Absence Request"
// @Success 200 {object} response.Message "Absence request updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/absences/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAbsenceStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAbsenceStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAbsenceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update absence")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Absence request updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Absence request updated successfully")
}

// DeleteAbsence deletes an absence request by its ID.
// @Summary Delete an absence request
// @Description Delete an absence request using its unique identifier.
// @Tags Absence
// @Accept json
// @Produce json
// @Param id path string true "Absence ID"
// @Success 200 {object} response.Message "Absence request deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/absences/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAbsence")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete absence")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Absence request deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Absence request deleted successfully")
}
