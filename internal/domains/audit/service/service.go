package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/repository"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

type Audit interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditLogsResponse, error)
	GetRoomLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomAuditLogsResponse, error)
	GetBookingLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingAuditLogsResponse, error)
	Summary(ctx context.Context, filter gDto.FilterGroup) (dto.ActionSummaryResponse, error)
	Cleanup(ctx context.Context) error
}

type serviceImpl struct {
	repo        repository.Audit
	roomRepo    repository.RoomAudit
	bookingRepo repository.BookingAudit
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Audit, roomRepo repository.RoomAudit, bookingRepo repository.BookingAudit, cfg *config.Config, otel otel.Otel) Audit {
	return &serviceImpl{
		repo:        repo,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetRoomLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.roomRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room audit logs")

		return res, fmt.Errorf("failed to count room audit logs: %w", err)
	}

	models, err := s.roomRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room audit logs")

		return res, fmt.Errorf("failed to get room audit logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetBookingLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookingLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking audit logs")

		return res, fmt.Errorf("failed to count booking audit logs: %w", err)
	}

	models, err := s.bookingRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking audit logs")

		return res, fmt.Errorf("failed to get booking audit logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Summary(ctx context.Context, filter gDto.FilterGroup) (res dto.ActionSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	summaries, err := s.repo.Summary(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize audit logs")

		return res, fmt.Errorf("failed to summarize audit logs: %w", err)
	}

	res.FromModels(summaries)

	return res, nil
}

// Cleanup removes trail entries older than the configured retention
// window from all three audit tables.
func (s *serviceImpl) Cleanup(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cleanup")
	defer scope.End()
	defer scope.TraceIfError(err)

	cutoff := timezone.Now().AddDate(0, 0, -s.cfg.Audit.RetentionDays)
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldCreatedAt, Value: cutoff, Operator: gDto.FilterOperatorLessEq},
		},
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to clean up audit logs")

		return fmt.Errorf("failed to clean up audit logs: %w", err)
	}

	if err = s.roomRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to clean up room audit logs")

		return fmt.Errorf("failed to clean up room audit logs: %w", err)
	}

	if err = s.bookingRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to clean up booking audit logs")

		return fmt.Errorf("failed to clean up booking audit logs: %w", err)
	}

	log.Info().Time("cutoff", cutoff).Msg("audit trail cleanup finished")

	return nil
}
