package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/repository"
	userModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/model"
	userRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/repository"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/cache"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/failure"
)

const (
	cacheGetAbsence    = "absence:get"
	cacheGetAllAbsence = "absence:gets"
	cacheCountAbsence  = "absence:count"
)

type Absence interface {
	Create(ctx context.Context, req dto.CreateAbsenceRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAbsencesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AbsenceResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateAbsenceRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Absence
	users userRepo.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Absence, users userRepo.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Absence {
	return &serviceImpl{
		repo:  repo,
		users: users,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAbsenceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to, err := req.ParseDates()
	if err != nil {
		return err
	}

	exist, err := s.users.Exist(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user existence")

		return fmt.Errorf("failed to check user existence: %w", err)
	}

	if !exist {
		return failure.NotFound("user") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user, from, to)); err != nil {
		log.Error().Err(err).Msg("failed to create absence")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAbsence)
		shared.InvalidateCaches(c, s.cache, cacheCountAbsence)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAbsencesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAbsence, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for absences")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count absences")

		return res, fmt.Errorf("failed to count absences: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get absences")

		return res, fmt.Errorf("failed to get absences: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save absences to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAbsence, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count absences")

		return res, fmt.Errorf("failed to count absences: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save absence count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AbsenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAbsence, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	absence, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get absence")

		return res, fmt.Errorf("failed to get absence: %w", err)
	}

	if absence.ID == constant.Empty {
		return res, failure.NotFound("absence") //nolint:wrapcheck
	}

	res.FromModel(absence)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save absence to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateAbsenceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	absence, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get absence")

		return fmt.Errorf("failed to get absence: %w", err)
	}

	if absence.ID == constant.Empty {
		return failure.NotFound("absence") //nolint:wrapcheck
	}

	// Re-running a decision with the same status is a no-op.
	if absence.Status == req.Status {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update absence")

		return fmt.Errorf("failed to update absence: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check absence existence")

		return fmt.Errorf("failed to check absence existence: %w", err)
	}

	if !exist {
		return failure.NotFound("absence") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete absence")

		return fmt.Errorf("failed to delete absence: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAbsence, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete absence cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAbsence)
		shared.InvalidateCaches(c, s.cache, cacheCountAbsence)
	}()
}
