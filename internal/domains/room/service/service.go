package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/infras/postgres"
	auditModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/model"
	auditRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/repository"
	bookingRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/repository"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/repository"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/cache"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/failure"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, roomNumber string) (dto.RoomResponse, error)
	GetAvailableByType(ctx context.Context, roomType string) (dto.GetRoomsResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, roomNumber string) error
	Delete(ctx context.Context, roomNumber string) error
	SyncStatus(ctx context.Context, roomNumber string) error
}

type serviceImpl struct {
	repo       repository.Room
	bookings   bookingRepo.Booking
	audit      auditRepo.RoomAudit
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Room, bookings bookingRepo.Booking, audit auditRepo.RoomAudit, transactor postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:       repo,
		bookings:   bookings,
		audit:      audit,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func filterByNumber(roomNumber string) gDto.FilterGroup {
	return shared.FilterByID(roomNumber, model.FieldRoomNumber, model.TableName)
}

func snapshot(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return constant.Empty
	}

	return string(raw)
}

func (s *serviceImpl) auditEntry(roomNumber, action, oldValue, newValue, user string) auditModel.RoomAuditLog {
	return auditModel.RoomAuditLog{
		ID:          uuid.NewString(),
		RoomNumber:  roomNumber,
		Action:      action,
		OldValue:    oldValue,
		NewValue:    newValue,
		PerformedBy: user,
		CreatedAt:   timezone.Now(),
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	exist, err := s.repo.Exist(ctx, filterByNumber(req.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if exist {
		return failure.Conflict("room number already exists") //nolint:wrapcheck
	}

	room := req.ToModel(user)

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, room); err != nil {
			return err
		}

		return s.audit.InsertTx(ctx, tx, s.auditEntry(room.RoomNumber, constant.AuditActionAdd, constant.Empty, snapshot(room), user))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, roomNumber string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, roomNumber)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, filterByNumber(roomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room") //nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// GetAvailableByType lists rooms of one type that are currently open
// for a walk-in or a new booking.
func (s *serviceImpl) GetAvailableByType(ctx context.Context, roomType string) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableByType")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomType, Value: roomType, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldStatus, Value: constant.RoomStatusAvailable, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldRoomNumber, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return res, fmt.Errorf("failed to get available rooms: %w", err)
	}

	res.FromModels(models, len(models), 0)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, roomNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := filterByNumber(roomNumber)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return err
		}

		return s.audit.InsertTx(ctx, tx, s.auditEntry(roomNumber, constant.AuditActionEdit, snapshot(current), snapshot(updatedFields), user))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return err
	}

	s.invalidate(ctx, roomNumber)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, roomNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := filterByNumber(roomNumber)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room") //nolint:wrapcheck
	}

	active, err := s.bookings.GetActiveByRoom(ctx, roomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check active bookings")

		return fmt.Errorf("failed to check active bookings: %w", err)
	}

	if len(active) > 0 {
		return failure.Conflict("room still has active bookings") //nolint:wrapcheck
	}

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return err
		}

		return s.audit.InsertTx(ctx, tx, s.auditEntry(roomNumber, constant.AuditActionDelete, snapshot(current), constant.Empty, user))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return err
	}

	s.invalidate(ctx, roomNumber)

	return nil
}

// SyncStatus recomputes the room's status from its bookings: any
// pending or confirmed booking keeps the room occupied, otherwise it
// goes back to available. The operation is idempotent.
func (s *serviceImpl) SyncStatus(ctx context.Context, roomNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := filterByNumber(roomNumber)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room") //nolint:wrapcheck
	}

	active, err := s.bookings.GetActiveByRoom(ctx, roomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check active bookings")

		return fmt.Errorf("failed to check active bookings: %w", err)
	}

	status := constant.RoomStatusAvailable
	if len(active) > 0 {
		status = constant.RoomStatusOccupied
	}

	if current.Status == status {
		return nil
	}

	updatedFields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return err
		}

		return s.audit.InsertTx(ctx, tx, s.auditEntry(roomNumber, constant.AuditActionEdit, current.Status, status, user))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to sync room status")

		return err
	}

	s.invalidate(ctx, roomNumber)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, roomNumber string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, roomNumber)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}
