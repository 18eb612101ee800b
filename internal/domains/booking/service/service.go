package service

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
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/repository"
	roomModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/model"
	roomRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/repository"
	roomService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/service"
	"github.com/reagan13/beach-management-system-java-sub000/internal/events"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/cache"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/failure"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Booking
	rooms      roomRepo.Room
	roomSvc    roomService.Room
	audit      auditRepo.BookingAudit
	transactor postgres.Transactor
	publisher  events.Publisher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Booking, rooms roomRepo.Room, roomSvc roomService.Room, audit auditRepo.BookingAudit, transactor postgres.Transactor, publisher events.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:       repo,
		rooms:      rooms,
		roomSvc:    roomSvc,
		audit:      audit,
		transactor: transactor,
		publisher:  publisher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func snapshot(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return constant.Empty
	}

	return string(raw)
}

func (s *serviceImpl) auditEntry(bookingID, action, oldValue, newValue, user string) auditModel.BookingAuditLog {
	return auditModel.BookingAuditLog{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Action:      action,
		OldValue:    oldValue,
		NewValue:    newValue,
		PerformedBy: user,
		CreatedAt:   timezone.Now(),
	}
}

// checkConflicts rejects the candidate stay when any pending or
// confirmed booking on the same room overlaps it.
func (s *serviceImpl) checkConflicts(ctx context.Context, candidate model.Booking) error {
	active, err := s.repo.GetActiveByRoom(ctx, candidate.RoomNumber)
	if err != nil {
		return fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	for _, other := range active {
		if candidate.ConflictsWith(other) {
			return failure.Conflict("room is already booked for the requested dates") //nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	room, err := s.rooms.Get(ctx, shared.FilterByID(req.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room") //nolint:wrapcheck
	}

	if !room.Active {
		return res, failure.Conflict("room is not active") //nolint:wrapcheck
	}

	booking := req.ToModel(user, checkIn, checkOut)

	if err = s.checkConflicts(ctx, booking); err != nil {
		return res, err
	}

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		return s.audit.InsertTx(ctx, tx, s.auditEntry(booking.ID, constant.AuditActionAdd, constant.Empty, snapshot(booking), user))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.afterChange(ctx, booking, events.TypeBookingCreated)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking") //nolint:wrapcheck
	}

	if current.Status == constant.BookingStatusCancelled {
		return failure.Conflict("cancelled bookings cannot be edited") //nolint:wrapcheck
	}

	checkIn, checkOut, err := req.ParseDates(current)
	if err != nil {
		return err
	}

	candidate := current
	candidate.CheckInDate = checkIn
	candidate.CheckOutDate = checkOut

	if err = s.checkConflicts(ctx, candidate); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	updatedFields[model.FieldCheckInDate] = checkIn
	updatedFields[model.FieldCheckOutDate] = checkOut

	// The new-value snapshot mirrors the old one, so the audit trail
	// compares whole bookings rather than a booking against a patch.
	updated := candidate
	if req.CustomerName != constant.Empty {
		updated.CustomerName = req.CustomerName
	}

	if req.GuestCount > 0 {
		updated.GuestCount = req.GuestCount
	}

	if req.TotalPrice > 0 {
		updated.TotalPrice = req.TotalPrice
	}

	updated.ModifiedAt = timezone.Now()
	updated.ModifiedBy = user

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return err
		}

		return s.audit.InsertTx(ctx, tx, s.auditEntry(id, constant.AuditActionEdit, snapshot(current), snapshot(updated), user))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return err
	}

	s.afterChange(ctx, updated, constant.Empty)

	return nil
}

// Confirm moves a pending booking to confirmed. Confirming an already
// confirmed booking is a no-op.
func (s *serviceImpl) Confirm(ctx context.Context, id string) error {
	return s.transition(ctx, id, constant.BookingStatusConfirmed, constant.AuditActionConfirm, events.TypeBookingConfirmed)
}

// Cancel moves a booking to cancelled, releasing the room for other
// stays. Cancelling twice is a no-op.
func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	return s.transition(ctx, id, constant.BookingStatusCancelled, constant.AuditActionCancel, events.TypeBookingCancelled)
}

func (s *serviceImpl) transition(ctx context.Context, id, status, action, eventType string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking") //nolint:wrapcheck
	}

	if current.Status == status {
		return nil
	}

	if status == constant.BookingStatusConfirmed && current.Status != constant.BookingStatusPending {
		return failure.Conflict("only pending bookings can be confirmed") //nolint:wrapcheck
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

		return s.audit.InsertTx(ctx, tx, s.auditEntry(id, action, current.Status, status, user))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return err
	}

	changed := current
	changed.Status = status
	s.afterChange(ctx, changed, eventType)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking") //nolint:wrapcheck
	}

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return err
		}

		return s.audit.InsertTx(ctx, tx, s.auditEntry(id, constant.AuditActionDelete, snapshot(current), constant.Empty, user))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return err
	}

	s.afterChange(ctx, current, constant.Empty)

	return nil
}

// afterChange runs the fire-and-forget follow-ups of a committed
// booking write: event publication, room status recomputation and
// cache invalidation. Failures are logged, never surfaced.
func (s *serviceImpl) afterChange(ctx context.Context, booking model.Booking, eventType string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if eventType != constant.Empty {
			event := events.BookingEvent{
				Type:       eventType,
				BookingID:  booking.ID,
				RoomNumber: booking.RoomNumber,
				UserID:     booking.UserID,
				Status:     booking.Status,
				OccurredAt: timezone.Now(),
			}

			if err := s.publisher.Publish(c, event); err != nil {
				log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
			}
		}

		if err := s.roomSvc.SyncStatus(c, booking.RoomNumber); err != nil {
			log.Error().Err(err).Str("room", booking.RoomNumber).Msg("failed to sync room status")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
