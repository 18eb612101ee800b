package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/infras/postgres"
	auditModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/model"
	auditRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/repository"
	bookingModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model"
	bookingRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/repository"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/repository"
	roomModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/model"
	roomRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/repository"
	userModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/model"
	userRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/repository"
	"github.com/reagan13/beach-management-system-java-sub000/internal/events"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/cache"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/failure"
	gModel "github.com/reagan13/beach-management-system-java-sub000/shared/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

const (
	cacheGetRecord    = "checkinout:get"
	cacheGetAllRecord = "checkinout:gets"
	cacheCountRecord  = "checkinout:count"

	cachePrefixRoom    = "room:"
	cachePrefixBooking = "booking:"
)

type CheckInOut interface {
	WalkIn(ctx context.Context, req dto.WalkInRequest) (dto.CheckInOutResponse, error)
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.CheckInOutResponse, error)
	CheckOut(ctx context.Context, id string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCheckInOutsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CheckInOutResponse, error)
}

type serviceImpl struct {
	repo         repository.CheckInOut
	bookings     bookingRepo.Booking
	rooms        roomRepo.Room
	users        userRepo.User
	bookingAudit auditRepo.BookingAudit
	roomAudit    auditRepo.RoomAudit
	transactor   postgres.Transactor
	publisher    events.Publisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.CheckInOut, bookings bookingRepo.Booking, rooms roomRepo.Room, users userRepo.User, bookingAudit auditRepo.BookingAudit, roomAudit auditRepo.RoomAudit, transactor postgres.Transactor, publisher events.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) CheckInOut {
	return &serviceImpl{
		repo:         repo,
		bookings:     bookings,
		rooms:        rooms,
		users:        users,
		bookingAudit: bookingAudit,
		roomAudit:    roomAudit,
		transactor:   transactor,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// requireCustomer enforces that only customer accounts can be admitted
// as guests.
func (s *serviceImpl) requireCustomer(ctx context.Context, userID string) (userModel.User, error) {
	user, err := s.users.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound("user") //nolint:wrapcheck
	}

	if user.Role != userModel.RoleCustomer {
		return user, failure.Forbidden("only customer accounts can be checked in") //nolint:wrapcheck
	}

	return user, nil
}

func today() time.Time {
	day, _ := time.Parse(constant.DateOnlyFormat, timezone.Now().Format(constant.DateOnlyFormat))

	return day
}

func stayNights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	return nights
}

// WalkIn admits a guest with no prior booking. The backing confirmed
// booking, the stay record and the room status flip commit together.
func (s *serviceImpl) WalkIn(ctx context.Context, req dto.WalkInRequest) (res dto.CheckInOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WalkIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	if _, err = s.requireCustomer(ctx, req.UserID); err != nil {
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

	if room.Status != constant.RoomStatusAvailable {
		return res, failure.Conflict("room is not available") //nolint:wrapcheck
	}

	checkOut, err := req.ParseCheckOut()
	if err != nil {
		return res, err
	}

	checkIn := today()

	booking := bookingModel.Booking{
		ID:           uuid.NewString(),
		RoomNumber:   req.RoomNumber,
		UserID:       req.UserID,
		CustomerName: req.CustomerName,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestCount:   req.GuestCount,
		TotalPrice:   room.Price * float64(stayNights(checkIn, checkOut)),
		Status:       constant.BookingStatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	// A free room can still carry pending or confirmed future bookings,
	// so the walk-in stay runs the same conflict rule a booking would.
	active, err := s.bookings.GetActiveByRoom(ctx, req.RoomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflicts")

		return res, fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	for _, other := range active {
		if booking.ConflictsWith(other) {
			return res, failure.Conflict("room is already booked for the requested dates") //nolint:wrapcheck
		}
	}

	record := req.ToModel(user, booking.ID, checkIn)

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.bookings.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, tx, record); err != nil {
			return err
		}

		if err := s.occupyRoomTx(ctx, tx, room, user); err != nil {
			return err
		}

		return s.bookingAudit.InsertTx(ctx, tx, auditModel.BookingAuditLog{
			ID:          uuid.NewString(),
			BookingID:   booking.ID,
			Action:      constant.AuditActionAdd,
			NewValue:    constant.BookingStatusConfirmed,
			PerformedBy: user,
			CreatedAt:   timezone.Now(),
		})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to register walk-in")

		return res, err
	}

	s.afterChange(ctx, record, events.TypeGuestCheckedIn)

	res.FromModel(record)

	return res, nil
}

// CheckIn admits the guest of an existing booking. A still pending
// booking is confirmed on arrival in the same transaction; only
// cancelled bookings are turned away.
func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.CheckInOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	booking, err := s.bookings.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking") //nolint:wrapcheck
	}

	if booking.Status == constant.BookingStatusCancelled {
		return res, failure.Conflict("cancelled bookings cannot be checked in") //nolint:wrapcheck
	}

	if _, err = s.requireCustomer(ctx, booking.UserID); err != nil {
		return res, err
	}

	alreadyIn, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Value: req.BookingID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldStatus, Value: constant.CheckInStatusCheckedIn, Operator: gDto.FilterOperatorEq},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing stay record")

		return res, fmt.Errorf("failed to check existing stay record: %w", err)
	}

	if alreadyIn {
		return res, failure.Conflict("booking is already checked in") //nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, shared.FilterByID(booking.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room") //nolint:wrapcheck
	}

	bookingID := booking.ID
	record := model.CheckInOut{
		ID:           uuid.NewString(),
		BookingID:    &bookingID,
		UserID:       booking.UserID,
		CustomerName: booking.CustomerName,
		RoomNumber:   booking.RoomNumber,
		Type:         constant.CheckInTypeBooking,
		Status:       constant.CheckInStatusCheckedIn,
		CheckInDate:  today(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if booking.Status == constant.BookingStatusPending {
			if err := s.bookings.UpdateTx(ctx, tx, map[string]any{
				bookingModel.FieldStatus: constant.BookingStatusConfirmed,
				constant.FieldModifiedAt: timezone.Now(),
				constant.FieldModifiedBy: user,
			}, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName)); err != nil {
				return err
			}

			if err := s.bookingAudit.InsertTx(ctx, tx, auditModel.BookingAuditLog{
				ID:          uuid.NewString(),
				BookingID:   booking.ID,
				Action:      constant.AuditActionConfirm,
				OldValue:    constant.BookingStatusPending,
				NewValue:    constant.BookingStatusConfirmed,
				PerformedBy: user,
				CreatedAt:   timezone.Now(),
			}); err != nil {
				return err
			}
		}

		if err := s.repo.InsertTx(ctx, tx, record); err != nil {
			return err
		}

		return s.occupyRoomTx(ctx, tx, room, user)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check in guest")

		return res, err
	}

	s.afterChange(ctx, record, events.TypeGuestCheckedIn)

	res.FromModel(record)

	return res, nil
}

// CheckOut closes the stay and sends the room to maintenance for
// housekeeping. Checking out an already closed record is a no-op.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	record, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stay record")

		return fmt.Errorf("failed to get stay record: %w", err)
	}

	if record.ID == constant.Empty {
		return failure.NotFound("stay record") //nolint:wrapcheck
	}

	if record.Status == constant.CheckInStatusOut {
		return nil
	}

	room, err := s.rooms.Get(ctx, shared.FilterByID(record.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	now := timezone.Now()
	updatedFields := map[string]any{
		model.FieldStatus:        constant.CheckInStatusOut,
		model.FieldCheckOutDate:  now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return err
		}

		if room.ID == constant.Empty {
			return nil
		}

		if err := s.rooms.UpdateTx(ctx, tx, map[string]any{
			roomModel.FieldStatus:    constant.RoomStatusMaintenance,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(record.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName)); err != nil {
			return err
		}

		return s.roomAudit.InsertTx(ctx, tx, auditModel.RoomAuditLog{
			ID:          uuid.NewString(),
			RoomNumber:  record.RoomNumber,
			Action:      constant.AuditActionEdit,
			OldValue:    room.Status,
			NewValue:    constant.RoomStatusMaintenance,
			PerformedBy: user,
			CreatedAt:   now,
		})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check out guest")

		return err
	}

	record.Status = constant.CheckInStatusOut
	s.afterChange(ctx, record, events.TypeGuestCheckedOut)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCheckInOutsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRecord, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stay records")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stay records")

		return res, fmt.Errorf("failed to count stay records: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stay records")

		return res, fmt.Errorf("failed to get stay records: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stay records to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRecord, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stay records")

		return res, fmt.Errorf("failed to count stay records: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stay record count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CheckInOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRecord, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get stay record")

		return res, fmt.Errorf("failed to get stay record: %w", err)
	}

	if record.ID == constant.Empty {
		return res, failure.NotFound("stay record") //nolint:wrapcheck
	}

	res.FromModel(record)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stay record to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) occupyRoomTx(ctx context.Context, tx *sqlx.Tx, room roomModel.Room, user string) error {
	if err := s.rooms.UpdateTx(ctx, tx, map[string]any{
		roomModel.FieldStatus:    constant.RoomStatusOccupied,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(room.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName)); err != nil {
		return err
	}

	return s.roomAudit.InsertTx(ctx, tx, auditModel.RoomAuditLog{
		ID:          uuid.NewString(),
		RoomNumber:  room.RoomNumber,
		Action:      constant.AuditActionEdit,
		OldValue:    room.Status,
		NewValue:    constant.RoomStatusOccupied,
		PerformedBy: user,
		CreatedAt:   timezone.Now(),
	})
}

// afterChange publishes the stay event and drops every cache the write
// may have stale-ified. Failures are logged, never surfaced.
func (s *serviceImpl) afterChange(ctx context.Context, record model.CheckInOut, eventType string) {
	go func() {
		c := context.WithoutCancel(ctx)

		bookingID := constant.Empty
		if record.BookingID != nil {
			bookingID = *record.BookingID
		}

		event := events.BookingEvent{
			Type:       eventType,
			BookingID:  bookingID,
			RoomNumber: record.RoomNumber,
			UserID:     record.UserID,
			Status:     record.Status,
			OccurredAt: timezone.Now(),
		}

		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish stay event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRecord, record.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete stay record cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRecord)
		shared.InvalidateCaches(c, s.cache, cacheCountRecord)
		shared.InvalidateCaches(c, s.cache, cachePrefixRoom)
		shared.InvalidateCaches(c, s.cache, cachePrefixBooking)
	}()
}
