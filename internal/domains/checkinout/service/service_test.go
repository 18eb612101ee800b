package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel/mocks"
	postgresMocks "github.com/reagan13/beach-management-system-java-sub000/infras/postgres/mocks"
	auditMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/mocks"
	auditModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/model"
	bookingModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model"
	bookingMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/mocks"
	checkInOutMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/service"
	roomModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/model"
	roomMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/mocks"
	userModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/model"
	userMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/mocks"
	eventMocks "github.com/reagan13/beach-management-system-java-sub000/internal/events/mocks"
	cacheMocks "github.com/reagan13/beach-management-system-java-sub000/shared/cache/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
)

type checkInOutServiceMocks struct {
	repo         *checkInOutMocks.MockCheckInOut
	bookings     *bookingMocks.MockBooking
	rooms        *roomMocks.MockRoom
	users        *userMocks.MockUser
	bookingAudit *auditMocks.MockBookingAudit
	roomAudit    *auditMocks.MockRoomAudit
	transactor   *postgresMocks.MockTransactor
	publisher    *eventMocks.MockPublisher
	cache        *cacheMocks.MockRedisCache
}

func newCheckInOutService(ctrl *gomock.Controller) (service.CheckInOut, checkInOutServiceMocks) {
	m := checkInOutServiceMocks{
		repo:         checkInOutMocks.NewMockCheckInOut(ctrl),
		bookings:     bookingMocks.NewMockBooking(ctrl),
		rooms:        roomMocks.NewMockRoom(ctrl),
		users:        userMocks.NewMockUser(ctrl),
		bookingAudit: auditMocks.NewMockBookingAudit(ctrl),
		roomAudit:    auditMocks.NewMockRoomAudit(ctrl),
		transactor:   postgresMocks.NewMockTransactor(ctrl),
		publisher:    eventMocks.NewMockPublisher(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	m.transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	svc := service.New(m.repo, m.bookings, m.rooms, m.users, m.bookingAudit, m.roomAudit, m.transactor, m.publisher, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func stayContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, "tester")
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 3).Format(constant.DateOnlyFormat)
}

func customer() userModel.User {
	return userModel.User{
		ID:       "user-id",
		Username: "guest",
		Role:     userModel.RoleCustomer,
		Active:   true,
	}
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:         "room-id",
		RoomNumber: "101",
		Price:      100,
		Status:     constant.RoomStatusAvailable,
		Active:     true,
	}
}

func TestCheckInOutService_WalkIn(t *testing.T) {
	req := dto.WalkInRequest{
		UserID:       "user-id",
		CustomerName: "Guest",
		RoomNumber:   "101",
		CheckOutDate: futureDate(),
		GuestCount:   2,
	}

	tests := []struct {
		name      string
		setupMock func(m checkInOutServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful walk-in",
			setupMock: func(m checkInOutServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer(), nil)

				m.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				m.bookings.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return(nil, nil)

				m.bookings.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking bookingModel.Booking) error {
						assert.Equal(t, constant.BookingStatusConfirmed, booking.Status)

						return nil
					})

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.rooms.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, constant.RoomStatusOccupied, fields[roomModel.FieldStatus])

						return nil
					})

				m.roomAudit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.bookingAudit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "staff accounts cannot be admitted",
			setupMock: func(m checkInOutServiceMocks) {
				staff := customer()
				staff.Role = userModel.RoleStaff

				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown user",
			setupMock: func(m checkInOutServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "room not available",
			setupMock: func(m checkInOutServiceMocks) {
				occupied := availableRoom()
				occupied.Status = constant.RoomStatusOccupied

				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer(), nil)

				m.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupied, nil)
			},
			wantErr: true,
		},
		{
			name: "stay overlaps a future booking on the room",
			setupMock: func(m checkInOutServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer(), nil)

				m.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				m.bookings.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return([]bookingModel.Booking{
						{
							ID:           "future-booking",
							RoomNumber:   "101",
							CheckInDate:  time.Now().AddDate(0, 0, 1),
							CheckOutDate: time.Now().AddDate(0, 0, 5),
							Status:       constant.BookingStatusConfirmed,
						},
					}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newCheckInOutService(ctrl)
			tt.setupMock(m)

			_, err := svc.WalkIn(stayContext(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckInOutService_CheckIn(t *testing.T) {
	confirmedBooking := bookingModel.Booking{
		ID:           "booking-id",
		RoomNumber:   "101",
		UserID:       "user-id",
		CustomerName: "Guest",
		Status:       constant.BookingStatusConfirmed,
	}

	tests := []struct {
		name      string
		setupMock func(m checkInOutServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful check-in",
			setupMock: func(m checkInOutServiceMocks) {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer(), nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.rooms.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.roomAudit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "pending booking is confirmed on arrival",
			setupMock: func(m checkInOutServiceMocks) {
				pending := confirmedBooking
				pending.Status = constant.BookingStatusPending

				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer(), nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				m.bookings.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, constant.BookingStatusConfirmed, fields[bookingModel.FieldStatus])

						return nil
					})

				m.bookingAudit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, entry auditModel.BookingAuditLog) error {
						assert.Equal(t, constant.AuditActionConfirm, entry.Action)

						return nil
					})

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.rooms.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.roomAudit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cancelled booking is turned away",
			setupMock: func(m checkInOutServiceMocks) {
				cancelled := confirmedBooking
				cancelled.Status = constant.BookingStatusCancelled

				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "already checked in",
			setupMock: func(m checkInOutServiceMocks) {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer(), nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newCheckInOutService(ctrl)
			tt.setupMock(m)

			_, err := svc.CheckIn(stayContext(), dto.CheckInRequest{BookingID: "booking-id"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckInOutService_CheckOut(t *testing.T) {
	bookingID := "booking-id"
	openRecord := model.CheckInOut{
		ID:         "record-id",
		BookingID:  &bookingID,
		UserID:     "user-id",
		RoomNumber: "101",
		Type:       constant.CheckInTypeBooking,
		Status:     constant.CheckInStatusCheckedIn,
	}

	tests := []struct {
		name      string
		setupMock func(m checkInOutServiceMocks)
		wantErr   bool
	}{
		{
			name: "checkout sends the room to maintenance",
			setupMock: func(m checkInOutServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openRecord, nil)

				occupied := availableRoom()
				occupied.Status = constant.RoomStatusOccupied

				m.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupied, nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, constant.CheckInStatusOut, fields[model.FieldStatus])

						return nil
					})

				m.rooms.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, constant.RoomStatusMaintenance, fields[roomModel.FieldStatus])

						return nil
					})

				m.roomAudit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "checking out twice is a no-op",
			setupMock: func(m checkInOutServiceMocks) {
				closed := openRecord
				closed.Status = constant.CheckInStatusOut

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(closed, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown stay record",
			setupMock: func(m checkInOutServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CheckInOut{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newCheckInOutService(ctrl)
			tt.setupMock(m)

			err := svc.CheckOut(stayContext(), "record-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
