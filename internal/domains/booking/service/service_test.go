package service_test

import (
	"context"
	"encoding/json"
	"errors"
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
	bookingMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/service"
	roomModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/model"
	roomMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/mocks"
	roomServiceMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/service/mocks"
	eventMocks "github.com/reagan13/beach-management-system-java-sub000/internal/events/mocks"
	cacheMocks "github.com/reagan13/beach-management-system-java-sub000/shared/cache/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
)

type bookingServiceMocks struct {
	repo       *bookingMocks.MockBooking
	rooms      *roomMocks.MockRoom
	roomSvc    *roomServiceMocks.MockRoom
	audit      *auditMocks.MockBookingAudit
	transactor *postgresMocks.MockTransactor
	publisher  *eventMocks.MockPublisher
	cache      *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingServiceMocks) {
	m := bookingServiceMocks{
		repo:       bookingMocks.NewMockBooking(ctrl),
		rooms:      roomMocks.NewMockRoom(ctrl),
		roomSvc:    roomServiceMocks.NewMockRoom(ctrl),
		audit:      auditMocks.NewMockBookingAudit(ctrl),
		transactor: postgresMocks.NewMockTransactor(ctrl),
		publisher:  eventMocks.NewMockPublisher(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Follow-ups after a committed write run in a goroutine that may or
	// may not finish before the test does.
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.roomSvc.EXPECT().SyncStatus(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.rooms, m.roomSvc, m.audit, m.transactor, m.publisher, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func passthroughTx(m bookingServiceMocks) {
	m.transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, "tester")
}

func TestBookingService_Create(t *testing.T) {
	activeRoom := roomModel.Room{
		ID:         "room-id",
		RoomNumber: "101",
		Status:     constant.RoomStatusAvailable,
		Active:     true,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(m bookingServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateBookingRequest{
				RoomNumber:   "101",
				UserID:       "user-id",
				CustomerName: "Guest",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-05",
				GuestCount:   2,
				TotalPrice:   500,
			},
			setupMock: func(m bookingServiceMocks) {
				m.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom, nil)

				m.repo.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return([]model.Booking{}, nil)

				passthroughTx(m)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.audit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "malformed check-in date",
			req: dto.CreateBookingRequest{
				RoomNumber:   "101",
				CheckInDate:  "01-09-2026",
				CheckOutDate: "2026-09-05",
			},
			setupMock: func(m bookingServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "check-out on the check-in day",
			req: dto.CreateBookingRequest{
				RoomNumber:   "101",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-01",
			},
			setupMock: func(m bookingServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "room not found",
			req: dto.CreateBookingRequest{
				RoomNumber:   "999",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-05",
			},
			setupMock: func(m bookingServiceMocks) {
				m.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive room",
			req: dto.CreateBookingRequest{
				RoomNumber:   "101",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-05",
			},
			setupMock: func(m bookingServiceMocks) {
				retired := activeRoom
				retired.Active = false

				m.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(retired, nil)
			},
			wantErr: true,
		},
		{
			name: "overlapping booking on the same room",
			req: dto.CreateBookingRequest{
				RoomNumber:   "101",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-05",
			},
			setupMock: func(m bookingServiceMocks) {
				m.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom, nil)

				existing := model.Booking{
					ID:           "other-booking",
					RoomNumber:   "101",
					CheckInDate:  time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
					CheckOutDate: time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
					Status:       constant.BookingStatusConfirmed,
				}

				m.repo.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return([]model.Booking{existing}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			_, err := svc.Create(testContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	current := model.Booking{
		ID:           "booking-id",
		RoomNumber:   "101",
		UserID:       "user-id",
		CustomerName: "Guest",
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		GuestCount:   2,
		TotalPrice:   500,
		Status:       constant.BookingStatusPending,
	}

	t.Run("audit snapshots compare whole bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)
		passthroughTx(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		m.repo.EXPECT().
			GetActiveByRoom(gomock.Any(), "101").
			Return([]model.Booking{current}, nil)

		m.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.audit.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, entry auditModel.BookingAuditLog) error {
				var oldBooking, newBooking model.Booking

				assert.NoError(t, json.Unmarshal([]byte(entry.OldValue), &oldBooking))
				assert.NoError(t, json.Unmarshal([]byte(entry.NewValue), &newBooking))

				assert.Equal(t, "Guest", oldBooking.CustomerName)
				assert.Equal(t, "Renamed Guest", newBooking.CustomerName)
				assert.Equal(t, 3, newBooking.GuestCount)
				assert.Equal(t, current.TotalPrice, newBooking.TotalPrice)

				return nil
			})

		err := svc.Update(testContext(), dto.UpdateBookingRequest{
			CustomerName: "Renamed Guest",
			GuestCount:   3,
		}, "booking-id")

		assert.NoError(t, err)
	})

	t.Run("cancelled booking cannot be edited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		cancelled := current
		cancelled.Status = constant.BookingStatusCancelled

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cancelled, nil)

		err := svc.Update(testContext(), dto.UpdateBookingRequest{CustomerName: "Renamed"}, "booking-id")

		assert.Error(t, err)
	})
}

func TestBookingService_Confirm(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(m bookingServiceMocks)
		wantErr    bool
		wantUpdate bool
	}{
		{
			name: "pending booking confirmed",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", RoomNumber: "101", Status: constant.BookingStatusPending}, nil)

				passthroughTx(m)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.audit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "confirming twice is a no-op",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", RoomNumber: "101", Status: constant.BookingStatusConfirmed}, nil)
			},
			wantErr: false,
		},
		{
			name: "cancelled booking cannot be confirmed",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", RoomNumber: "101", Status: constant.BookingStatusCancelled}, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown booking",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			err := svc.Confirm(testContext(), "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m bookingServiceMocks)
		wantErr   bool
	}{
		{
			name: "confirmed booking cancelled",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", RoomNumber: "101", Status: constant.BookingStatusConfirmed}, nil)

				passthroughTx(m)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.audit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cancelling twice is a no-op",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", RoomNumber: "101", Status: constant.BookingStatusCancelled}, nil)
			},
			wantErr: false,
		},
		{
			name: "repository failure",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			err := svc.Cancel(testContext(), "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
