package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel/mocks"
	postgresMocks "github.com/reagan13/beach-management-system-java-sub000/infras/postgres/mocks"
	auditMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/mocks"
	bookingModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model"
	bookingMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/mocks"
	roomMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/service"
	cacheMocks "github.com/reagan13/beach-management-system-java-sub000/shared/cache/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
)

type roomServiceMocks struct {
	repo       *roomMocks.MockRoom
	bookings   *bookingMocks.MockBooking
	audit      *auditMocks.MockRoomAudit
	transactor *postgresMocks.MockTransactor
	cache      *cacheMocks.MockRedisCache
}

func newRoomService(ctrl *gomock.Controller) (service.Room, roomServiceMocks) {
	m := roomServiceMocks{
		repo:       roomMocks.NewMockRoom(ctrl),
		bookings:   bookingMocks.NewMockBooking(ctrl),
		audit:      auditMocks.NewMockRoomAudit(ctrl),
		transactor: postgresMocks.NewMockTransactor(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	m.transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	svc := service.New(m.repo, m.bookings, m.audit, m.transactor, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func roomContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, "tester")
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNumber:  "101",
		RoomType:    "standard",
		Price:       150,
		Capacity:    2,
		Description: "Sea view",
	}

	tests := []struct {
		name      string
		setupMock func(m roomServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

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
			name: "duplicate room number",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRoomService(ctrl)
			tt.setupMock(m)

			err := svc.Create(roomContext(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_SyncStatus(t *testing.T) {
	room := func(status string) model.Room {
		return model.Room{
			ID:         "room-id",
			RoomNumber: "101",
			Status:     status,
			Active:     true,
		}
	}

	activeBooking := bookingModel.Booking{
		ID:         "booking-id",
		RoomNumber: "101",
		Status:     constant.BookingStatusConfirmed,
	}

	tests := []struct {
		name      string
		setupMock func(m roomServiceMocks)
		wantErr   bool
	}{
		{
			name: "active booking marks the room occupied",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room(constant.RoomStatusAvailable), nil)

				m.bookings.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return([]bookingModel.Booking{activeBooking}, nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, constant.RoomStatusOccupied, fields[model.FieldStatus])

						return nil
					})

				m.audit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "no bookings releases the room",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room(constant.RoomStatusOccupied), nil)

				m.bookings.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return([]bookingModel.Booking{}, nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, constant.RoomStatusAvailable, fields[model.FieldStatus])

						return nil
					})

				m.audit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "matching status is a no-op",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room(constant.RoomStatusOccupied), nil)

				m.bookings.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return([]bookingModel.Booking{activeBooking}, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown room",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRoomService(ctrl)
			tt.setupMock(m)

			err := svc.SyncStatus(roomContext(), "101")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m roomServiceMocks)
		wantErr   bool
	}{
		{
			name: "room with active bookings cannot be deleted",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-id", RoomNumber: "101"}, nil)

				m.bookings.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return([]bookingModel.Booking{{ID: "booking-id"}}, nil)
			},
			wantErr: true,
		},
		{
			name: "successful deletion",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-id", RoomNumber: "101"}, nil)

				m.bookings.EXPECT().
					GetActiveByRoom(gomock.Any(), "101").
					Return([]bookingModel.Booking{}, nil)

				m.repo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.audit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRoomService(ctrl)
			tt.setupMock(m)

			err := svc.Delete(roomContext(), "101")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
