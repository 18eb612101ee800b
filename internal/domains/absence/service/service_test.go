package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel/mocks"
	absenceMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/service"
	userMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/mocks"
	cacheMocks "github.com/reagan13/beach-management-system-java-sub000/shared/cache/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
)

type absenceServiceMocks struct {
	repo  *absenceMocks.MockAbsence
	users *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
}

func newAbsenceService(ctrl *gomock.Controller) (service.Absence, absenceServiceMocks) {
	m := absenceServiceMocks{
		repo:  absenceMocks.NewMockAbsence(ctrl),
		users: userMocks.NewMockUser(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.users, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func absenceContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, "tester")
}

func TestAbsenceService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateAbsenceRequest
		setupMock func(m absenceServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateAbsenceRequest{
				UserID:   "user-id",
				DateFrom: "2026-09-01",
				DateTo:   "2026-09-03",
				Reason:   "family matter",
			},
			setupMock: func(m absenceServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, absence model.Absence) error {
						assert.Equal(t, model.StatusPending, absence.Status)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "end date before start date",
			req: dto.CreateAbsenceRequest{
				UserID:   "user-id",
				DateFrom: "2026-09-03",
				DateTo:   "2026-09-01",
			},
			setupMock: func(m absenceServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "unknown staff member",
			req: dto.CreateAbsenceRequest{
				UserID:   "missing-user",
				DateFrom: "2026-09-01",
				DateTo:   "2026-09-03",
			},
			setupMock: func(m absenceServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAbsenceService(ctrl)
			tt.setupMock(m)

			err := svc.Create(absenceContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAbsenceService_UpdateStatus(t *testing.T) {
	pending := model.Absence{
		ID:     "absence-id",
		UserID: "user-id",
		Status: model.StatusPending,
	}

	tests := []struct {
		name      string
		req       dto.UpdateAbsenceRequest
		setupMock func(m absenceServiceMocks)
		wantErr   bool
	}{
		{
			name: "approval",
			req:  dto.UpdateAbsenceRequest{Status: model.StatusApproved},
			setupMock: func(m absenceServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "same status is a no-op",
			req:  dto.UpdateAbsenceRequest{Status: model.StatusPending},
			setupMock: func(m absenceServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown absence",
			req:  dto.UpdateAbsenceRequest{Status: model.StatusApproved},
			setupMock: func(m absenceServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Absence{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository failure",
			req:  dto.UpdateAbsenceRequest{Status: model.StatusRejected},
			setupMock: func(m absenceServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAbsenceService(ctrl)
			tt.setupMock(m)

			err := svc.UpdateStatus(absenceContext(), tt.req, "absence-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAbsenceService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m absenceServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func(m absenceServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown absence",
			setupMock: func(m absenceServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAbsenceService(ctrl)
			tt.setupMock(m)

			err := svc.Delete(absenceContext(), "absence-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
