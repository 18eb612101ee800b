package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel/mocks"
	auditMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/service"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

type auditServiceMocks struct {
	repo        *auditMocks.MockAudit
	roomRepo    *auditMocks.MockRoomAudit
	bookingRepo *auditMocks.MockBookingAudit
}

func newAuditService(ctrl *gomock.Controller) (service.Audit, auditServiceMocks) {
	m := auditServiceMocks{
		repo:        auditMocks.NewMockAudit(ctrl),
		roomRepo:    auditMocks.NewMockRoomAudit(ctrl),
		bookingRepo: auditMocks.NewMockBookingAudit(ctrl),
	}

	cfg := &config.Config{}
	cfg.Audit.RetentionDays = 90

	svc := service.New(m.repo, m.roomRepo, m.bookingRepo, cfg, mocks.NewOtel())

	return svc, m
}

func TestAuditService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuditService(ctrl)

	logs := []model.AuditLog{
		{
			ID:          "log-id",
			Subject:     "payment",
			SubjectID:   "payment-id",
			Action:      constant.AuditActionAdd,
			PerformedBy: "tester",
			CreatedAt:   timezone.Now(),
		},
	}

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(logs, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Logs, 1)
}

func TestAuditService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuditService(ctrl)

	m.repo.EXPECT().
		Summary(gomock.Any(), gomock.Any()).
		Return([]model.ActionSummary{
			{Action: constant.AuditActionAdd, Total: 4},
			{Action: constant.AuditActionDelete, Total: 1},
		}, nil)

	res, err := svc.Summary(context.Background(), gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Summaries, 2)
}

func TestAuditService_Cleanup(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m auditServiceMocks)
		wantErr   bool
	}{
		{
			name: "all three trails cleaned",
			setupMock: func(m auditServiceMocks) {
				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.roomRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.bookingRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "failure on the generic trail stops the run",
			setupMock: func(m auditServiceMocks) {
				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAuditService(ctrl)
			tt.setupMock(m)

			err := svc.Cleanup(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
