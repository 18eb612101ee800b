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
	paymentMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/model"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/service"
	userMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/mocks"
	cacheMocks "github.com/reagan13/beach-management-system-java-sub000/shared/cache/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
)

type paymentServiceMocks struct {
	repo       *paymentMocks.MockPayment
	users      *userMocks.MockUser
	audit      *auditMocks.MockAudit
	transactor *postgresMocks.MockTransactor
	cache      *cacheMocks.MockRedisCache
}

func newPaymentService(ctrl *gomock.Controller) (service.Payment, paymentServiceMocks) {
	m := paymentServiceMocks{
		repo:       paymentMocks.NewMockPayment(ctrl),
		users:      userMocks.NewMockUser(ctrl),
		audit:      auditMocks.NewMockAudit(ctrl),
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

	svc := service.New(m.repo, m.users, m.audit, m.transactor, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func paymentContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, "tester")
}

func TestPaymentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreatePaymentRequest
		setupMock func(m paymentServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreatePaymentRequest{
				UserID: "user-id",
				Amount: 250,
				Method: "cash",
			},
			setupMock: func(m paymentServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

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
			name: "non-positive amount",
			req: dto.CreatePaymentRequest{
				UserID: "user-id",
				Amount: 0,
				Method: "cash",
			},
			setupMock: func(m paymentServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "unknown paying user",
			req: dto.CreatePaymentRequest{
				UserID: "missing-user",
				Amount: 250,
				Method: "cash",
			},
			setupMock: func(m paymentServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreatePaymentRequest{
				UserID: "user-id",
				Amount: 250,
				Method: "cash",
			},
			setupMock: func(m paymentServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newPaymentService(ctrl)
			tt.setupMock(m)

			_, err := svc.Create(paymentContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m paymentServiceMocks)
		wantErr   bool
	}{
		{
			name: "payment found",
			setupMock: func(m paymentServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{ID: "payment-id", UserID: "user-id", Amount: 250}, nil)
			},
			wantErr: false,
		},
		{
			name: "payment not found",
			setupMock: func(m paymentServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newPaymentService(ctrl)
			tt.setupMock(m)

			_, err := svc.Get(paymentContext(), "payment-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
