package service_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel/mocks"
	pgMocks "github.com/reagan13/beach-management-system-java-sub000/infras/postgres/mocks"
	auditMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/model"
	userMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/service"
	cacheMocks "github.com/reagan13/beach-management-system-java-sub000/shared/cache/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
)

type userServiceMocks struct {
	repo       *userMocks.MockUser
	owners     *userMocks.MockOwner
	customers  *userMocks.MockCustomer
	staff      *userMocks.MockStaff
	audit      *auditMocks.MockAudit
	transactor *pgMocks.MockTransactor
	cache      *cacheMocks.MockRedisCache
}

func newUserService(ctrl *gomock.Controller) (service.User, userServiceMocks) {
	m := userServiceMocks{
		repo:       userMocks.NewMockUser(ctrl),
		owners:     userMocks.NewMockOwner(ctrl),
		customers:  userMocks.NewMockCustomer(ctrl),
		staff:      userMocks.NewMockStaff(ctrl),
		audit:      auditMocks.NewMockAudit(ctrl),
		transactor: pgMocks.NewMockTransactor(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.owners, m.customers, m.staff, m.audit, m.transactor, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, "tester")
}

func cacheMiss(m userServiceMocks) {
	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError).
		AnyTimes()
}

func TestUserService_Get(t *testing.T) {
	t.Run("customer with profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)
		cacheMiss(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{
				ID:       "user-id",
				Username: "guest42",
				Role:     model.RoleCustomer,
				Active:   true,
			}, nil)

		m.customers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{
				UserID:                 "user-id",
				PreferredAccommodation: "Suite",
				VisitCount:             3,
			}, nil)

		res, err := svc.Get(userContext(), "user-id")

		assert.NoError(t, err)
		assert.Equal(t, "guest42", res.Username)
		if assert.NotNil(t, res.Profile) {
			assert.Equal(t, 3, res.Profile.VisitCount)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)
		cacheMiss(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Get(userContext(), "missing-id")

		assert.Error(t, err)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deactivates instead of removing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-id", Active: true}, nil)

		m.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldActive])

				return nil
			})

		m.audit.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(userContext(), "user-id")

		assert.NoError(t, err)
	})

	t.Run("already inactive is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-id", Active: false}, nil)

		err := svc.Delete(userContext(), "user-id")

		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		err := svc.Delete(userContext(), "missing-id")

		assert.Error(t, err)
	})
}
