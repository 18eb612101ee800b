package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/jwt"
	jwtMocks "github.com/reagan13/beach-management-system-java-sub000/infras/jwt/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel/mocks"
	postgresMocks "github.com/reagan13/beach-management-system-java-sub000/infras/postgres/mocks"
	auditMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/auth/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/auth/service"
	userModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/model"
	userMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	"github.com/reagan13/beach-management-system-java-sub000/shared/password"
)

type authServiceMocks struct {
	users      *userMocks.MockUser
	owners     *userMocks.MockOwner
	customers  *userMocks.MockCustomer
	staff      *userMocks.MockStaff
	audit      *auditMocks.MockAudit
	transactor *postgresMocks.MockTransactor
	jwt        *jwtMocks.MockJWT
}

func newAuthService(ctrl *gomock.Controller) (service.Auth, authServiceMocks) {
	m := authServiceMocks{
		users:      userMocks.NewMockUser(ctrl),
		owners:     userMocks.NewMockOwner(ctrl),
		customers:  userMocks.NewMockCustomer(ctrl),
		staff:      userMocks.NewMockStaff(ctrl),
		audit:      auditMocks.NewMockAudit(ctrl),
		transactor: postgresMocks.NewMockTransactor(ctrl),
		jwt:        jwtMocks.NewMockJWT(ctrl),
	}

	cfg := &config.Config{}

	m.transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	// Login records last_login from a goroutine.
	m.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.users, m.owners, m.customers, m.staff, m.audit, m.transactor, cfg, mocks.NewOtel(), m.jwt)

	return svc, m
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "newguest",
		Password: "Sup3rSecret!",
		Email:    "guest@example.com",
		FullName: "New Guest",
		Role:     constant.RoleCustomer,
	}

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(m authServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful customer registration",
			req:  req,
			setupMock: func(m authServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.users.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, user userModel.User) error {
						assert.NotEqual(t, req.Password, user.Password)
						assert.Equal(t, userModel.RoleCustomer, user.Role)

						return nil
					})

				m.customers.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.audit.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "username already taken",
			req:  req,
			setupMock: func(m authServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown role",
			req: dto.RegisterRequest{
				Username: "newguest",
				Password: "Sup3rSecret!",
				Role:     "admin",
			},
			setupMock: func(m authServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "profile insert rolls the registration back",
			req:  req,
			setupMock: func(m authServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.users.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.customers.EXPECT().
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

			svc, m := newAuthService(ctrl)
			tt.setupMock(m)

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("Sup3rSecret!")
	assert.NoError(t, err)

	account := userModel.User{
		ID:       "user-id",
		Username: "guest",
		Password: hashed,
		Role:     userModel.RoleCustomer,
		Active:   true,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(m authServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Username: "guest",
				Password: "Sup3rSecret!",
				Role:     constant.RoleCustomer,
			},
			setupMock: func(m authServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(account, nil)

				m.jwt.EXPECT().
					GenerateTokenPair("user-id", "guest", constant.RoleCustomer).
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)
			},
			wantErr: false,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Username: "guest",
				Password: "wrong-password",
				Role:     constant.RoleCustomer,
			},
			setupMock: func(m authServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(account, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown username",
			req: dto.LoginRequest{
				Username: "nobody",
				Password: "Sup3rSecret!",
				Role:     constant.RoleCustomer,
			},
			setupMock: func(m authServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req: dto.LoginRequest{
				Username: "guest",
				Password: "Sup3rSecret!",
				Role:     constant.RoleCustomer,
			},
			setupMock: func(m authServiceMocks) {
				inactive := account
				inactive.Active = false

				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAuthService(ctrl)
			tt.setupMock(m)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.AccessToken)
				assert.NotEmpty(t, res.RefreshToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, err := password.Hash("OldSecret1!")
	assert.NoError(t, err)

	account := userModel.User{
		ID:       "user-id",
		Username: "guest",
		Password: hashed,
		Role:     userModel.RoleCustomer,
		Active:   true,
	}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(m authServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful change",
			req: dto.ChangePasswordRequest{
				OldPassword: "OldSecret1!",
				NewPassword: "NewSecret2!",
			},
			setupMock: func(m authServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(account, nil)
			},
			wantErr: false,
		},
		{
			name: "wrong old password",
			req: dto.ChangePasswordRequest{
				OldPassword: "not-the-old-one",
				NewPassword: "NewSecret2!",
			},
			setupMock: func(m authServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(account, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAuthService(ctrl)
			tt.setupMock(m)

			err := svc.ChangePassword(context.Background(), tt.req, "user-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
