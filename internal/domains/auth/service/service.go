package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/jwt"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/infras/postgres"
	auditModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/model"
	auditRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/repository"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/auth/model/dto"
	userModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/model"
	userRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/repository"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/failure"
	"github.com/reagan13/beach-management-system-java-sub000/shared/password"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	owners     userRepo.Owner
	customers  userRepo.Customer
	staff      userRepo.Staff
	audit      auditRepo.Audit
	transactor postgres.Transactor
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(users userRepo.User, owners userRepo.Owner, customers userRepo.Customer, staff userRepo.Staff, audit auditRepo.Audit, transactor postgres.Transactor, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   users,
		owners:     owners,
		customers:  customers,
		staff:      staff,
		audit:      audit,
		transactor: transactor,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func usernameFilter(username string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    username,
				Table:    userModel.TableName,
			},
		},
	}
}

// Register creates the account and its role profile atomically: a
// failed profile insert rolls the user row back too.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, err := userModel.ParseRole(req.Role)
	if err != nil {
		return failure.BadRequestFromString("role must be one of owner, staff, customer") //nolint:wrapcheck
	}

	exists, err := s.userRepo.Exist(ctx, usernameFilter(req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.Conflict("username already taken") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword, role)

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.userRepo.InsertTx(ctx, tx, user); err != nil {
			return err
		}

		switch role {
		case userModel.RoleOwner:
			if err := s.owners.InsertTx(ctx, tx, req.ToOwnerModel(user.ID)); err != nil {
				return err
			}
		case userModel.RoleCustomer:
			if err := s.customers.InsertTx(ctx, tx, req.ToCustomerModel(user.ID)); err != nil {
				return err
			}
		case userModel.RoleStaff:
			if err := s.staff.InsertTx(ctx, tx, req.ToStaffModel(user.ID)); err != nil {
				return err
			}
		}

		return s.audit.InsertTx(ctx, tx, auditModel.AuditLog{
			ID:          uuid.NewString(),
			Subject:     userModel.EntityName,
			SubjectID:   user.ID,
			Action:      constant.AuditActionAdd,
			Details:     fmt.Sprintf("registered as %s", role),
			PerformedBy: req.Username,
			CreatedAt:   timezone.Now(),
		})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to register user")

		return err
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Username,
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Role,
				Table:    userModel.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil || user.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Str("role", req.Role).Msg("login attempt with unknown username or role")

		return res, failure.BadRequestFromString("invalid username or password") //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid username or password") //nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.BadRequestFromString("user account is deactivated") //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username, user.Role.String())
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		fields := map[string]any{
			userModel.FieldLastLogin: timezone.Now(),
		}

		if err := s.userRepo.Update(c, fields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to record last login")
		}
	}()

	res.AccessToken = tokenPair.AccessToken
	res.RefreshToken = tokenPair.RefreshToken
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.AccessToken = tokenPair.AccessToken
	res.RefreshToken = tokenPair.RefreshToken

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user") //nolint:wrapcheck
	}

	if err := password.Verify(req.OldPassword, user.Password); err != nil {
		return failure.BadRequestFromString("old password is incorrect") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	fields := map[string]any{
		userModel.FieldPassword:  hashedPassword,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user.Username,
	}

	if err = s.userRepo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to change password")

		return fmt.Errorf("failed to change password: %w", err)
	}

	return nil
}
