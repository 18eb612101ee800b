package dto

import (
	"github.com/google/uuid"

	userModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/model"
	userDto "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/model/dto"
	gModel "github.com/reagan13/beach-management-system-java-sub000/shared/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

// RegisterRequest creates the base account plus the profile row of the
// chosen role in one transaction. Username and password rules live in
// the shared validator so every entry point enforces the same policy.
type RegisterRequest struct {
	Username      string `json:"username"       validate:"required,username_policy"`
	Password      string `json:"password"       validate:"required,password_policy"`
	Email         string `json:"email"          validate:"required,email,max=100"`
	FullName      string `json:"full_name"      validate:"required,max=100"`
	Address       string `json:"address"        validate:"omitempty,max=255"`
	ContactNumber string `json:"contact_number" validate:"omitempty,max=20"`
	Role          string `json:"role"           validate:"required,oneof=owner staff customer"`

	BusinessName           string `json:"business_name"           validate:"omitempty,max=100"`
	BusinessPermit         string `json:"business_permit"         validate:"omitempty,max=100"`
	PreferredAccommodation string `json:"preferred_accommodation" validate:"omitempty,max=100"`
	Position               string `json:"position"                validate:"omitempty,max=100"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string, role userModel.Role) userModel.User {
	return userModel.User{
		ID:            uuid.NewString(),
		Username:      r.Username,
		Password:      hashedPassword,
		Email:         r.Email,
		FullName:      r.FullName,
		Address:       r.Address,
		ContactNumber: r.ContactNumber,
		Role:          role,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.Username,
			ModifiedBy: r.Username,
		},
	}
}

func (r *RegisterRequest) ToOwnerModel(userID string) userModel.Owner {
	return userModel.Owner{
		UserID:         userID,
		BusinessName:   r.BusinessName,
		BusinessPermit: r.BusinessPermit,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.Username,
			ModifiedBy: r.Username,
		},
	}
}

func (r *RegisterRequest) ToCustomerModel(userID string) userModel.Customer {
	return userModel.Customer{
		UserID:                 userID,
		PreferredAccommodation: r.PreferredAccommodation,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.Username,
			ModifiedBy: r.Username,
		},
	}
}

func (r *RegisterRequest) ToStaffModel(userID string) userModel.Staff {
	return userModel.Staff{
		UserID:   userID,
		Position: r.Position,
		Status:   "active",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.Username,
			ModifiedBy: r.Username,
		},
	}
}

// LoginRequest is scoped by role: the same username can only sign in
// through the portal of its own role.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=owner staff customer"`
}

type LoginResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	User         userDto.UserResponse `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,password_policy"`
}
