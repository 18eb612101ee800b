package dto

import (
	"time"

	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
)

type UpdateUserRequest struct {
	Email         string `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	FullName      string `db:"full_name"      json:"full_name"      validate:"omitempty,max=100"`
	Address       string `db:"address"        json:"address"        validate:"omitempty,max=255"`
	ContactNumber string `db:"contact_number" json:"contact_number" validate:"omitempty,max=20"`
	Active        *bool  `db:"active"         json:"active"         validate:"omitempty"`
}

// ProfileResponse carries the role-specific attributes of a user. Only
// the fields for the user's own role are populated.
type ProfileResponse struct {
	BusinessName           string `json:"business_name,omitempty"`
	BusinessPermit         string `json:"business_permit,omitempty"`
	PreferredAccommodation string `json:"preferred_accommodation,omitempty"`
	VisitCount             int    `json:"visit_count,omitempty"`
	Position               string `json:"position,omitempty"`
	Status                 string `json:"status,omitempty"`
}

type UserResponse struct {
	ID            string           `json:"id"`
	Username      string           `json:"username"`
	Email         string           `json:"email"`
	FullName      string           `json:"full_name"`
	Address       string           `json:"address"`
	ContactNumber string           `json:"contact_number"`
	Role          string           `json:"role"`
	Active        bool             `json:"active"`
	LastLogin     *time.Time       `json:"last_login,omitempty"`
	Profile       *ProfileResponse `json:"profile,omitempty"`
	gDto.Metadata
}

func (u *UserResponse) FromModel(mod model.User) {
	u.ID = mod.ID
	u.Username = mod.Username
	u.Email = mod.Email
	u.FullName = mod.FullName
	u.Address = mod.Address
	u.ContactNumber = mod.ContactNumber
	u.Role = mod.Role.String()
	u.Active = mod.Active
	u.LastLogin = mod.LastLogin
	u.Metadata.FromModel(mod.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (u *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	u.TotalData = totalData
	u.TotalPage = shared.CalculateTotalPage(totalData, limit)

	u.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		u.Users[i].FromModel(mod)
	}
}
