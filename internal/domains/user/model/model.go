package model

import (
	"fmt"
	"time"

	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	"github.com/reagan13/beach-management-system-java-sub000/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID            = "id"
	FieldUsername      = "username"
	FieldPassword      = "password"
	FieldEmail         = "email"
	FieldFullName      = "full_name"
	FieldAddress       = "address"
	FieldContactNumber = "contact_number"
	FieldRole          = "role"
	FieldActive        = "active"
	FieldLastLogin     = "last_login"
)

const (
	OwnerTableName    = "owner"
	OwnerEntityName   = "owner"
	CustomerTableName = "customer"
	CustomerEntity    = "customer"
	StaffTableName    = "staff"
	StaffEntityName   = "staff"

	FieldUserID = "user_id"
)

// Role is the tagged account role, decoded once at the repository/DTO
// boundary instead of carrying free-form strings through the system.
type Role string

const (
	RoleOwner    Role = constant.RoleOwner
	RoleStaff    Role = constant.RoleStaff
	RoleCustomer Role = constant.RoleCustomer
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleOwner, RoleStaff, RoleCustomer:
		return Role(value), nil
	default:
		return "", fmt.Errorf("unknown role: %q", value)
	}
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID            string     `db:"id"`
	Username      string     `db:"username"`
	Password      string     `db:"password"`
	Email         string     `db:"email"`
	FullName      string     `db:"full_name"`
	Address       string     `db:"address"`
	ContactNumber string     `db:"contact_number"`
	Role          Role       `db:"role"`
	Active        bool       `db:"active"`
	LastLogin     *time.Time `db:"last_login"`
	model.Metadata
}

// Owner holds the owner-specific profile attached to a base user.
type Owner struct {
	UserID         string `db:"user_id"`
	BusinessName   string `db:"business_name"`
	BusinessPermit string `db:"business_permit"`
	model.Metadata
}

// Customer holds the customer-specific profile attached to a base user.
type Customer struct {
	UserID                 string `db:"user_id"`
	PreferredAccommodation string `db:"preferred_accommodation"`
	VisitCount             int    `db:"visit_count"`
	model.Metadata
}

// Staff holds the staff-specific profile attached to a base user.
type Staff struct {
	UserID   string `db:"user_id"`
	Position string `db:"position"`
	Status   string `db:"status"`
	model.Metadata
}
