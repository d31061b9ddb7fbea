package domain

import (
	"errors"
)

const (
	RoleStaff      = "staff"
	RoleManager    = "manager"
	RoleOwner      = "owner"
	RoleSuperAdmin = "super_admin"

	UserTypeAdmin    = "admin"
	UserTypeEmployee = "employee"
)

// roleLevels orders the employee role hierarchy for permission checks.
var roleLevels = map[string]int{
	RoleStaff:      1,
	RoleManager:    2,
	RoleOwner:      3,
	RoleSuperAdmin: 4,
}

// RoleAtLeast reports whether role meets or exceeds required in the
// staff < manager < owner < super_admin hierarchy. Unknown roles rank lowest.
func RoleAtLeast(role, required string) bool {
	return roleLevels[role] >= roleLevels[required]
}

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"

	ErrParseUUID         = errors.New("failed to parse UUID")
	ErrUserNotAllowed    = errors.New("user not allowed")
	ErrTokenNotFound     = errors.New("token not found")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenExpired      = errors.New("token expired")
	ErrStoreAccessDenied = errors.New("no access to the requested store")
	ErrRoleInsufficient  = errors.New("insufficient role for this operation")
)
