package domain

import (
	"fmt"
	"strings"
)

// Role is the closed profile discriminator. It is fixed at sign-up and decides
// which dashboard a session may reach.
type Role string

const (
	RoleBrand   Role = "brand"
	RoleCreator Role = "creator"
)

// ParseRole converts a raw user_type value into a Role.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleBrand:
		return RoleBrand, nil
	case RoleCreator:
		return RoleCreator, nil
	default:
		return "", NewValidationError("user_type", fmt.Sprintf("unknown user type %q", raw))
	}
}

// DashboardPath is the route a session of this role lands on.
func (r Role) DashboardPath() string {
	if r == RoleBrand {
		return "/brand/dashboard"
	}
	return "/creator/dashboard"
}

// AuthPath is the role-appropriate auth entry point.
func (r Role) AuthPath() string {
	return "/auth?type=" + string(r)
}

func (r Role) String() string {
	return string(r)
}
