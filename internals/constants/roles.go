package constants

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

var AllRoles = []Role{RoleStudent, RoleAdmin, RoleSuperAdmin}

// ParseRole accepts any casing; unknown values are rejected.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("invalid role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ==========================
// Capabilities
// ==========================

type Capability int

const (
	CapSubmitRequest Capability = iota + 1
	CapCancelOwnRequest
	CapViewOwnRequests
	CapDecideRequest
	CapViewAllRequests
	CapManageBlackouts
	CapViewBlackouts
	CapManageUsers
	CapManageOwnProfile
	CapReadOwnNotifications
)

var capabilityNames = map[Capability]string{
	CapSubmitRequest:        "submit exeat requests",
	CapCancelOwnRequest:     "cancel exeat requests",
	CapViewOwnRequests:      "view own exeat requests",
	CapDecideRequest:        "decide exeat requests",
	CapViewAllRequests:      "view all exeat requests",
	CapManageBlackouts:      "manage blackout dates",
	CapViewBlackouts:        "view blackout dates",
	CapManageUsers:          "manage users",
	CapManageOwnProfile:     "manage own profile",
	CapReadOwnNotifications: "read notifications",
}

func (c Capability) String() string {
	if s, ok := capabilityNames[c]; ok {
		return s
	}
	return fmt.Sprintf("capability(%d)", int(c))
}

var roleCapabilities = map[Role]map[Capability]bool{
	RoleStudent: {
		CapSubmitRequest:        true,
		CapCancelOwnRequest:     true,
		CapViewOwnRequests:      true,
		CapViewBlackouts:        true,
		CapManageOwnProfile:     true,
		CapReadOwnNotifications: true,
	},
	RoleAdmin: {
		CapViewOwnRequests:      true,
		CapDecideRequest:        true,
		CapViewAllRequests:      true,
		CapViewBlackouts:        true,
		CapManageOwnProfile:     true,
		CapReadOwnNotifications: true,
	},
	RoleSuperAdmin: {
		CapViewOwnRequests:      true,
		CapDecideRequest:        true,
		CapViewAllRequests:      true,
		CapManageBlackouts:      true,
		CapViewBlackouts:        true,
		CapManageUsers:          true,
		CapManageOwnProfile:     true,
		CapReadOwnNotifications: true,
	},
}

// Can reports whether the role holds the capability.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// Template pesan error role
const ErrCapabilityMissing = "Forbidden: you do not have permission to %s."

func CapabilityError(c Capability) string {
	return fmt.Sprintf(ErrCapabilityMissing, c)
}
