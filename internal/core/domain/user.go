package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role defines the closed set of roles an actor can hold. Role checks go
// through the authorization policy in the services layer, never through
// ad-hoc string comparisons in handlers.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleBaseCommander    Role = "base commander"
	RoleLogisticsOfficer Role = "logistics officer"
	RolePersonnel        Role = "personnel"
)

// ParseRole normalizes and validates a role string.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleBaseCommander:
		return RoleBaseCommander, nil
	case RoleLogisticsOfficer:
		return RoleLogisticsOfficer, nil
	case RolePersonnel:
		return RolePersonnel, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// IsValid reports whether r is a member of the closed enumeration.
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// ServiceIDPrefix returns the role-specific prefix applied to human-readable
// service identifiers at registration time.
func (r Role) ServiceIDPrefix() string {
	switch r {
	case RoleBaseCommander:
		return "CM"
	case RoleLogisticsOfficer:
		return "LG"
	case RolePersonnel:
		return "PS"
	}
	return ""
}

// User represents an actor of the system. BaseID is nil only for admins;
// ServiceID is set for all non-admin roles.
type User struct {
	UserID       string  `json:"userID"` // Primary Key (UUID)
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Role         Role    `json:"role"`
	BaseID       *string `json:"baseID,omitempty"`
	ServiceID    *string `json:"serviceID,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// Actor is the authenticated identity attached to a request: just enough to
// drive authorization and base pinning, without a user-repository round trip.
type Actor struct {
	UserID string
	Role   Role
	BaseID string // empty for admins
}

// HomeBase returns the actor's base affiliation, empty when none exists.
func (a Actor) HomeBase() string {
	return a.BaseID
}
