package models

import "time"

// User is one row of the users table. BaseID is NULL for admins; ServiceID is
// NULL for admins and unique when present.
type User struct {
	UserID       string  `json:"userID"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Role         string  `json:"role"`
	BaseID       *string `json:"baseID,omitempty"`
	ServiceID    *string `json:"serviceID,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
