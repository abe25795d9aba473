package services

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, params dto.ListUsersParams) (*dto.ListUsersResponse, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user with a hashed password and, for
	// non-admin roles, an allocated service identifier.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdateUser updates a user's details. Admin only.
	UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser soft-deletes a user. Admin only.
	DeleteUser(ctx context.Context, actor domain.Actor, userID string) error
}

// AuthSvcFacade defines authentication operations
type AuthSvcFacade interface {
	// AuthenticateUser verifies the email/password pair and returns the user.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GenerateAccessToken issues a signed JWT carrying the user's role and
	// base affiliation.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, error)
}

// UserSvcFacade combines all user-related service interfaces
// This is a facade for clients that need access to all operations
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	AuthSvcFacade
}
