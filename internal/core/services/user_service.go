package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/dto"
	"github.com/milassets/asset_command_app/internal/platform/config"
	"github.com/milassets/asset_command_app/internal/utils"
)

// userService manages user registration, authentication, and lifecycle.
type userService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
	baseRepo portsrepo.BaseRegistryRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, baseRepo portsrepo.BaseRegistryRepositoryFacade, policy Policy) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Policy: policy},
		cfg:         cfg,
		userRepo:    userRepo,
		baseRepo:    baseRepo,
	}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a new user with a hashed password. Non-admin roles must
// name a base and receive a role-prefixed service identifier.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	var baseID *string
	if role != domain.RoleAdmin {
		if req.BaseID == nil || *req.BaseID == "" {
			return nil, fmt.Errorf("%w: role %s requires a base affiliation", apperrors.ErrValidation, role)
		}
		if _, err := s.baseRepo.FindBaseByID(ctx, *req.BaseID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown base %s", apperrors.ErrValidation, *req.BaseID)
			}
			return nil, err
		}
		baseID = req.BaseID
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var serviceID *string
	if prefix := role.ServiceIDPrefix(); prefix != "" {
		id, err := s.userRepo.NextServiceID(ctx, prefix)
		if err != nil {
			s.LogError(ctx, err, "failed to allocate service identifier", "prefix", prefix)
			return nil, err
		}
		serviceID = &id
	}

	now := time.Now().UTC()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:       newUserID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		BaseID:       baseID,
		ServiceID:    serviceID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to save user", "email", req.Email)
		return nil, err
	}

	s.LogInfo(ctx, "user registered", "user_id", user.UserID, "role", string(role))
	return &user, nil
}

// AuthenticateUser verifies the email/password pair. Credential failures are
// indistinguishable from unknown accounts on purpose.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	return user, nil
}

// GenerateAccessToken issues a signed JWT carrying the user's role and base
// affiliation.
func (s *userService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, error) {
	token, err := utils.GenerateAccessJWT(user, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to generate access token", "user_id", user.UserID)
		return "", err
	}
	return token, nil
}

// GetUserByID retrieves a specific user by their ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers retrieves a paginated list of users. A serviceID filter turns the
// listing into an exact lookup.
func (s *userService) ListUsers(ctx context.Context, params dto.ListUsersParams) (*dto.ListUsersResponse, error) {
	if params.ServiceID != nil && *params.ServiceID != "" {
		user, err := s.userRepo.FindUserByServiceID(ctx, *params.ServiceID)
		if err != nil {
			return nil, err
		}
		return &dto.ListUsersResponse{Users: []dto.UserResponse{dto.ToUserResponse(user)}}, nil
	}

	users, err := s.userRepo.FindUsers(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "failed to list users")
		return nil, err
	}
	resp := dto.ToListUserResponse(users)
	return &resp, nil
}

// UpdateUser updates a user's details. Admin only.
func (s *userService) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may update users", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		user.Role = role
	}
	if req.BaseID != nil {
		if *req.BaseID == "" {
			user.BaseID = nil
		} else {
			if _, err := s.baseRepo.FindBaseByID(ctx, *req.BaseID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: unknown base %s", apperrors.ErrValidation, *req.BaseID)
				}
				return nil, err
			}
			user.BaseID = req.BaseID
		}
	}
	if user.Role != domain.RoleAdmin && user.BaseID == nil {
		return nil, fmt.Errorf("%w: role %s requires a base affiliation", apperrors.ErrValidation, user.Role)
	}

	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = actor.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update user", "user_id", userID)
		return nil, err
	}

	return user, nil
}

// DeleteUser soft-deletes a user. Admin only.
func (s *userService) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: only admins may delete users", apperrors.ErrForbidden)
	}
	if actor.UserID == userID {
		return fmt.Errorf("%w: admins may not delete themselves", apperrors.ErrValidation)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now().UTC(), actor.UserID); err != nil {
		s.LogError(ctx, err, "failed to delete user", "user_id", userID)
		return err
	}

	s.LogInfo(ctx, "user deleted", "user_id", userID)
	return nil
}
