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
)

// ErrExpenditureExceedsRemaining rejects expenditures beyond what an
// assignment still holds.
var ErrExpenditureExceedsRemaining = errors.New("expenditure exceeds remaining assignment quantity")

// assignmentService coordinates assignments to personnel and their expenditures.
type assignmentService struct {
	BaseService
	assignmentRepo portsrepo.AssignmentRepositoryFacade
	movementRepo   portsrepo.MovementRepositoryFacade
	baseRepo       portsrepo.BaseRegistryRepositoryFacade
	assetTypeRepo  portsrepo.AssetTypeRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(assignmentRepo portsrepo.AssignmentRepositoryFacade, movementRepo portsrepo.MovementRepositoryFacade, baseRepo portsrepo.BaseRegistryRepositoryFacade, assetTypeRepo portsrepo.AssetTypeRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, policy Policy) portssvc.AssignmentSvcFacade {
	return &assignmentService{
		BaseService:    BaseService{Policy: policy},
		assignmentRepo: assignmentRepo,
		movementRepo:   movementRepo,
		baseRepo:       baseRepo,
		assetTypeRepo:  assetTypeRepo,
		userRepo:       userRepo,
	}
}

// Ensure assignmentService implements the portssvc.AssignmentSvcFacade interface
var _ portssvc.AssignmentSvcFacade = (*assignmentService)(nil)

// validateAssignee checks that the target user exists, is personnel, and
// belongs to the base the assets are drawn from.
func (s *assignmentService) validateAssignee(ctx context.Context, assignedTo, baseID string) error {
	assignee, err := s.userRepo.FindUserByID(ctx, assignedTo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown assignee %s", apperrors.ErrValidation, assignedTo)
		}
		return err
	}
	if assignee.Role != domain.RolePersonnel {
		return fmt.Errorf("%w: assignee %s is not personnel", apperrors.ErrValidation, assignedTo)
	}
	if assignee.BaseID == nil || *assignee.BaseID != baseID {
		return fmt.Errorf("%w: assignee %s does not belong to base %s", apperrors.ErrValidation, assignedTo, baseID)
	}
	return nil
}

// CreateAssignment validates and persists an assignment to personnel,
// debiting the base's stock atomically.
func (s *assignmentService) CreateAssignment(ctx context.Context, actor domain.Actor, req dto.CreateAssignmentRequest) (*domain.Assignment, error) {
	if err := s.Policy.RequireInitiate(actor, domain.KindAssignment); err != nil {
		s.LogDebug(ctx, "assignment rejected by policy", "role", string(actor.Role))
		return nil, err
	}

	baseID, err := s.Policy.EffectiveBase(actor, req.BaseID)
	if err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	base, err := s.baseRepo.FindBaseByID(ctx, baseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown base %s", apperrors.ErrValidation, baseID)
		}
		return nil, err
	}
	if !base.IsActive {
		return nil, fmt.Errorf("%w: base %s is inactive", apperrors.ErrValidation, baseID)
	}
	if _, err := s.assetTypeRepo.FindAssetTypeByID(ctx, req.AssetTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown asset type %s", apperrors.ErrValidation, req.AssetTypeID)
		}
		return nil, err
	}
	if err := s.validateAssignee(ctx, req.AssignedTo, baseID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actor.UserID,
	}

	assignment := domain.Assignment{
		AssignmentID: uuid.NewString(),
		AssetTypeID:  req.AssetTypeID,
		BaseID:       baseID,
		AssignedTo:   req.AssignedTo,
		AssignedBy:   actor.UserID,
		Quantity:     req.Quantity,
		OccurredAt:   occurredAt,
		AuditFields:  audit,
	}

	event := domain.MovementEvent{
		EventID:     uuid.NewString(),
		AssetTypeID: req.AssetTypeID,
		BaseID:      baseID,
		Quantity:    req.Quantity,
		Kind:        domain.KindAssignment,
		Reference:   domain.AssignmentRef(assignment.AssignmentID),
		ActorID:     actor.UserID,
		OccurredAt:  occurredAt,
		AuditFields: audit,
	}

	if err := s.assignmentRepo.SaveAssignment(ctx, assignment, event); err != nil {
		s.LogError(ctx, err, "failed to save assignment", "base_id", baseID, "assigned_to", req.AssignedTo)
		return nil, err
	}

	s.LogInfo(ctx, "assignment recorded", "assignment_id", assignment.AssignmentID, "quantity", req.Quantity)
	return &assignment, nil
}

// ExpendAssignment records an expenditure against an assignment, debiting
// the base's stock and advancing the assignment's expended quantity in one
// transaction. Partial expenditure is supported; repeated calls consume the
// assignment incrementally.
func (s *assignmentService) ExpendAssignment(ctx context.Context, actor domain.Actor, assignmentID string, req dto.ExpendAssignmentRequest) (*domain.Assignment, error) {
	if err := s.Policy.RequireInitiate(actor, domain.KindExpenditure); err != nil {
		s.LogDebug(ctx, "expenditure rejected by policy", "role", string(actor.Role))
		return nil, err
	}

	assignment, err := s.assignmentRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	if !s.Policy.CanReadBase(actor, assignment.BaseID) {
		return nil, fmt.Errorf("%w: assignment belongs to another base", apperrors.ErrForbidden)
	}

	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.Quantity > assignment.Remaining() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrExpenditureExceedsRemaining)
	}

	now := time.Now().UTC()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}

	event := domain.MovementEvent{
		EventID:     uuid.NewString(),
		AssetTypeID: assignment.AssetTypeID,
		BaseID:      assignment.BaseID,
		Quantity:    req.Quantity,
		Kind:        domain.KindExpenditure,
		Reference:   domain.AssignmentRef(assignment.AssignmentID),
		ActorID:     actor.UserID,
		OccurredAt:  occurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.movementRepo.SaveExpenditure(ctx, event, &assignment.AssignmentID); err != nil {
		s.LogError(ctx, err, "failed to save expenditure", "assignment_id", assignmentID)
		return nil, err
	}

	s.LogInfo(ctx, "expenditure recorded", "assignment_id", assignmentID, "quantity", req.Quantity)

	// Re-read so the response reflects the advanced expended quantity.
	return s.assignmentRepo.FindAssignmentByID(ctx, assignmentID)
}

// GetAssignmentByID retrieves an assignment. Personnel may only read their own.
func (s *assignmentService) GetAssignmentByID(ctx context.Context, actor domain.Actor, assignmentID string) (*domain.Assignment, error) {
	assignment, err := s.assignmentRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	if actor.Role == domain.RolePersonnel {
		if assignment.AssignedTo != actor.UserID {
			return nil, fmt.Errorf("%w: assignment belongs to another user", apperrors.ErrForbidden)
		}
		return assignment, nil
	}

	if !s.Policy.CanReadBase(actor, assignment.BaseID) {
		return nil, fmt.Errorf("%w: assignment belongs to another base", apperrors.ErrForbidden)
	}

	return assignment, nil
}

// ListAssignments retrieves a paginated, role-scoped listing of assignments.
// Personnel are forced onto their own slice regardless of the filters asked
// for; other non-admin roles are pinned to their base.
func (s *assignmentService) ListAssignments(ctx context.Context, actor domain.Actor, params dto.ListAssignmentsParams) (*dto.ListAssignmentsResponse, error) {
	filter := domain.AssignmentFilter{
		BaseID:      params.BaseID,
		AssetTypeID: params.AssetTypeID,
		AssignedTo:  params.AssignedTo,
		DateFrom:    normalizeStartDate(params.StartDate),
		DateTo:      normalizeEndDate(params.EndDate),
	}

	switch actor.Role {
	case domain.RoleAdmin:
		// Unscoped
	case domain.RolePersonnel:
		self := actor.UserID
		filter.AssignedTo = &self
		filter.BaseID = nil
	default:
		home := actor.HomeBase()
		if home == "" {
			return nil, fmt.Errorf("%w: actor %s has no base affiliation", apperrors.ErrForbidden, actor.UserID)
		}
		filter.BaseID = &home
	}

	assignments, nextToken, err := s.assignmentRepo.ListAssignments(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "failed to list assignments")
		return nil, err
	}

	return &dto.ListAssignmentsResponse{
		Assignments: dto.ToAssignmentResponses(assignments),
		NextToken:   nextToken,
	}, nil
}
