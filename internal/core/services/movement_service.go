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

// movementService provides purchase recording and ledger queries.
type movementService struct {
	BaseService
	movementRepo   portsrepo.MovementRepositoryFacade
	transferRepo   portsrepo.TransferRepositoryFacade
	assignmentRepo portsrepo.AssignmentRepositoryFacade
	baseRepo       portsrepo.BaseRegistryRepositoryFacade
	assetTypeRepo  portsrepo.AssetTypeRepositoryFacade
}

// NewMovementService creates a new MovementService.
func NewMovementService(movementRepo portsrepo.MovementRepositoryFacade, transferRepo portsrepo.TransferRepositoryFacade, assignmentRepo portsrepo.AssignmentRepositoryFacade, baseRepo portsrepo.BaseRegistryRepositoryFacade, assetTypeRepo portsrepo.AssetTypeRepositoryFacade, policy Policy) portssvc.MovementSvcFacade {
	return &movementService{
		BaseService:    BaseService{Policy: policy},
		movementRepo:   movementRepo,
		transferRepo:   transferRepo,
		assignmentRepo: assignmentRepo,
		baseRepo:       baseRepo,
		assetTypeRepo:  assetTypeRepo,
	}
}

// Ensure movementService implements the portssvc.MovementSvcFacade interface
var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// validateMovementTarget checks that the base and asset type a movement acts
// on both exist, and that the base is still active. All checks run before
// anything is persisted.
func (s *movementService) validateMovementTarget(ctx context.Context, baseID, assetTypeID string) error {
	base, err := s.baseRepo.FindBaseByID(ctx, baseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown base %s", apperrors.ErrValidation, baseID)
		}
		return err
	}
	if !base.IsActive {
		return fmt.Errorf("%w: base %s is inactive", apperrors.ErrValidation, baseID)
	}

	if _, err := s.assetTypeRepo.FindAssetTypeByID(ctx, assetTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown asset type %s", apperrors.ErrValidation, assetTypeID)
		}
		return err
	}

	return nil
}

// RecordPurchase validates and persists a purchase event, crediting the
// receiving base's stock atomically.
func (s *movementService) RecordPurchase(ctx context.Context, actor domain.Actor, req dto.CreatePurchaseRequest) (*domain.MovementEvent, error) {
	if err := s.Policy.RequireInitiate(actor, domain.KindPurchase); err != nil {
		s.LogDebug(ctx, "purchase rejected by policy", "role", string(actor.Role))
		return nil, err
	}

	baseID, err := s.Policy.EffectiveBase(actor, req.BaseID)
	if err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.UnitCost != nil && req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unit cost must not be negative", apperrors.ErrValidation)
	}

	if err := s.validateMovementTarget(ctx, baseID, req.AssetTypeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}

	event := domain.MovementEvent{
		EventID:     uuid.NewString(),
		AssetTypeID: req.AssetTypeID,
		BaseID:      baseID,
		Quantity:    req.Quantity,
		Kind:        domain.KindPurchase,
		ActorID:     actor.UserID,
		UnitCost:    req.UnitCost,
		OccurredAt:  occurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.movementRepo.SavePurchase(ctx, event); err != nil {
		s.LogError(ctx, err, "failed to save purchase", "base_id", baseID, "asset_type_id", req.AssetTypeID)
		return nil, err
	}

	s.LogInfo(ctx, "purchase recorded", "event_id", event.EventID, "base_id", baseID, "quantity", req.Quantity)
	return &event, nil
}

// scopeMovementFilter converts listing params into a repository filter,
// pinning non-admin actors to their own base. Personnel have no base-wide
// read access to the ledger.
func (s *movementService) scopeMovementFilter(actor domain.Actor, params dto.ListMovementsParams) (domain.MovementFilter, error) {
	if actor.Role == domain.RolePersonnel {
		return domain.MovementFilter{}, fmt.Errorf("%w: personnel may not query the movement ledger", apperrors.ErrForbidden)
	}

	filter := domain.MovementFilter{
		BaseID:      params.BaseID,
		AssetTypeID: params.AssetTypeID,
		DateFrom:    normalizeStartDate(params.StartDate),
		DateTo:      normalizeEndDate(params.EndDate),
	}

	if params.Kind != nil {
		kind := domain.MovementKind(*params.Kind)
		if !kind.IsValid() {
			return domain.MovementFilter{}, fmt.Errorf("%w: unknown movement type %q", apperrors.ErrValidation, *params.Kind)
		}
		filter.Kind = &kind
	}

	if actor.Role != domain.RoleAdmin {
		home := actor.HomeBase()
		if home == "" {
			return domain.MovementFilter{}, fmt.Errorf("%w: actor %s has no base affiliation", apperrors.ErrForbidden, actor.UserID)
		}
		filter.BaseID = &home
	}

	return filter, nil
}

// ListPurchases retrieves a paginated, role-scoped listing of purchase events.
func (s *movementService) ListPurchases(ctx context.Context, actor domain.Actor, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	purchase := string(domain.KindPurchase)
	params.Kind = &purchase
	return s.ListMovements(ctx, actor, params)
}

// ListMovements retrieves a paginated, role-scoped listing of movement events,
// each with its originating transfer or assignment resolved for display.
func (s *movementService) ListMovements(ctx context.Context, actor domain.Actor, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	filter, err := s.scopeMovementFilter(actor, params)
	if err != nil {
		return nil, err
	}

	events, nextToken, err := s.movementRepo.ListMovements(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "failed to list movements")
		return nil, err
	}

	movements := dto.ToMovementResponses(events)
	resolver := newReferenceResolver(s.transferRepo, s.assignmentRepo)
	for i := range movements {
		if err := resolver.resolve(ctx, &movements[i]); err != nil {
			s.LogError(ctx, err, "failed to resolve movement reference", "event_id", movements[i].EventID)
			return nil, err
		}
	}

	return &dto.ListMovementsResponse{
		Movements: movements,
		NextToken: nextToken,
	}, nil
}

// GetMovementByID retrieves a single movement event within the actor's scope,
// with its originating transfer or assignment resolved for display.
func (s *movementService) GetMovementByID(ctx context.Context, actor domain.Actor, eventID string) (*dto.MovementResponse, error) {
	event, err := s.movementRepo.FindMovementByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !s.Policy.CanReadBase(actor, event.BaseID) {
		return nil, fmt.Errorf("%w: movement belongs to another base", apperrors.ErrForbidden)
	}

	resp := dto.ToMovementResponse(event)
	resolver := newReferenceResolver(s.transferRepo, s.assignmentRepo)
	if err := resolver.resolve(ctx, &resp); err != nil {
		s.LogError(ctx, err, "failed to resolve movement reference", "event_id", eventID)
		return nil, err
	}

	return &resp, nil
}

// referenceResolver attaches the transfer or assignment a movement event
// belongs to. Lookups are memoized so the two legs of a transfer, or an
// assignment and its expenditures, cost one query per referenced record.
type referenceResolver struct {
	transferRepo   portsrepo.TransferRepositoryFacade
	assignmentRepo portsrepo.AssignmentRepositoryFacade
	transfers      map[string]*dto.TransferResponse
	assignments    map[string]*dto.AssignmentResponse
}

func newReferenceResolver(transferRepo portsrepo.TransferRepositoryFacade, assignmentRepo portsrepo.AssignmentRepositoryFacade) *referenceResolver {
	return &referenceResolver{
		transferRepo:   transferRepo,
		assignmentRepo: assignmentRepo,
		transfers:      map[string]*dto.TransferResponse{},
		assignments:    map[string]*dto.AssignmentResponse{},
	}
}

// resolve populates the movement's reference detail. Purchases carry no
// reference and pass through untouched.
func (r *referenceResolver) resolve(ctx context.Context, m *dto.MovementResponse) error {
	if m.Reference == nil {
		return nil
	}

	switch domain.ReferenceKind(m.Reference.Kind) {
	case domain.RefTransfer:
		cached, ok := r.transfers[m.Reference.ID]
		if !ok {
			transfer, err := r.transferRepo.FindTransferByID(ctx, m.Reference.ID)
			if err != nil {
				return err
			}
			resp := dto.ToTransferResponse(transfer)
			cached = &resp
			r.transfers[m.Reference.ID] = cached
		}
		m.Reference.Transfer = cached
	case domain.RefAssignment:
		cached, ok := r.assignments[m.Reference.ID]
		if !ok {
			assignment, err := r.assignmentRepo.FindAssignmentByID(ctx, m.Reference.ID)
			if err != nil {
				return err
			}
			resp := dto.ToAssignmentResponse(assignment)
			cached = &resp
			r.assignments[m.Reference.ID] = cached
		}
		m.Reference.Assignment = cached
	}

	return nil
}

// normalizeStartDate widens a date-only lower bound to the start of that day.
func normalizeStartDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return &start
}

// normalizeEndDate widens a date-only upper bound to the last instant of that
// day, so an endDate of 2025-03-01 includes everything that happened on it.
func normalizeEndDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	end := time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999999999, time.UTC)
	return &end
}
