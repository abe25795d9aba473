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

// ErrSameBaseTransfer rejects transfers where source and destination match.
var ErrSameBaseTransfer = errors.New("transfer source and destination must differ")

// transferService coordinates inter-base transfers.
type transferService struct {
	BaseService
	transferRepo  portsrepo.TransferRepositoryFacade
	movementRepo  portsrepo.MovementRepositoryFacade
	baseRepo      portsrepo.BaseRegistryRepositoryFacade
	assetTypeRepo portsrepo.AssetTypeRepositoryFacade
}

// NewTransferService creates a new TransferService.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, movementRepo portsrepo.MovementRepositoryFacade, baseRepo portsrepo.BaseRegistryRepositoryFacade, assetTypeRepo portsrepo.AssetTypeRepositoryFacade, policy Policy) portssvc.TransferSvcFacade {
	return &transferService{
		BaseService:   BaseService{Policy: policy},
		transferRepo:  transferRepo,
		movementRepo:  movementRepo,
		baseRepo:      baseRepo,
		assetTypeRepo: assetTypeRepo,
	}
}

// Ensure transferService implements the portssvc.TransferSvcFacade interface
var _ portssvc.TransferSvcFacade = (*transferService)(nil)

func (s *transferService) validateBase(ctx context.Context, baseID string) error {
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
	return nil
}

// CreateTransfer validates and persists a transfer between two bases. The
// source base is forced to the actor's own base for non-admin actors, and
// the whole write is atomic: either the transfer record, both events and
// both balance updates land, or none of them do.
func (s *transferService) CreateTransfer(ctx context.Context, actor domain.Actor, req dto.CreateTransferRequest) (*domain.Transfer, error) {
	if err := s.Policy.RequireInitiate(actor, domain.KindTransferOut); err != nil {
		s.LogDebug(ctx, "transfer rejected by policy", "role", string(actor.Role))
		return nil, err
	}

	fromBaseID, err := s.Policy.EffectiveBase(actor, req.FromBaseID)
	if err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if fromBaseID == req.ToBaseID {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrSameBaseTransfer)
	}

	// Fail fast before touching stock: both endpoints and the asset type
	// must be valid.
	if err := s.validateBase(ctx, fromBaseID); err != nil {
		return nil, err
	}
	if err := s.validateBase(ctx, req.ToBaseID); err != nil {
		return nil, err
	}
	if _, err := s.assetTypeRepo.FindAssetTypeByID(ctx, req.AssetTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown asset type %s", apperrors.ErrValidation, req.AssetTypeID)
		}
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

	transfer := domain.Transfer{
		TransferID:  uuid.NewString(),
		AssetTypeID: req.AssetTypeID,
		FromBaseID:  fromBaseID,
		ToBaseID:    req.ToBaseID,
		Quantity:    req.Quantity,
		InitiatedBy: actor.UserID,
		OccurredAt:  occurredAt,
		AuditFields: audit,
	}

	ref := domain.TransferRef(transfer.TransferID)
	outEvent := domain.MovementEvent{
		EventID:     uuid.NewString(),
		AssetTypeID: req.AssetTypeID,
		BaseID:      fromBaseID,
		Quantity:    req.Quantity,
		Kind:        domain.KindTransferOut,
		Reference:   ref,
		ActorID:     actor.UserID,
		OccurredAt:  occurredAt,
		AuditFields: audit,
	}
	inEvent := domain.MovementEvent{
		EventID:     uuid.NewString(),
		AssetTypeID: req.AssetTypeID,
		BaseID:      req.ToBaseID,
		Quantity:    req.Quantity,
		Kind:        domain.KindTransferIn,
		Reference:   ref,
		ActorID:     actor.UserID,
		OccurredAt:  occurredAt,
		AuditFields: audit,
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer, outEvent, inEvent); err != nil {
		s.LogError(ctx, err, "failed to save transfer", "from_base_id", fromBaseID, "to_base_id", req.ToBaseID)
		return nil, err
	}

	s.LogInfo(ctx, "transfer recorded", "transfer_id", transfer.TransferID, "quantity", req.Quantity)
	return &transfer, nil
}

// GetTransferByID retrieves a transfer with the debit and credit events it
// produced. Either endpoint base qualifies the actor to read it.
func (s *transferService) GetTransferByID(ctx context.Context, actor domain.Actor, transferID string) (*dto.TransferDetailResponse, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, err
	}

	if !s.Policy.CanReadBase(actor, transfer.FromBaseID) && !s.Policy.CanReadBase(actor, transfer.ToBaseID) {
		return nil, fmt.Errorf("%w: transfer belongs to other bases", apperrors.ErrForbidden)
	}

	events, err := s.movementRepo.FindMovementsByReference(ctx, domain.TransferRef(transferID))
	if err != nil {
		s.LogError(ctx, err, "failed to load transfer events", "transfer_id", transferID)
		return nil, err
	}

	return &dto.TransferDetailResponse{
		TransferResponse: dto.ToTransferResponse(transfer),
		Events:           dto.ToMovementResponses(events),
	}, nil
}

// ListTransfers retrieves a paginated, role-scoped listing of transfers.
// Non-admin actors see only transfers touching their own base, which covers
// both the sent and received sides.
func (s *transferService) ListTransfers(ctx context.Context, actor domain.Actor, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error) {
	if actor.Role == domain.RolePersonnel {
		return nil, fmt.Errorf("%w: personnel may not query transfers", apperrors.ErrForbidden)
	}

	filter := domain.TransferFilter{
		BaseID:      params.BaseID,
		AssetTypeID: params.AssetTypeID,
		DateFrom:    normalizeStartDate(params.StartDate),
		DateTo:      normalizeEndDate(params.EndDate),
	}

	if actor.Role != domain.RoleAdmin {
		home := actor.HomeBase()
		if home == "" {
			return nil, fmt.Errorf("%w: actor %s has no base affiliation", apperrors.ErrForbidden, actor.UserID)
		}
		filter.BaseID = &home
	}

	transfers, nextToken, err := s.transferRepo.ListTransfers(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "failed to list transfers")
		return nil, err
	}

	return &dto.ListTransfersResponse{
		Transfers: dto.ToTransferResponses(transfers),
		NextToken: nextToken,
	}, nil
}
