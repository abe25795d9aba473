package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/dto"
)

// baseRegistryService manages base reference data.
type baseRegistryService struct {
	BaseService
	baseRepo portsrepo.BaseRegistryRepositoryFacade
}

// NewBaseRegistryService creates a new BaseRegistryService.
func NewBaseRegistryService(baseRepo portsrepo.BaseRegistryRepositoryFacade, policy Policy) portssvc.BaseSvcFacade {
	return &baseRegistryService{
		BaseService: BaseService{Policy: policy},
		baseRepo:    baseRepo,
	}
}

// Ensure baseRegistryService implements the portssvc.BaseSvcFacade interface
var _ portssvc.BaseSvcFacade = (*baseRegistryService)(nil)

// CreateBase registers a new base. Admin only.
func (s *baseRegistryService) CreateBase(ctx context.Context, actor domain.Actor, req dto.CreateBaseRequest) (*domain.Base, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may register bases", apperrors.ErrForbidden)
	}

	now := time.Now().UTC()
	base := domain.Base{
		BaseID:   uuid.NewString(),
		Name:     req.Name,
		Location: req.Location,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.baseRepo.SaveBase(ctx, base); err != nil {
		s.LogError(ctx, err, "failed to save base", "name", req.Name)
		return nil, err
	}

	s.LogInfo(ctx, "base registered", "base_id", base.BaseID)
	return &base, nil
}

// GetBaseByID retrieves a specific base.
func (s *baseRegistryService) GetBaseByID(ctx context.Context, baseID string) (*domain.Base, error) {
	return s.baseRepo.FindBaseByID(ctx, baseID)
}

// ListBases retrieves all registered bases.
func (s *baseRegistryService) ListBases(ctx context.Context) ([]domain.Base, error) {
	return s.baseRepo.ListBases(ctx)
}

// UpdateBase updates a base's details. Admin only. Deactivating a base stops
// new movements against it; historical records are untouched.
func (s *baseRegistryService) UpdateBase(ctx context.Context, actor domain.Actor, baseID string, req dto.UpdateBaseRequest) (*domain.Base, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may update bases", apperrors.ErrForbidden)
	}

	base, err := s.baseRepo.FindBaseByID(ctx, baseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		base.Name = *req.Name
	}
	if req.Location != nil {
		base.Location = *req.Location
	}
	if req.IsActive != nil {
		base.IsActive = *req.IsActive
	}
	base.LastUpdatedAt = time.Now().UTC()
	base.LastUpdatedBy = actor.UserID

	if err := s.baseRepo.UpdateBase(ctx, *base); err != nil {
		s.LogError(ctx, err, "failed to update base", "base_id", baseID)
		return nil, err
	}

	return base, nil
}

// assetTypeService manages asset type reference data.
type assetTypeService struct {
	BaseService
	assetTypeRepo portsrepo.AssetTypeRepositoryFacade
}

// NewAssetTypeService creates a new AssetTypeService.
func NewAssetTypeService(assetTypeRepo portsrepo.AssetTypeRepositoryFacade, policy Policy) portssvc.AssetTypeSvcFacade {
	return &assetTypeService{
		BaseService:   BaseService{Policy: policy},
		assetTypeRepo: assetTypeRepo,
	}
}

// Ensure assetTypeService implements the portssvc.AssetTypeSvcFacade interface
var _ portssvc.AssetTypeSvcFacade = (*assetTypeService)(nil)

func canManageAssetTypes(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleLogisticsOfficer
}

// CreateAssetType registers a new asset type. Admin or logistics officer.
func (s *assetTypeService) CreateAssetType(ctx context.Context, actor domain.Actor, req dto.CreateAssetTypeRequest) (*domain.AssetType, error) {
	if !canManageAssetTypes(actor.Role) {
		return nil, fmt.Errorf("%w: role %s may not manage asset types", apperrors.ErrForbidden, actor.Role)
	}

	now := time.Now().UTC()
	assetType := domain.AssetType{
		AssetTypeID: uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Unit:        req.Unit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.assetTypeRepo.SaveAssetType(ctx, assetType); err != nil {
		s.LogError(ctx, err, "failed to save asset type", "name", req.Name)
		return nil, err
	}

	s.LogInfo(ctx, "asset type registered", "asset_type_id", assetType.AssetTypeID)
	return &assetType, nil
}

// GetAssetTypeByID retrieves a specific asset type.
func (s *assetTypeService) GetAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error) {
	return s.assetTypeRepo.FindAssetTypeByID(ctx, assetTypeID)
}

// ListAssetTypes retrieves all registered asset types.
func (s *assetTypeService) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	return s.assetTypeRepo.ListAssetTypes(ctx)
}

// UpdateAssetType updates an asset type's name or unit. The category is
// immutable once movements can reference it.
func (s *assetTypeService) UpdateAssetType(ctx context.Context, actor domain.Actor, assetTypeID string, req dto.UpdateAssetTypeRequest) (*domain.AssetType, error) {
	if !canManageAssetTypes(actor.Role) {
		return nil, fmt.Errorf("%w: role %s may not manage asset types", apperrors.ErrForbidden, actor.Role)
	}

	assetType, err := s.assetTypeRepo.FindAssetTypeByID(ctx, assetTypeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		assetType.Name = *req.Name
	}
	if req.Unit != nil {
		assetType.Unit = *req.Unit
	}
	assetType.LastUpdatedAt = time.Now().UTC()
	assetType.LastUpdatedBy = actor.UserID

	if err := s.assetTypeRepo.UpdateAssetType(ctx, *assetType); err != nil {
		s.LogError(ctx, err, "failed to update asset type", "asset_type_id", assetTypeID)
		return nil, err
	}

	return assetType, nil
}
