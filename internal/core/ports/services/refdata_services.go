package services

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/dto"
)

// BaseSvcFacade defines operations for base reference data
type BaseSvcFacade interface {
	// CreateBase registers a new base. Admin only.
	CreateBase(ctx context.Context, actor domain.Actor, req dto.CreateBaseRequest) (*domain.Base, error)

	// GetBaseByID retrieves a specific base.
	GetBaseByID(ctx context.Context, baseID string) (*domain.Base, error)

	// ListBases retrieves all registered bases.
	ListBases(ctx context.Context) ([]domain.Base, error)

	// UpdateBase updates a base's details. Admin only.
	UpdateBase(ctx context.Context, actor domain.Actor, baseID string, req dto.UpdateBaseRequest) (*domain.Base, error)
}

// AssetTypeSvcFacade defines operations for asset type reference data
type AssetTypeSvcFacade interface {
	// CreateAssetType registers a new asset type. Admin or logistics officer.
	CreateAssetType(ctx context.Context, actor domain.Actor, req dto.CreateAssetTypeRequest) (*domain.AssetType, error)

	// GetAssetTypeByID retrieves a specific asset type.
	GetAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error)

	// ListAssetTypes retrieves all registered asset types.
	ListAssetTypes(ctx context.Context) ([]domain.AssetType, error)

	// UpdateAssetType updates an asset type's details. Admin or logistics officer.
	UpdateAssetType(ctx context.Context, actor domain.Actor, assetTypeID string, req dto.UpdateAssetTypeRequest) (*domain.AssetType, error)
}
