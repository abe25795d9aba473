package repositories

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// BaseRegistryReader defines read operations for base reference data
type BaseRegistryReader interface {
	// FindBaseByID retrieves a specific base by its unique identifier.
	FindBaseByID(ctx context.Context, baseID string) (*domain.Base, error)

	// ListBases retrieves all registered bases.
	ListBases(ctx context.Context) ([]domain.Base, error)
}

// BaseRegistryWriter defines write operations for base reference data
type BaseRegistryWriter interface {
	// SaveBase persists a new base.
	SaveBase(ctx context.Context, base domain.Base) error

	// UpdateBase updates an existing base's details.
	UpdateBase(ctx context.Context, base domain.Base) error
}

// BaseRegistryRepositoryFacade combines all base-related repository interfaces
type BaseRegistryRepositoryFacade interface {
	BaseRegistryReader
	BaseRegistryWriter
}

// AssetTypeReader defines read operations for asset type reference data
type AssetTypeReader interface {
	// FindAssetTypeByID retrieves a specific asset type by its unique identifier.
	FindAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error)

	// ListAssetTypes retrieves all registered asset types.
	ListAssetTypes(ctx context.Context) ([]domain.AssetType, error)
}

// AssetTypeWriter defines write operations for asset type reference data
type AssetTypeWriter interface {
	// SaveAssetType persists a new asset type.
	SaveAssetType(ctx context.Context, assetType domain.AssetType) error

	// UpdateAssetType updates an existing asset type's details.
	UpdateAssetType(ctx context.Context, assetType domain.AssetType) error
}

// AssetTypeRepositoryFacade combines all asset-type-related repository interfaces
type AssetTypeRepositoryFacade interface {
	AssetTypeReader
	AssetTypeWriter
}
