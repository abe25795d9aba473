package services

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// InventorySvcFacade defines balance query operations
type InventorySvcFacade interface {
	// GetBalance computes the current balance for a (base, assetType) pair by
	// replaying the movement ledger. A pair with no movements yields zero.
	GetBalance(ctx context.Context, actor domain.Actor, baseID, assetTypeID string) (*domain.StockLevel, error)

	// GetBaseHoldings retrieves the asset types with a positive net quantity
	// at a base, subject to the actor's base scope.
	GetBaseHoldings(ctx context.Context, actor domain.Actor, baseID string) ([]domain.AssetNetQuantity, error)
}
