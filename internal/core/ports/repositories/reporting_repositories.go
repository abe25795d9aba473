package repositories

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// ReportingRepository defines operations for retrieving aggregate movement data
type ReportingRepository interface {
	// GetMovementSummary retrieves per-asset-type totals for every movement
	// kind within the scope, in a single aggregation query.
	GetMovementSummary(ctx context.Context, scope domain.SummaryScope) (*domain.SummaryReport, error)

	// GetNetQuantitiesByBase retrieves the signed net quantity per asset type
	// at a base, keeping only asset types with a positive net position.
	GetNetQuantitiesByBase(ctx context.Context, baseID string, scope domain.SummaryScope) ([]domain.AssetNetQuantity, error)
}
