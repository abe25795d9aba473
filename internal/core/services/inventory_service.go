package services

import (
	"context"
	"fmt"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
)

// inventoryService answers balance queries by replaying the movement ledger.
type inventoryService struct {
	BaseService
	stockRepo     portsrepo.StockRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(stockRepo portsrepo.StockRepositoryFacade, reportingRepo portsrepo.ReportingRepository, policy Policy) portssvc.InventorySvcFacade {
	return &inventoryService{
		BaseService:   BaseService{Policy: policy},
		stockRepo:     stockRepo,
		reportingRepo: reportingRepo,
	}
}

// Ensure inventoryService implements the portssvc.InventorySvcFacade interface
var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) authorizeStockRead(actor domain.Actor, baseID string) error {
	if actor.Role == domain.RolePersonnel {
		return fmt.Errorf("%w: personnel may not query stock levels", apperrors.ErrForbidden)
	}
	if !s.Policy.CanReadBase(actor, baseID) {
		return fmt.Errorf("%w: stock belongs to another base", apperrors.ErrForbidden)
	}
	return nil
}

// GetBalance computes the current balance for a (base, assetType) pair by
// replaying the movement ledger. A pair with no movements yields zero.
func (s *inventoryService) GetBalance(ctx context.Context, actor domain.Actor, baseID, assetTypeID string) (*domain.StockLevel, error) {
	if err := s.authorizeStockRead(actor, baseID); err != nil {
		return nil, err
	}

	stock, err := s.stockRepo.FindStock(ctx, baseID, assetTypeID)
	if err != nil {
		s.LogError(ctx, err, "failed to compute balance", "base_id", baseID, "asset_type_id", assetTypeID)
		return nil, err
	}

	return stock, nil
}

// GetBaseHoldings retrieves the asset types with a positive net quantity at a base.
func (s *inventoryService) GetBaseHoldings(ctx context.Context, actor domain.Actor, baseID string) ([]domain.AssetNetQuantity, error) {
	if err := s.authorizeStockRead(actor, baseID); err != nil {
		return nil, err
	}

	holdings, err := s.reportingRepo.GetNetQuantitiesByBase(ctx, baseID, domain.SummaryScope{})
	if err != nil {
		s.LogError(ctx, err, "failed to query base holdings", "base_id", baseID)
		return nil, err
	}

	return holdings, nil
}
