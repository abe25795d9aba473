package dto

import (
	"time"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// StockResponse defines the data returned for a single (base, assetType) balance.
type StockResponse struct {
	BaseID      string    `json:"baseID"`
	AssetTypeID string    `json:"assetTypeID"`
	Balance     int64     `json:"balance"`
	AsOf        time.Time `json:"asOf"`
}

// BaseStockResponse lists the asset types held at a base with their net quantities.
type BaseStockResponse struct {
	BaseID string                   `json:"baseID"`
	Assets []AssetNetQuantityDetail `json:"assets"`
}

// AssetNetQuantityDetail is one asset type's positive net position at a base.
type AssetNetQuantityDetail struct {
	AssetTypeID   string `json:"assetTypeID"`
	AssetTypeName string `json:"assetTypeName"`
	NetQuantity   int64  `json:"netQuantity"`
}

// ToStockResponse converts a domain.StockLevel to StockResponse DTO.
func ToStockResponse(s *domain.StockLevel) StockResponse {
	return StockResponse{
		BaseID:      s.BaseID,
		AssetTypeID: s.AssetTypeID,
		Balance:     s.Balance,
		AsOf:        s.UpdatedAt,
	}
}

// ToBaseStockResponse converts net quantities for a base to BaseStockResponse DTO.
func ToBaseStockResponse(baseID string, quantities []domain.AssetNetQuantity) BaseStockResponse {
	assets := make([]AssetNetQuantityDetail, len(quantities))
	for i, q := range quantities {
		assets[i] = AssetNetQuantityDetail{
			AssetTypeID:   q.AssetTypeID,
			AssetTypeName: q.AssetTypeName,
			NetQuantity:   q.NetQuantity,
		}
	}
	return BaseStockResponse{BaseID: baseID, Assets: assets}
}
