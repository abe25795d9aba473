package dto

import (
	"time"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// DashboardParams defines query parameters for the dashboard summary.
// Omitted dates mean an unbounded window on that side.
type DashboardParams struct {
	BaseID      *string    `form:"baseID"`
	AssetTypeID *string    `form:"assetTypeID"`
	StartDate   *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate     *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// AssetTotalDetail is one asset type's total for a movement kind.
type AssetTotalDetail struct {
	AssetTypeID   string `json:"assetTypeID"`
	AssetTypeName string `json:"assetTypeName"`
	Total         int64  `json:"total"`
}

// DashboardResponse defines the role-scoped aggregate summary.
type DashboardResponse struct {
	Purchases      []AssetTotalDetail `json:"purchases"`
	TransfersIn    []AssetTotalDetail `json:"transfersIn"`
	TransfersOut   []AssetTotalDetail `json:"transfersOut"`
	Assigned       []AssetTotalDetail `json:"assigned"`
	Expended       []AssetTotalDetail `json:"expended"`
	NetMovement    int64              `json:"netMovement"`
	ClosingBalance int64              `json:"closingBalance"`
}

func toAssetTotalDetails(totals []domain.AssetTotal) []AssetTotalDetail {
	details := make([]AssetTotalDetail, len(totals))
	for i, t := range totals {
		details[i] = AssetTotalDetail{
			AssetTypeID:   t.AssetTypeID,
			AssetTypeName: t.AssetTypeName,
			Total:         t.Total,
		}
	}
	return details
}

// ToDashboardResponse converts a domain.SummaryReport to DashboardResponse DTO.
func ToDashboardResponse(r *domain.SummaryReport) DashboardResponse {
	return DashboardResponse{
		Purchases:      toAssetTotalDetails(r.Purchases),
		TransfersIn:    toAssetTotalDetails(r.TransfersIn),
		TransfersOut:   toAssetTotalDetails(r.TransfersOut),
		Assigned:       toAssetTotalDetails(r.Assigned),
		Expended:       toAssetTotalDetails(r.Expended),
		NetMovement:    r.NetMovement,
		ClosingBalance: r.ClosingBalance,
	}
}
