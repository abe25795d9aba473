package domain

import "time"

// AssetTotal is one grouped-sum row of a dashboard aggregate: the total
// quantity moved for a single asset type within the summary scope.
type AssetTotal struct {
	AssetTypeID   string `json:"assetTypeID"`
	AssetTypeName string `json:"assetTypeName"`
	Total         int64  `json:"total"`
}

// SummaryScope is the resolved, role-adjusted scope a summary is computed
// over. BaseID/AssetTypeID empty means unscoped; AssignedTo is set only for
// personnel actors, restricting assignment aggregates to their own records.
type SummaryScope struct {
	BaseID      string
	AssetTypeID string
	AssignedTo  string
	StartDate   *time.Time
	EndDate     *time.Time
}

// SummaryReport is the dashboard rollup over the movement ledger for one
// scope: per-asset-type grouped sums per movement category, plus the derived
// net movement and closing balance.
type SummaryReport struct {
	Purchases    []AssetTotal `json:"purchases"`
	TransfersIn  []AssetTotal `json:"transfersIn"`
	TransfersOut []AssetTotal `json:"transfersOut"`
	Assigned     []AssetTotal `json:"assigned"`
	Expended     []AssetTotal `json:"expended"`

	NetMovement    int64 `json:"netMovement"`
	ClosingBalance int64 `json:"closingBalance"`
}

// SumTotals adds up the totals of one aggregate column.
func SumTotals(rows []AssetTotal) int64 {
	var sum int64
	for _, r := range rows {
		sum += r.Total
	}
	return sum
}
