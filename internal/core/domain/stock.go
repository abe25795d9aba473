package domain

import "time"

// StockLevel is the materialized on-hand balance for one (base, assetType)
// pair. It is kept in lockstep with the movement ledger by the transaction
// coordinator; the storage layer enforces balance >= 0 as a backstop.
type StockLevel struct {
	BaseID      string    `json:"baseID"`
	AssetTypeID string    `json:"assetTypeID"`
	Balance     int64     `json:"balance"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AssetNetQuantity is one row of the net-quantity-by-base view: an asset type
// with a positive net balance at a base.
type AssetNetQuantity struct {
	AssetTypeID   string `json:"assetTypeID"`
	AssetTypeName string `json:"assetTypeName"`
	NetQuantity   int64  `json:"netQuantity"`
}
