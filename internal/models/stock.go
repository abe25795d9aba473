package models

import "time"

// StockLevel is one row of the stocks table: the materialized balance for a
// (base, assetType) pair. The table carries CHECK (balance >= 0) so a racing
// write that slips past the row-lock path is rejected by the database.
type StockLevel struct {
	BaseID      string    `json:"baseID"`
	AssetTypeID string    `json:"assetTypeID"`
	Balance     int64     `json:"balance"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
