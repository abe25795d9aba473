package models

// AssetType is one row of the asset_types reference table.
type AssetType struct {
	AssetTypeID string `json:"assetTypeID"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Unit        string `json:"unit"`
	AuditFields
}
