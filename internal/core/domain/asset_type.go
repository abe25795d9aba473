package domain

// AssetType is a category of trackable equipment (e.g. rifle, vehicle,
// ammunition) with a unit of measure.
type AssetType struct {
	AssetTypeID string `json:"assetTypeID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Category    string `json:"category"` // e.g. weapon, vehicle, ammunition
	Unit        string `json:"unit"`     // e.g. pieces, liters
	AuditFields
}
