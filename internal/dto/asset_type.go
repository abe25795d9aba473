package dto

import (
	"github.com/milassets/asset_command_app/internal/core/domain"
)

// CreateAssetTypeRequest defines the payload for registering an asset type.
type CreateAssetTypeRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required,oneof=weapon vehicle ammunition equipment"`
	Unit     string `json:"unit" binding:"required"`
}

// UpdateAssetTypeRequest defines the data allowed for updating an asset type.
type UpdateAssetTypeRequest struct {
	Name *string `json:"name"`
	Unit *string `json:"unit"`
}

// AssetTypeResponse defines the data returned for an asset type.
type AssetTypeResponse struct {
	AssetTypeID string `json:"assetTypeID"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Unit        string `json:"unit"`
}

// ListAssetTypesResponse wraps the list of asset types.
type ListAssetTypesResponse struct {
	AssetTypes []AssetTypeResponse `json:"assetTypes"`
}

// ToAssetTypeResponse converts a domain.AssetType to AssetTypeResponse DTO.
func ToAssetTypeResponse(a *domain.AssetType) AssetTypeResponse {
	return AssetTypeResponse{
		AssetTypeID: a.AssetTypeID,
		Name:        a.Name,
		Category:    a.Category,
		Unit:        a.Unit,
	}
}

// ToListAssetTypesResponse converts a slice of domain.AssetType to ListAssetTypesResponse DTO.
func ToListAssetTypesResponse(assetTypes []domain.AssetType) ListAssetTypesResponse {
	responses := make([]AssetTypeResponse, len(assetTypes))
	for i := range assetTypes {
		responses[i] = ToAssetTypeResponse(&assetTypes[i])
	}
	return ListAssetTypesResponse{AssetTypes: responses}
}
