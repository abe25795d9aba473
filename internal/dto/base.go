package dto

import (
	"github.com/milassets/asset_command_app/internal/core/domain"
)

// CreateBaseRequest defines the payload for registering a base.
type CreateBaseRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// UpdateBaseRequest defines the data allowed for updating a base.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateBaseRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	IsActive *bool   `json:"isActive"`
}

// BaseResponse defines the data returned for a base.
type BaseResponse struct {
	BaseID   string `json:"baseID"`
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"isActive"`
}

// ListBasesResponse wraps the list of bases.
type ListBasesResponse struct {
	Bases []BaseResponse `json:"bases"`
}

// ToBaseResponse converts a domain.Base to BaseResponse DTO.
func ToBaseResponse(b *domain.Base) BaseResponse {
	return BaseResponse{
		BaseID:   b.BaseID,
		Name:     b.Name,
		Location: b.Location,
		IsActive: b.IsActive,
	}
}

// ToListBasesResponse converts a slice of domain.Base to ListBasesResponse DTO.
func ToListBasesResponse(bases []domain.Base) ListBasesResponse {
	responses := make([]BaseResponse, len(bases))
	for i := range bases {
		responses[i] = ToBaseResponse(&bases[i])
	}
	return ListBasesResponse{Bases: responses}
}
