package dto

import (
	"time"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// CreateTransferRequest defines the payload for initiating a transfer.
// FromBaseID is overridden with the caller's base for non-admin actors.
type CreateTransferRequest struct {
	AssetTypeID string     `json:"assetTypeID" binding:"required"`
	FromBaseID  string     `json:"fromBaseID" binding:"required"`
	ToBaseID    string     `json:"toBaseID" binding:"required"`
	Quantity    int64      `json:"quantity" binding:"required,gt=0"`
	OccurredAt  *time.Time `json:"occurredAt,omitempty"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID  string    `json:"transferID"`
	AssetTypeID string    `json:"assetTypeID"`
	FromBaseID  string    `json:"fromBaseID"`
	ToBaseID    string    `json:"toBaseID"`
	Quantity    int64     `json:"quantity"`
	InitiatedBy string    `json:"initiatedBy"`
	OccurredAt  time.Time `json:"occurredAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TransferDetailResponse is a transfer together with the ledger events it
// produced, the debit at the source base and the credit at the destination.
type TransferDetailResponse struct {
	TransferResponse
	Events []MovementResponse `json:"events"`
}

// ListTransfersParams defines query parameters for listing transfers.
type ListTransfersParams struct {
	BaseID      *string    `form:"baseID"`
	AssetTypeID *string    `form:"assetTypeID"`
	StartDate   *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate     *time.Time `form:"endDate" time_format:"2006-01-02"`
	Limit       int        `form:"limit,default=50"`
	NextToken   *string    `form:"nextToken"`
}

// ListTransfersResponse wraps a page of transfers.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse DTO.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:  t.TransferID,
		AssetTypeID: t.AssetTypeID,
		FromBaseID:  t.FromBaseID,
		ToBaseID:    t.ToBaseID,
		Quantity:    t.Quantity,
		InitiatedBy: t.InitiatedBy,
		OccurredAt:  t.OccurredAt,
		CreatedAt:   t.CreatedAt,
	}
}

// ToTransferResponses converts a slice of domain.Transfer to []TransferResponse.
func ToTransferResponses(transfers []domain.Transfer) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = ToTransferResponse(&transfers[i])
	}
	return responses
}
