package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// CreatePurchaseRequest defines the payload for recording a purchase.
type CreatePurchaseRequest struct {
	AssetTypeID string           `json:"assetTypeID" binding:"required"`
	BaseID      string           `json:"baseID" binding:"required"`
	Quantity    int64            `json:"quantity" binding:"required,gt=0"`
	UnitCost    *decimal.Decimal `json:"unitCost,omitempty"`
	OccurredAt  *time.Time       `json:"occurredAt,omitempty"` // Defaults to now when omitted
}

// MovementResponse defines the data returned for a single movement event.
type MovementResponse struct {
	EventID     string           `json:"eventID"`
	AssetTypeID string           `json:"assetTypeID"`
	BaseID      string           `json:"baseID"`
	Quantity    int64            `json:"quantity"`
	Kind        string           `json:"kind"`
	Reference   *ReferenceDetail `json:"reference,omitempty"`
	ActorID     string           `json:"actorID,omitempty"`
	UnitCost    *decimal.Decimal `json:"unitCost,omitempty"`
	OccurredAt  time.Time        `json:"occurredAt"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ReferenceDetail identifies the transfer or assignment a movement belongs to.
// Exactly one of Transfer or Assignment is populated, matching Kind, when the
// referenced record has been resolved for display.
type ReferenceDetail struct {
	Kind       string              `json:"kind"` // TRANSFER or ASSIGNMENT
	ID         string              `json:"id"`
	Transfer   *TransferResponse   `json:"transfer,omitempty"`
	Assignment *AssignmentResponse `json:"assignment,omitempty"`
}

// ListMovementsParams defines query parameters for the transaction listing.
type ListMovementsParams struct {
	BaseID      *string    `form:"baseID"`
	AssetTypeID *string    `form:"assetTypeID"`
	Kind        *string    `form:"type" binding:"omitempty,movementkind"`
	StartDate   *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate     *time.Time `form:"endDate" time_format:"2006-01-02"`
	Limit       int        `form:"limit,default=50"`
	NextToken   *string    `form:"nextToken"`
}

// ListMovementsResponse wraps a page of movement events.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToMovementResponse converts a domain.MovementEvent to MovementResponse DTO.
func ToMovementResponse(e *domain.MovementEvent) MovementResponse {
	resp := MovementResponse{
		EventID:     e.EventID,
		AssetTypeID: e.AssetTypeID,
		BaseID:      e.BaseID,
		Quantity:    e.Quantity,
		Kind:        string(e.Kind),
		ActorID:     e.ActorID,
		UnitCost:    e.UnitCost,
		OccurredAt:  e.OccurredAt,
		CreatedAt:   e.CreatedAt,
	}
	if !e.Reference.IsZero() {
		resp.Reference = &ReferenceDetail{Kind: string(e.Reference.Kind), ID: e.Reference.ID}
	}
	return resp
}

// ToMovementResponses converts a slice of domain.MovementEvent to []MovementResponse.
func ToMovementResponses(events []domain.MovementEvent) []MovementResponse {
	responses := make([]MovementResponse, len(events))
	for i := range events {
		responses[i] = ToMovementResponse(&events[i])
	}
	return responses
}
