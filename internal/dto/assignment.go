package dto

import (
	"time"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// CreateAssignmentRequest defines the payload for assigning assets to personnel.
type CreateAssignmentRequest struct {
	AssetTypeID string     `json:"assetTypeID" binding:"required"`
	BaseID      string     `json:"baseID" binding:"required"`
	AssignedTo  string     `json:"assignedTo" binding:"required"` // Personnel user ID
	Quantity    int64      `json:"quantity" binding:"required,gt=0"`
	OccurredAt  *time.Time `json:"occurredAt,omitempty"`
}

// ExpendAssignmentRequest defines the payload for recording an expenditure
// against an assignment. Quantity may be less than the assignment's remaining
// quantity; repeated calls expend it incrementally.
type ExpendAssignmentRequest struct {
	Quantity   int64      `json:"quantity" binding:"required,gt=0"`
	OccurredAt *time.Time `json:"occurredAt,omitempty"`
}

// AssignmentResponse defines the data returned for an assignment.
type AssignmentResponse struct {
	AssignmentID      string    `json:"assignmentID"`
	AssetTypeID       string    `json:"assetTypeID"`
	BaseID            string    `json:"baseID"`
	AssignedTo        string    `json:"assignedTo"`
	AssignedBy        string    `json:"assignedBy"`
	Quantity          int64     `json:"quantity"`
	ExpendedQuantity  int64     `json:"expendedQuantity"`
	RemainingQuantity int64     `json:"remainingQuantity"`
	OccurredAt        time.Time `json:"occurredAt"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ListAssignmentsParams defines query parameters for listing assignments.
type ListAssignmentsParams struct {
	BaseID      *string    `form:"baseID"`
	AssetTypeID *string    `form:"assetTypeID"`
	AssignedTo  *string    `form:"assignedTo"`
	StartDate   *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate     *time.Time `form:"endDate" time_format:"2006-01-02"`
	Limit       int        `form:"limit,default=50"`
	NextToken   *string    `form:"nextToken"`
}

// ListAssignmentsResponse wraps a page of assignments.
type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// ToAssignmentResponse converts a domain.Assignment to AssignmentResponse DTO.
func ToAssignmentResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:      a.AssignmentID,
		AssetTypeID:       a.AssetTypeID,
		BaseID:            a.BaseID,
		AssignedTo:        a.AssignedTo,
		AssignedBy:        a.AssignedBy,
		Quantity:          a.Quantity,
		ExpendedQuantity:  a.ExpendedQuantity,
		RemainingQuantity: a.Remaining(),
		OccurredAt:        a.OccurredAt,
		CreatedAt:         a.CreatedAt,
	}
}

// ToAssignmentResponses converts a slice of domain.Assignment to []AssignmentResponse.
func ToAssignmentResponses(assignments []domain.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = ToAssignmentResponse(&assignments[i])
	}
	return responses
}
