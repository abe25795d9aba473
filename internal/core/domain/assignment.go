package domain

import "time"

// AssignmentFilter narrows assignment history queries. A nil field means no
// constraint on that dimension.
type AssignmentFilter struct {
	BaseID      *string
	AssetTypeID *string
	AssignedTo  *string
	DateFrom    *time.Time
	DateTo      *time.Time
}

// Assignment is an allocation of stock from a base to a specific person,
// created transactionally with exactly one assignment-kind movement event.
// ExpendedQuantity accumulates as expenditure events referencing this
// assignment are committed, supporting partial expenditure over time.
type Assignment struct {
	AssignmentID     string    `json:"assignmentID"` // Primary Key (UUID)
	AssetTypeID      string    `json:"assetTypeID"`
	BaseID           string    `json:"baseID"`
	AssignedTo       string    `json:"assignedTo"` // Personnel UserID
	AssignedBy       string    `json:"assignedBy"` // Commander/logistics UserID
	Quantity         int64     `json:"quantity"`
	ExpendedQuantity int64     `json:"expendedQuantity"`
	OccurredAt       time.Time `json:"occurredAt"`
	AuditFields
}

// Remaining returns the quantity still in the field (not yet expended).
func (a Assignment) Remaining() int64 {
	return a.Quantity - a.ExpendedQuantity
}

// IsFullyExpended reports whether the whole assignment has been consumed.
func (a Assignment) IsFullyExpended() bool {
	return a.ExpendedQuantity >= a.Quantity
}
