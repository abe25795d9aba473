package models

import "time"

// Assignment is one row of the assignments table. ExpendedQuantity is a
// materialized running total maintained in the same transaction as the
// expenditure events that advance it.
type Assignment struct {
	AssignmentID     string    `json:"assignmentID"`
	AssetTypeID      string    `json:"assetTypeID"`
	BaseID           string    `json:"baseID"`
	AssignedTo       string    `json:"assignedTo"`
	AssignedBy       string    `json:"assignedBy"`
	Quantity         int64     `json:"quantity"`
	ExpendedQuantity int64     `json:"expendedQuantity"`
	OccurredAt       time.Time `json:"occurredAt"`
	AuditFields
}
