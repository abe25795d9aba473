package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind mirrors the closed domain enumeration at the storage layer.
type MovementKind string

const (
	KindPurchase    MovementKind = "purchase"
	KindTransferIn  MovementKind = "transfer-in"
	KindTransferOut MovementKind = "transfer-out"
	KindAssignment  MovementKind = "assignment"
	KindExpenditure MovementKind = "expenditure"
)

// MovementEvent is one row of the movement_events ledger table. Rows are
// insert-only; there is no update or delete path in normal operation.
type MovementEvent struct {
	EventID       string           `json:"eventID"`
	AssetTypeID   string           `json:"assetTypeID"`
	BaseID        string           `json:"baseID"`
	Quantity      int64            `json:"quantity"` // Positive; direction lives in Kind
	Kind          MovementKind     `json:"kind"`
	ReferenceKind string           `json:"referenceKind,omitempty"` // TRANSFER / ASSIGNMENT, empty when none
	ReferenceID   string           `json:"referenceID,omitempty"`
	ActorID       string           `json:"actorID,omitempty"`
	UnitCost      *decimal.Decimal `json:"unitCost,omitempty"`
	OccurredAt    time.Time        `json:"occurredAt"`
	AuditFields
}
