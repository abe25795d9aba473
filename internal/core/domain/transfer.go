package domain

import "time"

// Transfer is a movement of stock from one base to another. It is created
// transactionally together with exactly two movement events (a transfer-out
// at FromBase and a transfer-in at ToBase) sharing the same quantity, and is
// immutable after creation.
// TransferFilter narrows transfer history queries. A nil field means no
// constraint on that dimension. BaseID matches either endpoint of the
// transfer.
type TransferFilter struct {
	BaseID      *string
	AssetTypeID *string
	DateFrom    *time.Time
	DateTo      *time.Time
}

type Transfer struct {
	TransferID  string    `json:"transferID"` // Primary Key (UUID)
	AssetTypeID string    `json:"assetTypeID"`
	FromBaseID  string    `json:"fromBaseID"`
	ToBaseID    string    `json:"toBaseID"`
	Quantity    int64     `json:"quantity"`
	InitiatedBy string    `json:"initiatedBy"` // UserID Reference
	OccurredAt  time.Time `json:"occurredAt"`
	AuditFields
}
