package models

import "time"

// Transfer is one row of the transfers table.
type Transfer struct {
	TransferID  string    `json:"transferID"`
	AssetTypeID string    `json:"assetTypeID"`
	FromBaseID  string    `json:"fromBaseID"`
	ToBaseID    string    `json:"toBaseID"`
	Quantity    int64     `json:"quantity"`
	InitiatedBy string    `json:"initiatedBy"`
	OccurredAt  time.Time `json:"occurredAt"`
	AuditFields
}
