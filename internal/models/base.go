package models

// Base is one row of the bases reference table.
type Base struct {
	BaseID   string `json:"baseID"`
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
