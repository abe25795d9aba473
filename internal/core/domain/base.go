package domain

// Base is a physical or logical location holding asset stock.
type Base struct {
	BaseID   string `json:"baseID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
