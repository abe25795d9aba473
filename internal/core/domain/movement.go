package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a ledger entry. The enumeration is closed: balance
// arithmetic is defined per kind and unknown kinds are rejected at append time.
type MovementKind string

const (
	KindPurchase    MovementKind = "purchase"
	KindTransferIn  MovementKind = "transfer-in"
	KindTransferOut MovementKind = "transfer-out"
	KindAssignment  MovementKind = "assignment"
	KindExpenditure MovementKind = "expenditure"
)

// AllMovementKinds lists every valid kind, in ledger-weight order.
var AllMovementKinds = []MovementKind{
	KindPurchase,
	KindTransferIn,
	KindTransferOut,
	KindAssignment,
	KindExpenditure,
}

// IsValid reports whether k is a member of the closed enumeration.
func (k MovementKind) IsValid() bool {
	switch k {
	case KindPurchase, KindTransferIn, KindTransferOut, KindAssignment, KindExpenditure:
		return true
	}
	return false
}

// Weight returns the signed contribution of this kind to a base balance:
// +1 for inbound (purchase, transfer-in), -1 for outbound (transfer-out,
// assignment, expenditure), 0 for unknown kinds.
func (k MovementKind) Weight() int64 {
	switch k {
	case KindPurchase, KindTransferIn:
		return 1
	case KindTransferOut, KindAssignment, KindExpenditure:
		return -1
	}
	return 0
}

// IsOutbound reports whether this kind debits the base it is scoped to.
// Outbound movements must pass the availability check before commit.
func (k MovementKind) IsOutbound() bool {
	return k.Weight() < 0
}

// ReferenceKind discriminates the domain record a movement event links back to.
type ReferenceKind string

const (
	RefNone       ReferenceKind = ""
	RefTransfer   ReferenceKind = "TRANSFER"
	RefAssignment ReferenceKind = "ASSIGNMENT"
)

// Reference is a tagged link from a movement event to its originating domain
// record. The zero value means the event is its own origin (purchases).
type Reference struct {
	Kind ReferenceKind `json:"kind,omitempty"`
	ID   string        `json:"id,omitempty"`
}

// TransferRef builds a reference to a Transfer record.
func TransferRef(transferID string) Reference {
	return Reference{Kind: RefTransfer, ID: transferID}
}

// AssignmentRef builds a reference to an Assignment record.
func AssignmentRef(assignmentID string) Reference {
	return Reference{Kind: RefAssignment, ID: assignmentID}
}

// IsZero reports whether the reference is absent.
func (r Reference) IsZero() bool {
	return r.Kind == RefNone && r.ID == ""
}

// MovementEvent is a single immutable ledger entry: a quantity change of one
// asset type at one base. Quantity is always positive; direction comes from
// Kind. Events are never updated or deleted once committed.
type MovementEvent struct {
	EventID     string           `json:"eventID"`     // Primary Key (UUID)
	AssetTypeID string           `json:"assetTypeID"` // FK -> asset_types
	BaseID      string           `json:"baseID"`      // FK -> bases; the base whose balance this event affects
	Quantity    int64            `json:"quantity"`    // Always > 0
	Kind        MovementKind     `json:"kind"`
	Reference   Reference        `json:"reference,omitempty"` // Originating Transfer/Assignment, if any
	ActorID     string           `json:"actorID,omitempty"`   // User who caused the event
	UnitCost    *decimal.Decimal `json:"unitCost,omitempty"`  // Procurement cost per unit, purchases only
	OccurredAt  time.Time        `json:"occurredAt"`          // Logical event time, used for date filtering
	AuditFields
}

// MovementFilter is a conjunction over optional event fields. A nil field
// means no constraint on that dimension. DateTo is inclusive through the end
// of that calendar day (handled at query time).
type MovementFilter struct {
	BaseID      *string
	AssetTypeID *string
	Kind        *MovementKind
	DateFrom    *time.Time
	DateTo      *time.Time
}
