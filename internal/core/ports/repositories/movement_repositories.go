package repositories

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// MovementReader defines read operations over the movement event ledger
type MovementReader interface {
	// FindMovementByID retrieves a single movement event by its identifier.
	FindMovementByID(ctx context.Context, eventID string) (*domain.MovementEvent, error)

	// ListMovements retrieves a paginated list of movement events matching the
	// filter, newest first, using token-based pagination.
	// It returns the events, a token for the next page, and an error.
	ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, nextToken *string) ([]domain.MovementEvent, *string, error)

	// FindMovementsByReference retrieves the events that a transfer or
	// assignment produced, ordered by occurrence.
	FindMovementsByReference(ctx context.Context, ref domain.Reference) ([]domain.MovementEvent, error)
}

// MovementWriter defines write operations for the movement event ledger.
// Events are append-only; there are no update or delete operations.
type MovementWriter interface {
	// SavePurchase persists a purchase event and credits the receiving base's
	// stock level within a single database transaction.
	SavePurchase(ctx context.Context, event domain.MovementEvent) error

	// SaveExpenditure persists an expenditure event and debits the base's
	// stock level within a single database transaction. When assignmentID is
	// non-nil the referenced assignment's expended quantity is advanced in
	// the same transaction.
	SaveExpenditure(ctx context.Context, event domain.MovementEvent, assignmentID *string) error
}

// MovementRepositoryFacade combines all movement-related repository interfaces
// This is a facade for clients that need access to all operations
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
