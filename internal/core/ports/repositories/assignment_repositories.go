package repositories

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// AssignmentReader defines read operations for assignment data
type AssignmentReader interface {
	// FindAssignmentByID retrieves a specific assignment by its unique identifier.
	FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.Assignment, error)

	// ListAssignments retrieves a paginated list of assignments matching the
	// filter, newest first, using token-based pagination.
	// It returns the assignments, a token for the next page, and an error.
	ListAssignments(ctx context.Context, filter domain.AssignmentFilter, limit int, nextToken *string) ([]domain.Assignment, *string, error)
}

// AssignmentWriter defines write operations for assignment data
type AssignmentWriter interface {
	// SaveAssignment persists an assignment record together with its
	// assignment event, debiting the base's stock level within a single
	// database transaction.
	SaveAssignment(ctx context.Context, assignment domain.Assignment, event domain.MovementEvent) error
}

// AssignmentRepositoryFacade combines all assignment-related repository interfaces
// This is a facade for clients that need access to all operations
type AssignmentRepositoryFacade interface {
	AssignmentReader
	AssignmentWriter
}
