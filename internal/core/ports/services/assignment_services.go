package services

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/dto"
)

// AssignmentReaderSvc defines read operations for assignment data
type AssignmentReaderSvc interface {
	// GetAssignmentByID retrieves a specific assignment, subject to the
	// actor's scope. Personnel may only read their own assignments.
	GetAssignmentByID(ctx context.Context, actor domain.Actor, assignmentID string) (*domain.Assignment, error)

	// ListAssignments retrieves a paginated, role-scoped listing of assignments.
	ListAssignments(ctx context.Context, actor domain.Actor, params dto.ListAssignmentsParams) (*dto.ListAssignmentsResponse, error)
}

// AssignmentWriterSvc defines write operations for assignment data
type AssignmentWriterSvc interface {
	// CreateAssignment validates and persists an assignment to personnel,
	// debiting the base's stock atomically.
	CreateAssignment(ctx context.Context, actor domain.Actor, req dto.CreateAssignmentRequest) (*domain.Assignment, error)

	// ExpendAssignment records an expenditure against an assignment, debiting
	// the base and advancing the assignment's expended quantity. The quantity
	// must not exceed the assignment's remaining quantity.
	ExpendAssignment(ctx context.Context, actor domain.Actor, assignmentID string, req dto.ExpendAssignmentRequest) (*domain.Assignment, error)
}

// AssignmentSvcFacade combines all assignment-related service interfaces
type AssignmentSvcFacade interface {
	AssignmentReaderSvc
	AssignmentWriterSvc
}
