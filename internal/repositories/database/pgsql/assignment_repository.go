package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
	"github.com/milassets/asset_command_app/internal/models"
	"github.com/milassets/asset_command_app/internal/utils/mapping"
	"github.com/milassets/asset_command_app/internal/utils/pagination"
)

type PgxAssignmentRepository struct {
	BaseRepository
	stockRepo portsrepo.StockRepositoryFacade
}

// newPgxAssignmentRepository creates a new repository for assignment data.
func newPgxAssignmentRepository(pool *pgxpool.Pool, stockRepo portsrepo.StockRepositoryFacade) portsrepo.AssignmentRepositoryFacade {
	return &PgxAssignmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		stockRepo:      stockRepo,
	}
}

// Ensure PgxAssignmentRepository implements portsrepo.AssignmentRepositoryFacade
var _ portsrepo.AssignmentRepositoryFacade = (*PgxAssignmentRepository)(nil)

const assignmentColumns = `assignment_id, asset_type_id, base_id, assigned_to, assigned_by, quantity, expended_quantity, occurred_at, created_at, created_by, last_updated_at, last_updated_by`

// SaveAssignment persists an assignment record with its assignment event,
// debiting the base's stock atomically. The stock row is locked and
// availability re-checked inside the transaction, so two concurrent
// assignments against the same stock serialize and the loser sees the
// reduced balance.
func (r *PgxAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.Assignment, event domain.MovementEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	balance, err := r.stockRepo.FindStockForUpdate(ctx, tx, assignment.BaseID, assignment.AssetTypeID)
	if err != nil {
		return err
	}
	if balance < assignment.Quantity {
		return apperrors.NewInsufficientStockError(assignment.BaseID, assignment.AssetTypeID, assignment.Quantity, balance)
	}

	modelAssignment := mapping.ToModelAssignment(assignment)
	insertQuery := `
		INSERT INTO assignments (
			assignment_id, asset_type_id, base_id, assigned_to, assigned_by, quantity, expended_quantity, occurred_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelAssignment.AssignmentID,
		modelAssignment.AssetTypeID,
		modelAssignment.BaseID,
		modelAssignment.AssignedTo,
		modelAssignment.AssignedBy,
		modelAssignment.Quantity,
		modelAssignment.ExpendedQuantity,
		modelAssignment.OccurredAt,
		modelAssignment.CreatedAt,
		modelAssignment.CreatedBy,
		modelAssignment.LastUpdatedAt,
		modelAssignment.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert assignment "+modelAssignment.AssignmentID, err)
	}

	if err := insertMovementEventInTx(ctx, tx, mapping.ToModelMovementEvent(event)); err != nil {
		return err
	}

	if err := r.stockRepo.ApplyStockDeltaInTx(ctx, tx, assignment.BaseID, assignment.AssetTypeID, -assignment.Quantity, assignment.CreatedBy, assignment.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindAssignmentByID retrieves an assignment by its ID.
func (r *PgxAssignmentRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE assignment_id = $1;
	`

	var m models.Assignment
	err := r.Pool.QueryRow(ctx, query, assignmentID).Scan(
		&m.AssignmentID,
		&m.AssetTypeID,
		&m.BaseID,
		&m.AssignedTo,
		&m.AssignedBy,
		&m.Quantity,
		&m.ExpendedQuantity,
		&m.OccurredAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find assignment "+assignmentID, err)
	}

	domainAssignment := mapping.ToDomainAssignment(m)
	return &domainAssignment, nil
}

// ListAssignments retrieves a paginated list of assignments matching the
// filter, newest first, using token-based pagination.
func (r *PgxAssignmentRepository) ListAssignments(ctx context.Context, filter domain.AssignmentFilter, limit int, nextToken *string) ([]domain.Assignment, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + assignmentColumns + `
		FROM assignments
	`

	filterClause := `WHERE 1=1`
	args := []interface{}{}
	if filter.BaseID != nil {
		args = append(args, *filter.BaseID)
		filterClause += ` AND base_id = $` + strconv.Itoa(len(args))
	}
	if filter.AssetTypeID != nil {
		args = append(args, *filter.AssetTypeID)
		filterClause += ` AND asset_type_id = $` + strconv.Itoa(len(args))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		filterClause += ` AND assigned_to = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		filterClause += ` AND occurred_at >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		filterClause += ` AND occurred_at <= $` + strconv.Itoa(len(args))
	}

	orderByClause := `ORDER BY occurred_at DESC, created_at DESC`

	if nextToken != nil && *nextToken != "" {
		lastOccurredAt, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastOccurredAt, lastCreatedAt)
		filterClause += ` AND (occurred_at, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query assignments", err)
	}
	defer rows.Close()

	modelAssignments := []models.Assignment{}
	for rows.Next() {
		var m models.Assignment
		scanErr := rows.Scan(
			&m.AssignmentID,
			&m.AssetTypeID,
			&m.BaseID,
			&m.AssignedTo,
			&m.AssignedBy,
			&m.Quantity,
			&m.ExpendedQuantity,
			&m.OccurredAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan assignment row", scanErr)
		}
		modelAssignments = append(modelAssignments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating assignment rows", err)
	}

	var nextTokenVal *string
	results := modelAssignments
	if len(modelAssignments) > limit {
		last := modelAssignments[limit-1]
		token := pagination.EncodeToken(last.OccurredAt, last.CreatedAt)
		nextTokenVal = &token
		results = modelAssignments[:limit]
	}

	domainAssignments := make([]domain.Assignment, len(results))
	for i, m := range results {
		domainAssignments[i] = mapping.ToDomainAssignment(m)
	}

	return domainAssignments, nextTokenVal, nil
}
