package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
	"github.com/milassets/asset_command_app/internal/models"
	"github.com/milassets/asset_command_app/internal/utils/mapping"
	"github.com/milassets/asset_command_app/internal/utils/pagination"
)

type PgxMovementRepository struct {
	BaseRepository
	stockRepo portsrepo.StockRepositoryFacade
}

// newPgxMovementRepository creates a new repository for the movement event ledger.
func newPgxMovementRepository(pool *pgxpool.Pool, stockRepo portsrepo.StockRepositoryFacade) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
		stockRepo:      stockRepo,
	}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepositoryFacade
var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

const movementColumns = `event_id, asset_type_id, base_id, quantity, kind, reference_kind, reference_id, actor_id, unit_cost, occurred_at, created_at, created_by, last_updated_at, last_updated_by`

// insertMovementEventInTx appends one event row to the ledger inside an open
// transaction. Shared by the purchase, expenditure, transfer and assignment
// write paths so every movement lands through the same statement.
func insertMovementEventInTx(ctx context.Context, tx pgx.Tx, event models.MovementEvent) error {
	query := `
		INSERT INTO movement_events (
			event_id, asset_type_id, base_id, quantity, kind, reference_kind, reference_id,
			actor_id, unit_cost, occurred_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`

	var refKind, refID, actorID *string
	if event.ReferenceKind != "" {
		refKind = &event.ReferenceKind
		refID = &event.ReferenceID
	}
	if event.ActorID != "" {
		actorID = &event.ActorID
	}

	_, err := tx.Exec(ctx, query,
		event.EventID,
		event.AssetTypeID,
		event.BaseID,
		event.Quantity,
		event.Kind,
		refKind,
		refID,
		actorID,
		event.UnitCost,
		event.OccurredAt,
		event.CreatedAt,
		event.CreatedBy,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert movement event "+event.EventID, err)
	}
	return nil
}

// SavePurchase persists a purchase event and credits the receiving base's
// stock within a single database transaction. Credits need no availability
// check, so no row lock is taken; the upsert is additive.
func (r *PgxMovementRepository) SavePurchase(ctx context.Context, event domain.MovementEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	modelEvent := mapping.ToModelMovementEvent(event)
	if err := insertMovementEventInTx(ctx, tx, modelEvent); err != nil {
		return err
	}

	if err := r.stockRepo.ApplyStockDeltaInTx(ctx, tx, event.BaseID, event.AssetTypeID, event.Quantity, event.CreatedBy, event.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveExpenditure persists an expenditure event and debits the base's stock.
// The stock row is locked and availability re-checked inside the transaction;
// when an assignment is referenced its expended quantity is advanced under
// the same lock discipline.
func (r *PgxMovementRepository) SaveExpenditure(ctx context.Context, event domain.MovementEvent, assignmentID *string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	balance, err := r.stockRepo.FindStockForUpdate(ctx, tx, event.BaseID, event.AssetTypeID)
	if err != nil {
		return err
	}
	if balance < event.Quantity {
		return apperrors.NewInsufficientStockError(event.BaseID, event.AssetTypeID, event.Quantity, balance)
	}

	if assignmentID != nil {
		if err := advanceAssignmentExpenditureInTx(ctx, tx, *assignmentID, event.Quantity, event.CreatedBy, event.CreatedAt); err != nil {
			return err
		}
	}

	modelEvent := mapping.ToModelMovementEvent(event)
	if err := insertMovementEventInTx(ctx, tx, modelEvent); err != nil {
		return err
	}

	if err := r.stockRepo.ApplyStockDeltaInTx(ctx, tx, event.BaseID, event.AssetTypeID, -event.Quantity, event.CreatedBy, event.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// advanceAssignmentExpenditureInTx locks an assignment row and advances its
// expended quantity, rejecting amounts beyond the remaining quantity.
func advanceAssignmentExpenditureInTx(ctx context.Context, tx pgx.Tx, assignmentID string, quantity int64, userID string, now time.Time) error {
	lockQuery := `
		SELECT quantity, expended_quantity
		FROM assignments
		WHERE assignment_id = $1
		FOR UPDATE;
	`

	var total, expended int64
	err := tx.QueryRow(ctx, lockQuery, assignmentID).Scan(&total, &expended)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("assignment " + assignmentID + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock assignment "+assignmentID, err)
	}

	if total-expended < quantity {
		return apperrors.NewAppError(400, "expenditure exceeds remaining assignment quantity", apperrors.ErrValidation)
	}

	updateQuery := `
		UPDATE assignments
		SET expended_quantity = expended_quantity + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE assignment_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, assignmentID, quantity, now, userID); err != nil {
		return apperrors.NewAppError(500, "failed to advance expenditure for assignment "+assignmentID, err)
	}

	return nil
}

// FindMovementByID retrieves a movement event by its ID.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, eventID string) (*domain.MovementEvent, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movement_events
		WHERE event_id = $1;
	`

	modelEvent, err := scanMovementRow(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find movement event "+eventID, err)
	}

	domainEvent := mapping.ToDomainMovementEvent(*modelEvent)
	return &domainEvent, nil
}

// FindMovementsByReference retrieves the events produced by a transfer or
// assignment, ordered by occurrence.
func (r *PgxMovementRepository) FindMovementsByReference(ctx context.Context, ref domain.Reference) ([]domain.MovementEvent, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movement_events
		WHERE reference_kind = $1 AND reference_id = $2
		ORDER BY occurred_at, created_at;
	`

	rows, err := r.Pool.Query(ctx, query, string(ref.Kind), ref.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query movements for reference "+ref.ID, err)
	}
	defer rows.Close()

	modelEvents, err := collectMovementRows(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan movement rows for reference "+ref.ID, err)
	}

	return mapping.ToDomainMovementEventSlice(modelEvents), nil
}

// ListMovements retrieves a paginated list of movement events matching the
// filter, newest first, using token-based pagination.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, nextToken *string) ([]domain.MovementEvent, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + movementColumns + `
		FROM movement_events
	`

	// Build the filter clause dynamically; every condition is optional.
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
	if filter.Kind != nil {
		args = append(args, string(*filter.Kind))
		filterClause += ` AND kind = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		filterClause += ` AND occurred_at >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		filterClause += ` AND occurred_at <= $` + strconv.Itoa(len(args))
	}

	// Ordering must be stable for cursor pagination to work.
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
		return nil, nil, apperrors.NewAppError(500, "failed to query movement events", err)
	}
	defer rows.Close()

	modelEvents, err := collectMovementRows(rows)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan movement event rows", err)
	}

	var nextTokenVal *string
	results := modelEvents
	if len(modelEvents) > limit {
		last := modelEvents[limit-1]
		token := pagination.EncodeToken(last.OccurredAt, last.CreatedAt)
		nextTokenVal = &token
		results = modelEvents[:limit]
	}

	return mapping.ToDomainMovementEventSlice(results), nextTokenVal, nil
}

// scanMovementRow scans one movement event row, normalizing nullable columns.
func scanMovementRow(row pgx.Row) (*models.MovementEvent, error) {
	var m models.MovementEvent
	var refKind, refID, actorID sql.NullString

	err := row.Scan(
		&m.EventID,
		&m.AssetTypeID,
		&m.BaseID,
		&m.Quantity,
		&m.Kind,
		&refKind,
		&refID,
		&actorID,
		&m.UnitCost,
		&m.OccurredAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	if refKind.Valid {
		m.ReferenceKind = refKind.String
	}
	if refID.Valid {
		m.ReferenceID = refID.String
	}
	if actorID.Valid {
		m.ActorID = actorID.String
	}

	return &m, nil
}

func collectMovementRows(rows pgx.Rows) ([]models.MovementEvent, error) {
	events := []models.MovementEvent{}
	for rows.Next() {
		m, err := scanMovementRow(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *m)
	}
	return events, rows.Err()
}
