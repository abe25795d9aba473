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

type PgxTransferRepository struct {
	BaseRepository
	stockRepo portsrepo.StockRepositoryFacade
}

// newPgxTransferRepository creates a new repository for transfer data.
func newPgxTransferRepository(pool *pgxpool.Pool, stockRepo portsrepo.StockRepositoryFacade) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
		stockRepo:      stockRepo,
	}
}

// Ensure PgxTransferRepository implements portsrepo.TransferRepositoryFacade
var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const transferColumns = `transfer_id, asset_type_id, from_base_id, to_base_id, quantity, initiated_by, occurred_at, created_at, created_by, last_updated_at, last_updated_by`

// SaveTransfer persists a transfer record with its paired transfer-out and
// transfer-in events, moving stock from source to destination atomically.
// Only the source row is locked: the destination credit is an additive upsert
// and cannot fail an availability check, which also avoids lock ordering
// hazards between concurrent opposing transfers.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer, outEvent, inEvent domain.MovementEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	// Lock the source stock row and re-check availability. A concurrent
	// debit that committed first is reflected in the balance read here.
	balance, err := r.stockRepo.FindStockForUpdate(ctx, tx, transfer.FromBaseID, transfer.AssetTypeID)
	if err != nil {
		return err
	}
	if balance < transfer.Quantity {
		return apperrors.NewInsufficientStockError(transfer.FromBaseID, transfer.AssetTypeID, transfer.Quantity, balance)
	}

	modelTransfer := mapping.ToModelTransfer(transfer)
	insertQuery := `
		INSERT INTO transfers (
			transfer_id, asset_type_id, from_base_id, to_base_id, quantity, initiated_by, occurred_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelTransfer.TransferID,
		modelTransfer.AssetTypeID,
		modelTransfer.FromBaseID,
		modelTransfer.ToBaseID,
		modelTransfer.Quantity,
		modelTransfer.InitiatedBy,
		modelTransfer.OccurredAt,
		modelTransfer.CreatedAt,
		modelTransfer.CreatedBy,
		modelTransfer.LastUpdatedAt,
		modelTransfer.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transfer "+modelTransfer.TransferID, err)
	}

	// Both events carry the transfer reference so the pair is reconstructable
	// from the ledger alone.
	if err := insertMovementEventInTx(ctx, tx, mapping.ToModelMovementEvent(outEvent)); err != nil {
		return err
	}
	if err := insertMovementEventInTx(ctx, tx, mapping.ToModelMovementEvent(inEvent)); err != nil {
		return err
	}

	userID := transfer.CreatedBy
	now := transfer.CreatedAt
	if err := r.stockRepo.ApplyStockDeltaInTx(ctx, tx, transfer.FromBaseID, transfer.AssetTypeID, -transfer.Quantity, userID, now); err != nil {
		return err
	}
	if err := r.stockRepo.ApplyStockDeltaInTx(ctx, tx, transfer.ToBaseID, transfer.AssetTypeID, transfer.Quantity, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindTransferByID retrieves a transfer by its ID.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE transfer_id = $1;
	`

	var m models.Transfer
	err := r.Pool.QueryRow(ctx, query, transferID).Scan(
		&m.TransferID,
		&m.AssetTypeID,
		&m.FromBaseID,
		&m.ToBaseID,
		&m.Quantity,
		&m.InitiatedBy,
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
		return nil, apperrors.NewAppError(500, "failed to find transfer "+transferID, err)
	}

	domainTransfer := mapping.ToDomainTransfer(m)
	return &domainTransfer, nil
}

// ListTransfers retrieves a paginated list of transfers matching the filter,
// newest first, using token-based pagination. The BaseID filter matches
// either endpoint so a base sees both sent and received transfers.
func (r *PgxTransferRepository) ListTransfers(ctx context.Context, filter domain.TransferFilter, limit int, nextToken *string) ([]domain.Transfer, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + transferColumns + `
		FROM transfers
	`

	filterClause := `WHERE 1=1`
	args := []interface{}{}
	if filter.BaseID != nil {
		args = append(args, *filter.BaseID)
		n := strconv.Itoa(len(args))
		filterClause += ` AND (from_base_id = $` + n + ` OR to_base_id = $` + n + `)`
	}
	if filter.AssetTypeID != nil {
		args = append(args, *filter.AssetTypeID)
		filterClause += ` AND asset_type_id = $` + strconv.Itoa(len(args))
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
		return nil, nil, apperrors.NewAppError(500, "failed to query transfers", err)
	}
	defer rows.Close()

	modelTransfers := []models.Transfer{}
	for rows.Next() {
		var m models.Transfer
		scanErr := rows.Scan(
			&m.TransferID,
			&m.AssetTypeID,
			&m.FromBaseID,
			&m.ToBaseID,
			&m.Quantity,
			&m.InitiatedBy,
			&m.OccurredAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transfer row", scanErr)
		}
		modelTransfers = append(modelTransfers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transfer rows", err)
	}

	var nextTokenVal *string
	results := modelTransfers
	if len(modelTransfers) > limit {
		last := modelTransfers[limit-1]
		token := pagination.EncodeToken(last.OccurredAt, last.CreatedAt)
		nextTokenVal = &token
		results = modelTransfers[:limit]
	}

	domainTransfers := make([]domain.Transfer, len(results))
	for i, m := range results {
		domainTransfers[i] = mapping.ToDomainTransfer(m)
	}

	return domainTransfers, nextTokenVal, nil
}
