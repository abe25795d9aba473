package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
)

// pgCheckViolation is the Postgres error code for a check constraint
// violation. The stocks table carries CHECK (balance >= 0); hitting it means
// a concurrent debit won a race that slipped past the row-lock path.
const pgCheckViolation = "23514"

// pgDeadlockDetected is the Postgres error code raised when two transactions
// lock opposing stock rows in reverse order and Postgres aborts one of them.
const pgDeadlockDetected = "40P01"

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for stock level data.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStockRepository implements portsrepo.StockRepositoryFacade
var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

// FindStock computes the balance for one (base, assetType) pair by replaying
// the movement ledger. Inbound kinds count positive, outbound negative; a
// pair with no events yields zero rather than an error.
func (r *PgxStockRepository) FindStock(ctx context.Context, baseID, assetTypeID string) (*domain.StockLevel, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE
				WHEN kind IN ('purchase', 'transfer-in') THEN quantity
				ELSE -quantity
			END), 0) AS balance,
			COALESCE(MAX(created_at), NOW()) AS as_of
		FROM movement_events
		WHERE base_id = $1 AND asset_type_id = $2;
	`

	stock := domain.StockLevel{BaseID: baseID, AssetTypeID: assetTypeID}
	err := r.Pool.QueryRow(ctx, query, baseID, assetTypeID).Scan(&stock.Balance, &stock.UpdatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute stock for base "+baseID, err)
	}

	return &stock, nil
}

// FindStockForUpdate selects a stock row and locks it for update.
// Must be called within a transaction. A pair with no row yet has never been
// credited, so its balance is zero.
func (r *PgxStockRepository) FindStockForUpdate(ctx context.Context, tx pgx.Tx, baseID, assetTypeID string) (int64, error) {
	query := `
		SELECT balance
		FROM stocks
		WHERE base_id = $1 AND asset_type_id = $2
		FOR UPDATE;
	`

	var balance int64
	err := tx.QueryRow(ctx, query, baseID, assetTypeID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, apperrors.NewAppError(500, "failed to lock stock row for base "+baseID, err)
	}

	return balance, nil
}

// mapStockWriteError classifies Postgres failures of the balance upsert.
// A check constraint violation and a deadlock are both retryable conflicts.
func mapStockWriteError(err error, baseID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolation, pgDeadlockDetected:
			return apperrors.ErrConflict
		}
	}
	return apperrors.NewAppError(500, "failed to apply stock delta for base "+baseID, err)
}

// ApplyStockDeltaInTx adjusts one balance within a transaction, creating the
// row on first credit. Check violations and deadlocks map to ErrConflict.
func (r *PgxStockRepository) ApplyStockDeltaInTx(ctx context.Context, tx pgx.Tx, baseID, assetTypeID string, delta int64, userID string, now time.Time) error {
	query := `
		INSERT INTO stocks (base_id, asset_type_id, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $4, $5)
		ON CONFLICT (base_id, asset_type_id)
		DO UPDATE SET balance = stocks.balance + EXCLUDED.balance,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := tx.Exec(ctx, query, baseID, assetTypeID, delta, now, userID)
	if err != nil {
		return mapStockWriteError(err, baseID)
	}

	return nil
}
