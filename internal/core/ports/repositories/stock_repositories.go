package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// StockReader defines read operations over materialized stock levels
type StockReader interface {
	// FindStock retrieves the stock level for one (base, assetType) pair.
	// A pair with no recorded movements returns a zero balance, not an error.
	FindStock(ctx context.Context, baseID, assetTypeID string) (*domain.StockLevel, error)
}

// StockTransactionSupport defines operations that support movement transactions
type StockTransactionSupport interface {
	// FindStockForUpdate selects a stock row and locks it for update within a
	// transaction. A pair with no row yet returns a zero balance.
	FindStockForUpdate(ctx context.Context, tx pgx.Tx, baseID, assetTypeID string) (int64, error)

	// ApplyStockDeltaInTx adjusts the balance for one (base, assetType) pair
	// within a given transaction, creating the row if it does not exist.
	ApplyStockDeltaInTx(ctx context.Context, tx pgx.Tx, baseID, assetTypeID string, delta int64, userID string, now time.Time) error
}

// StockRepositoryFacade combines all stock-related repository interfaces.
// Standalone writes to stock levels do not exist; balances change only
// inside movement, transfer and assignment transactions.
type StockRepositoryFacade interface {
	StockReader
	StockTransactionSupport
}
