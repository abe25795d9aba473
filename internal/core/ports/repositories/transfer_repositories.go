package repositories

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// TransferReader defines read operations for transfer data
type TransferReader interface {
	// FindTransferByID retrieves a specific transfer by its unique identifier.
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// ListTransfers retrieves a paginated list of transfers matching the
	// filter, newest first, using token-based pagination.
	// It returns the transfers, a token for the next page, and an error.
	ListTransfers(ctx context.Context, filter domain.TransferFilter, limit int, nextToken *string) ([]domain.Transfer, *string, error)
}

// TransferWriter defines write operations for transfer data
type TransferWriter interface {
	// SaveTransfer persists a transfer record together with its paired
	// transfer-out and transfer-in events, debiting the source base and
	// crediting the destination base within a single database transaction.
	// The source balance is re-checked under a row lock; a concurrent debit
	// that exhausts it fails the whole transaction.
	SaveTransfer(ctx context.Context, transfer domain.Transfer, outEvent, inEvent domain.MovementEvent) error
}

// TransferRepositoryFacade combines all transfer-related repository interfaces
// This is a facade for clients that need access to all operations
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
