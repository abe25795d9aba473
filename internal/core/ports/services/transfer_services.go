package services

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/dto"
)

// TransferReaderSvc defines read operations for transfer data
type TransferReaderSvc interface {
	// GetTransferByID retrieves a specific transfer together with its two
	// ledger events, subject to the actor's base scope (either endpoint
	// qualifies).
	GetTransferByID(ctx context.Context, actor domain.Actor, transferID string) (*dto.TransferDetailResponse, error)

	// ListTransfers retrieves a paginated, role-scoped listing of transfers.
	ListTransfers(ctx context.Context, actor domain.Actor, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error)
}

// TransferWriterSvc defines write operations for transfer data
type TransferWriterSvc interface {
	// CreateTransfer validates and persists a transfer between two bases,
	// moving stock atomically. The source base is forced to the actor's own
	// base for non-admin actors.
	CreateTransfer(ctx context.Context, actor domain.Actor, req dto.CreateTransferRequest) (*domain.Transfer, error)
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
}
