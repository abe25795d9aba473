package services

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/dto"
)

// PurchaseSvcFacade defines operations for recording and listing purchases
type PurchaseSvcFacade interface {
	// RecordPurchase validates and persists a purchase event, crediting the
	// receiving base's stock. Non-admin actors are pinned to their own base.
	RecordPurchase(ctx context.Context, actor domain.Actor, req dto.CreatePurchaseRequest) (*domain.MovementEvent, error)

	// ListPurchases retrieves a paginated, role-scoped listing of purchase events.
	ListPurchases(ctx context.Context, actor domain.Actor, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)
}

// MovementQuerySvc defines read operations over the full movement ledger
type MovementQuerySvc interface {
	// ListMovements retrieves a paginated, role-scoped listing of movement
	// events of any kind, newest first.
	ListMovements(ctx context.Context, actor domain.Actor, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)

	// GetMovementByID retrieves a single movement event, subject to the
	// actor's base scope, with the transfer or assignment it belongs to
	// resolved for display.
	GetMovementByID(ctx context.Context, actor domain.Actor, eventID string) (*dto.MovementResponse, error)
}

// MovementSvcFacade combines all movement-related service interfaces
type MovementSvcFacade interface {
	PurchaseSvcFacade
	MovementQuerySvc
}
