package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	stockRepo := newPgxStockRepository(dbPool)
	movementRepo := newPgxMovementRepository(dbPool, stockRepo)
	transferRepo := newPgxTransferRepository(dbPool, stockRepo)
	assignmentRepo := newPgxAssignmentRepository(dbPool, stockRepo)
	baseRepo := newPgxBaseRegistryRepository(dbPool)
	assetTypeRepo := newPgxAssetTypeRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		MovementRepo:   movementRepo,
		StockRepo:      stockRepo,
		TransferRepo:   transferRepo,
		AssignmentRepo: assignmentRepo,
		BaseRepo:       baseRepo,
		AssetTypeRepo:  assetTypeRepo,
		UserRepo:       userRepo,
		ReportingRepo:  reportingRepo,
	}
}
