package services

import (
	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// One policy instance shared by every service, so a flag flip at startup
	// applies everywhere at once.
	policy := Policy{
		AllowLogisticsAssignment: cfg.AssignmentByLogistics,
	}

	container := &portssvc.ServiceContainer{}

	container.Base = NewBaseRegistryService(repos.BaseRepo, policy)
	container.AssetType = NewAssetTypeService(repos.AssetTypeRepo, policy)
	container.User = NewUserService(cfg, repos.UserRepo, repos.BaseRepo, policy)

	container.Movement = NewMovementService(repos.MovementRepo, repos.TransferRepo, repos.AssignmentRepo, repos.BaseRepo, repos.AssetTypeRepo, policy)
	container.Inventory = NewInventoryService(repos.StockRepo, repos.ReportingRepo, policy)
	container.Transfer = NewTransferService(repos.TransferRepo, repos.MovementRepo, repos.BaseRepo, repos.AssetTypeRepo, policy)
	container.Assignment = NewAssignmentService(repos.AssignmentRepo, repos.MovementRepo, repos.BaseRepo, repos.AssetTypeRepo, repos.UserRepo, policy)
	container.Reporting = NewReportingService(repos.ReportingRepo, policy)

	return container
}
