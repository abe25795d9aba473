package services

import (
	"context"
	"fmt"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/dto"
)

// reportingService resolves role-scoped dashboard aggregates.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, policy Policy) portssvc.ReportingService {
	return &reportingService{
		BaseService:   BaseService{Policy: policy},
		reportingRepo: reportingRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// resolveScope turns the request filters into the scope the actor is actually
// allowed to aggregate over. Admins see whatever they asked for; commanders
// and logistics officers are pinned to their base; personnel are pinned to
// their own assignment slice.
func (s *reportingService) resolveScope(actor domain.Actor, params dto.DashboardParams) (domain.SummaryScope, error) {
	scope := domain.SummaryScope{
		StartDate: normalizeStartDate(params.StartDate),
		EndDate:   normalizeEndDate(params.EndDate),
	}
	if params.AssetTypeID != nil {
		scope.AssetTypeID = *params.AssetTypeID
	}

	switch actor.Role {
	case domain.RoleAdmin:
		if params.BaseID != nil {
			scope.BaseID = *params.BaseID
		}
	case domain.RoleBaseCommander, domain.RoleLogisticsOfficer:
		home := actor.HomeBase()
		if home == "" {
			return domain.SummaryScope{}, fmt.Errorf("%w: actor %s has no base affiliation", apperrors.ErrForbidden, actor.UserID)
		}
		scope.BaseID = home
	case domain.RolePersonnel:
		scope.AssignedTo = actor.UserID
	default:
		return domain.SummaryScope{}, fmt.Errorf("%w: unknown role %s", apperrors.ErrForbidden, actor.Role)
	}

	return scope, nil
}

// GetDashboardSummary aggregates movement totals per kind and asset type over
// the actor's resolved scope.
func (s *reportingService) GetDashboardSummary(ctx context.Context, actor domain.Actor, params dto.DashboardParams) (*domain.SummaryReport, error) {
	scope, err := s.resolveScope(actor, params)
	if err != nil {
		s.LogDebug(ctx, "dashboard scope rejected", "role", string(actor.Role))
		return nil, err
	}

	report, err := s.reportingRepo.GetMovementSummary(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "failed to compute dashboard summary", "base_id", scope.BaseID)
		return nil, err
	}

	return report, nil
}
