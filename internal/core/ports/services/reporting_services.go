package services

import (
	"context"

	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/dto"
)

// ReportingService defines operations for role-scoped aggregate reporting
type ReportingService interface {
	// GetDashboardSummary resolves the actor's scope (admins roam freely,
	// commanders and logistics officers are pinned to their base, personnel
	// see only their own assignment slice) and aggregates movement totals
	// per kind and asset type over the requested window.
	GetDashboardSummary(ctx context.Context, actor domain.Actor, params dto.DashboardParams) (*domain.SummaryReport, error)
}
