package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/dto"
	"github.com/milassets/asset_command_app/internal/middleware"
)

// dashboardHandler exposes the role-scoped aggregate summary.
type dashboardHandler struct {
	reportingService portssvc.ReportingService
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(rs portssvc.ReportingService) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newDashboardHandler(reportingService)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get the dashboard summary
// @Description Aggregates movement totals per kind and asset type over the actor's scope. Omitted dates mean an all-time window.
// @Tags dashboard
// @Produce json
// @Param baseID query string false "Filter by base (admin only)"
// @Param assetTypeID query string false "Filter by asset type"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Unknown role"
// @Failure 500 {object} ErrorResponse "Failed to compute dashboard summary"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.GetDashboardSummary(c.Request.Context(), actor, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute dashboard summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(report))
}
