package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/dto"
	"github.com/milassets/asset_command_app/internal/middleware"
)

// assignmentHandler handles HTTP requests related to assignments and expenditures.
type assignmentHandler struct {
	assignmentService portssvc.AssignmentSvcFacade
}

// newAssignmentHandler creates a new assignmentHandler.
func newAssignmentHandler(as portssvc.AssignmentSvcFacade) *assignmentHandler {
	return &assignmentHandler{assignmentService: as}
}

// registerAssignmentRoutes registers routes related to assignments.
func registerAssignmentRoutes(rg *gin.RouterGroup, assignmentService portssvc.AssignmentSvcFacade) {
	h := newAssignmentHandler(assignmentService)

	assignments := rg.Group("/assignments")
	{
		assignments.POST("", h.createAssignment)
		assignments.GET("", h.listAssignments)
		assignments.GET("/:assignmentID", h.getAssignment)
		assignments.POST("/:assignmentID/expend", h.expendAssignment)
	}
}

// createAssignment godoc
// @Summary Assign assets to personnel
// @Description Assigns assets from a base's stock to a personnel user, debiting the base atomically.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body dto.CreateAssignmentRequest true "Assignment details"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input, unknown assignee, or insufficient stock"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not assign assets"
// @Failure 500 {object} ErrorResponse "Failed to create assignment"
// @Security BearerAuth
// @Router /assignments [post]
func (h *assignmentHandler) createAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAssignment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create assignment")
		return
	}

	logger.Info("Assignment created", slog.String("assignment_id", assignment.AssignmentID))
	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

// expendAssignment godoc
// @Summary Expend against an assignment
// @Description Records an expenditure against an assignment, debiting the base and advancing the expended quantity. Partial expenditure is supported.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Param expenditure body dto.ExpendAssignmentRequest true "Expenditure details"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 400 {object} ErrorResponse "Quantity exceeds the assignment's remaining quantity"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not record expenditures"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Failed to record expenditure"
// @Security BearerAuth
// @Router /assignments/{assignmentID}/expend [post]
func (h *assignmentHandler) expendAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assignmentID := c.Param("assignmentID")

	var req dto.ExpendAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ExpendAssignment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	assignment, err := h.assignmentService.ExpendAssignment(c.Request.Context(), actor, assignmentID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record expenditure")
		return
	}

	logger.Info("Expenditure recorded", slog.String("assignment_id", assignmentID), slog.Int64("quantity", req.Quantity))
	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// getAssignment godoc
// @Summary Get an assignment by ID
// @Description Retrieves a specific assignment. Personnel may only read their own.
// @Tags assignments
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Assignment out of the actor's scope"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve assignment"
// @Security BearerAuth
// @Router /assignments/{assignmentID} [get]
func (h *assignmentHandler) getAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assignmentID := c.Param("assignmentID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	assignment, err := h.assignmentService.GetAssignmentByID(c.Request.Context(), actor, assignmentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve assignment")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// listAssignments godoc
// @Summary List assignments
// @Description Retrieves a paginated, role-scoped listing of assignments. Personnel see only their own.
// @Tags assignments
// @Produce json
// @Param baseID query string false "Filter by base (admin only)"
// @Param assetTypeID query string false "Filter by asset type"
// @Param assignedTo query string false "Filter by assignee user ID"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListAssignmentsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list assignments"
// @Security BearerAuth
// @Router /assignments [get]
func (h *assignmentHandler) listAssignments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAssignmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAssignments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.assignmentService.ListAssignments(c.Request.Context(), actor, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list assignments")
		return
	}

	c.JSON(http.StatusOK, resp)
}
